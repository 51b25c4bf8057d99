package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

// NewFindIDCmd создаёт CLI-команду поиска id по email (GET /find-id/{email}).
//
// Пример использования:
//
//	bytebite find-id --email chef@example.com
func NewFindIDCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "find-id",
		Short: "Найти id пользователя по email",
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			if email == "" {
				return fmt.Errorf("--email is required: %w", serr.ErrInvalidInput)
			}

			resp, err := app.client().FindID(cmd.Context(), email)
			if err != nil {
				return describe(err, "id not found")
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("your id: %s", resp.UserID))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "registered email")
	cmd.MarkFlagRequired("email")

	return cmd
}

// NewResetPasswordCmd создаёт CLI-команду сброса пароля (POST /reset-password).
//
// Сервер отправляет временный пароль на email, если пара email/id совпала.
//
// Пример использования:
//
//	bytebite reset-password --email chef@example.com --user-id chef
func NewResetPasswordCmd(app *App) *cobra.Command {
	var email, userID string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Выслать временный пароль на email",
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			userID = strings.TrimSpace(userID)
			if email == "" || userID == "" {
				return fmt.Errorf("--email and --user-id are required: %w", serr.ErrInvalidInput)
			}

			resp, err := app.client().ResetPassword(cmd.Context(), email, userID)
			if err != nil {
				return describe(err, "password reset failed")
			}

			msg := resp.Message
			if msg == "" {
				msg = "temporary password sent"
			}
			printSuccess(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "registered email")
	cmd.Flags().StringVar(&userID, "user-id", "", "login id")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("user-id")

	return cmd
}
