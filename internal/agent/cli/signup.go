package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/api"
	"github.com/IvanChernomyrdin/bytebite/internal/agent/workflow"
	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

// NewSignupCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Перед регистрацией команда проверяет, что id и email свободны
// (GET /check-id/{id}, GET /check-email/{email}), затем отправляет POST /signup.
// Пароль запрашивается скрытым вводом дважды; с --stdin читаются две строки.
//
// Пример использования:
//
//	bytebite signup --user-id chef --username Chef --email chef@example.com
func NewSignupCmd(app *App) *cobra.Command {
	var (
		userID, username, email string
		fromStdin               bool
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  bytebite signup --user-id chef --username Chef --email chef@example.com
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID = strings.TrimSpace(userID)
			email = strings.TrimSpace(email)
			if userID == "" || email == "" || strings.TrimSpace(username) == "" {
				return fmt.Errorf("--user-id, --username and --email are required: %w", serr.ErrInvalidInput)
			}

			read := NewSecretReader(cmd, fromStdin)
			password, err := read("Password")
			if err != nil {
				return err
			}
			repeat, err := read("Repeat password")
			if err != nil {
				return err
			}
			// правила те же, что при смене пароля; текущего пароля ещё нет
			if r := workflow.Validate(password, repeat, ""); !r.Valid {
				msg := r.Message
				if r.Neutral() {
					msg = "password repeat is empty"
				}
				return fmt.Errorf("password: %s: %w", msg, serr.ErrInvalidInput)
			}

			c := app.client()
			ctx := cmd.Context()

			if _, err := c.CheckID(ctx, userID); err != nil {
				return describe(err, "id check failed")
			}
			if _, err := c.CheckEmail(ctx, email); err != nil {
				return describe(err, "email check failed")
			}

			resp, err := c.Signup(ctx, api.SignupRequest{
				UserID:   userID,
				Username: strings.TrimSpace(username),
				Email:    email,
				Password: password,
			})
			if err != nil {
				return describe(err, "registration failed")
			}

			msg := resp.Message
			if msg == "" {
				msg = "registration successful"
			}
			printSuccess(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "login id")
	cmd.Flags().StringVar(&username, "username", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read password lines from STDIN")
	cmd.MarkFlagRequired("user-id")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")

	return cmd
}

// describe оставляет текст отказа сервера как есть, а недоступность
// сервера дополняет подсказкой.
func describe(err error, fallback string) error {
	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Message == "" {
			return fmt.Errorf("%s: %w", fallback, err)
		}
		return err
	case errors.Is(err, serr.ErrUnreachable):
		return fmt.Errorf("%s: %w", workflow.TextUnreachable, err)
	default:
		return err
	}
}
