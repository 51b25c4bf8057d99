package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/config"
	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя.
//
// Команда отправляет POST /login и сохраняет возвращённые сервером
// user_id, username и email в локальный файл учётных данных: это
// идентичность, от имени которой работают остальные команды.
//
// Пароль не передаётся флагом, чтобы не утекать в shell history.
//
// Пример использования:
//
//	bytebite login --user-id chef
//	echo "StrongPass123" | bytebite login --user-id chef --stdin
func NewLoginCmd(app *App) *cobra.Command {
	var (
		userID    string
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Вход пользователя",
		Long: `Вход пользователя.

Пример:
  bytebite login --user-id chef
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID = strings.TrimSpace(userID)
			if userID == "" {
				return fmt.Errorf("--user-id is required: %w", serr.ErrInvalidInput)
			}

			password, err := readPassword(cmd, fromStdin)
			if err != nil {
				return err
			}

			resp, err := app.client().Login(cmd.Context(), userID, password)
			if err != nil {
				return describe(err, "login failed")
			}

			// сервер может не вернуть id, тогда остаётся введённый
			creds := app.creds()
			creds.UserID = userID
			if resp.UserID != "" {
				creds.UserID = resp.UserID
			}
			creds.Username = resp.Username
			creds.Email = resp.Email

			if err := SaveCredentials(app.CredsPath, creds); err != nil {
				return err
			}

			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("logged in as %s", displayName(creds)))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "login id")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read password from STDIN")
	cmd.MarkFlagRequired("user-id")

	return cmd
}

// NewLogoutCmd создаёт CLI-команду выхода: удаляет локальный файл учётных данных.
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Выход (удалить локальные данные пользователя)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Remove(app.CredsPath); err != nil {
				return err
			}
			app.Creds = &config.Credentials{}
			printSuccess(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func displayName(c *config.Credentials) string {
	if c.Username != "" {
		return c.Username
	}
	return c.UserID
}
