package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// имена экранов, которым процессы передают флаг перехода
const (
	screenSettings = "settings"
	screenFridge   = "fridge"
)

// NewSettingsCmd создаёт экран настроек: данные пользователя и баннер,
// если сюда только что вернулся процесс смены пароля или имени.
//
// Пример использования:
//
//	bytebite settings
func NewSettingsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Экран настроек",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireLogin(); err != nil {
				return err
			}
			showSettings(cmd.OutOrStdout(), app)
			return nil
		},
	}
}

func showSettings(w io.Writer, app *App) {
	b := showBanner(w, app, screenSettings)
	defer b.Release()

	c := app.creds()
	fmt.Fprintf(w, "user_id:  %s\n", c.UserID)
	fmt.Fprintf(w, "username: %s\n", c.Username)
	fmt.Fprintf(w, "email:    %s\n", c.Email)
	fmt.Fprintf(w, "server:   %s\n", app.ServerURL)
}

// navigate открывает экран, на который возвращается процесс.
// У экранов без своей команды показывается только баннер.
func navigate(w io.Writer, app *App, screen string) {
	switch screen {
	case screenSettings:
		showSettings(w, app)
	default:
		showBanner(w, app, screen).Release()
	}
}
