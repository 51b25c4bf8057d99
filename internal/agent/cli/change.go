package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/workflow"
	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

// maxAttempts — сколько раз подряд можно ввести значение заново на одном шаге.
const maxAttempts = 3

// NewChangePasswordCmd создаёт экран смены пароля.
//
// Шаги: текущий пароль проверяется на сервере, затем новый пароль вводится
// дважды и проверяется локально, затем отправляется. После успеха команда
// открывает экран настроек с баннером «password changed».
//
// Пример использования:
//
//	bytebite change-password
//	printf 'abc123\nnewpass1\nnewpass1\n' | bytebite change-password --stdin
func NewChangePasswordCmd(app *App) *cobra.Command {
	return newWorkflowCmd(app, "change-password", "Сменить пароль", workflow.ProfilePassword)
}

// NewChangeNameCmd создаёт экран смены имени пользователя.
// Пароль подтверждается так же, как при смене пароля.
//
// Пример использования:
//
//	bytebite change-name
func NewChangeNameCmd(app *App) *cobra.Command {
	return newWorkflowCmd(app, "change-name", "Сменить имя пользователя", workflow.ProfileUsername)
}

func newWorkflowCmd(app *App, use, short, profile string) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := app.settings().Profile(profile)
			if !ok {
				return fmt.Errorf("profile %q: %w", profile, serr.ErrNotFound)
			}
			return runWorkflow(cmd, app, p, fromStdin)
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read current, new and repeated values as lines from STDIN")
	return cmd
}

// NewChangeCmd запускает процесс смены по любому профилю из client.yaml.
//
// Пример использования:
//
//	bytebite change --profile email
func NewChangeCmd(app *App) *cobra.Command {
	var (
		profile   string
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "change",
		Short: "Сменить значение по профилю из client.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := app.settings().Profile(profile)
			if !ok {
				return fmt.Errorf("profile %q: %w", profile, serr.ErrNotFound)
			}
			return runWorkflow(cmd, app, p, fromStdin)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "workflow profile name (password, username, ...)")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read current, new and repeated values as lines from STDIN")
	cmd.MarkFlagRequired("profile")

	return cmd
}

func runWorkflow(cmd *cobra.Command, app *App, p workflow.Profile, fromStdin bool) error {
	w := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	gw := workflow.NewHTTPGateway(app.client(), p)
	ctrl, err := workflow.NewController(app.creds(), gw, p,
		workflow.WithLogger(app.logger().Logger),
		workflow.WithNotifier(app.hub().Channel(p.ReturnTo)),
	)
	if err != nil {
		if errors.Is(err, serr.ErrIdentityMissing) {
			renderMessage(w, workflow.Message{Kind: workflow.KindIntegrity, Text: err.Error()})
			return fmt.Errorf("%w: run: bytebite login", err)
		}
		return err
	}
	defer ctrl.Close()

	if p.Title != "" {
		printInfo(w, p.Title)
	}
	read := NewSecretReader(cmd, fromStdin)

	if err := verifyCurrent(ctx, w, ctrl, read, p); err != nil {
		return err
	}
	newValue, err := enterNewValue(w, ctrl, read, p)
	if err != nil {
		return err
	}

	if err := ctrl.Submit(ctx); err != nil {
		renderMessage(w, ctrl.Snapshot().Message)
		return err
	}

	if p.Name == workflow.ProfileUsername {
		creds := app.creds()
		creds.Username = newValue
		if err := SaveCredentials(app.CredsPath, creds); err != nil {
			return err
		}
	}

	navigate(w, app, p.ReturnTo)
	return nil
}

// verifyCurrent повторяет ввод текущего значения, пока сервер его не подтвердит.
// Недоступность сервера прерывает шаг сразу: повтор без сети не поможет.
func verifyCurrent(ctx context.Context, w io.Writer, ctrl *workflow.Controller, read SecretReader, p workflow.Profile) error {
	for attempt := 1; ; attempt++ {
		current, err := read(p.CurrentLabel)
		if err != nil {
			return err
		}
		if err := ctrl.SetCurrent(current); err != nil {
			return err
		}

		res, err := ctrl.Check(ctx)
		renderMessage(w, ctrl.Snapshot().Message)
		switch {
		case err == nil && res.Verified:
			return nil
		case err == nil:
			err = fmt.Errorf("%s: %w", res.Reason, serr.ErrRejected)
		case !errors.Is(err, serr.ErrInvalidInput):
			return err
		}

		if attempt >= maxAttempts {
			return err
		}
	}
}

// enterNewValue повторяет ввод нового значения и подтверждения, пока отчёт
// не станет валидным. Возвращает принятое значение.
func enterNewValue(w io.Writer, ctrl *workflow.Controller, read SecretReader, p workflow.Profile) (string, error) {
	for attempt := 1; ; attempt++ {
		value, err := read(p.NewLabel)
		if err != nil {
			return "", err
		}
		confirm, err := read(p.ConfirmLabel)
		if err != nil {
			return "", err
		}
		if err := ctrl.SetNew(value); err != nil {
			return "", err
		}
		if err := ctrl.SetConfirm(confirm); err != nil {
			return "", err
		}

		snap := ctrl.Snapshot()
		if snap.Report.Neutral() {
			printWarning(w, p.ConfirmLabel+": required")
		}
		renderReport(w, p.ConfirmLabel, snap.Report)
		if snap.CanSubmit {
			return value, nil
		}

		if attempt >= maxAttempts {
			msg := snap.Report.Message
			if msg == "" {
				msg = "confirmation is empty"
			}
			return "", fmt.Errorf("%s: %w", msg, serr.ErrInvalidInput)
		}
	}
}
