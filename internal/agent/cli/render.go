package cli

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/notify"
	"github.com/IvanChernomyrdin/bytebite/internal/agent/workflow"
)

func printSuccess(w io.Writer, msg string) {
	pterm.Success.WithWriter(w).Println(msg)
}

func printInfo(w io.Writer, msg string) {
	pterm.Info.WithWriter(w).Println(msg)
}

func printWarning(w io.Writer, msg string) {
	pterm.Warning.WithWriter(w).Println(msg)
}

func printError(w io.Writer, msg string) {
	pterm.Error.WithWriter(w).Println(msg)
}

// renderMessage выводит последнее сообщение процесса в зависимости от его типа.
func renderMessage(w io.Writer, m workflow.Message) {
	switch m.Kind {
	case workflow.KindSuccess:
		printSuccess(w, m.Text)
	case workflow.KindInfo:
		printInfo(w, m.Text)
	case workflow.KindValidation:
		printWarning(w, m.Text)
	case workflow.KindRejection, workflow.KindTransport, workflow.KindIntegrity:
		printError(w, m.Text)
	}
}

// renderReport выводит отчёт о валидности рядом с полем подтверждения.
func renderReport(w io.Writer, label string, r workflow.Report) {
	if r.Neutral() {
		return
	}
	if r.Valid {
		printSuccess(w, label+": "+r.Message)
		return
	}
	printWarning(w, label+": "+r.Message)
}

// showBanner забирает флаг экрана и, если он есть, показывает баннер.
//
// Баннер освобождается при выходе из команды (экран закрыт),
// таймер автоскрытия не переживает процесс.
func showBanner(w io.Writer, app *App, screen string) *notify.Banner {
	b := app.hub().Channel(screen).Observe(app.settings().Notify.FlagTTL)
	if b.Visible() {
		printSuccess(w, b.Message())
	}
	return b
}
