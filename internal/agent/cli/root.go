// Package cli реализует командный интерфейс (CLI) клиента ByteBite.
//
// Каждая команда играет роль одного экрана мобильного приложения: вход,
// регистрация, настройки, смена пароля/имени, холодильник и рецепты.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - загрузку .env, настроек клиента, учётных данных и холодильника;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/api"
	"github.com/IvanChernomyrdin/bytebite/internal/agent/config"
	"github.com/IvanChernomyrdin/bytebite/internal/agent/fridge"
	"github.com/IvanChernomyrdin/bytebite/internal/agent/notify"
	"github.com/IvanChernomyrdin/bytebite/internal/shared/logger"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
// В тестах App можно собрать вручную: незаданные поля заменяются значениями
// по умолчанию.
type App struct {
	// ServerURL — базовый URL сервера ByteBite (например, "http://localhost:5000").
	ServerURL string

	// ConfigPath — путь к client.yaml.
	ConfigPath string
	// Settings — загруженные настройки клиента.
	Settings *config.Settings

	// CredsPath — путь к файлу с данными вошедшего пользователя.
	CredsPath string
	// Creds — загруженные данные пользователя. Пустой UserID значит «не вошёл».
	Creds *config.Credentials

	// FridgePath — путь к локальному файлу холодильника.
	FridgePath string
	// Fridge — локальный список ингредиентов, им владеет только App.
	Fridge *fridge.Store

	// Hub — каналы одноразовых сообщений между экранами.
	Hub *notify.Hub
	// Log — лог исходящих запросов и переходов процесса.
	Log *logger.HTTPLogger
}

func (app *App) settings() *config.Settings {
	if app.Settings == nil {
		app.Settings = config.DefaultSettings()
	}
	return app.Settings
}

func (app *App) hub() *notify.Hub {
	if app.Hub == nil {
		app.Hub = notify.NewHub()
	}
	return app.Hub
}

func (app *App) logger() *logger.HTTPLogger {
	if app.Log == nil {
		app.Log = logger.Nop()
	}
	return app.Log
}

func (app *App) fridge() *fridge.Store {
	if app.Fridge == nil {
		app.Fridge = fridge.NewStore()
	}
	return app.Fridge
}

func (app *App) creds() *config.Credentials {
	if app.Creds == nil {
		app.Creds = &config.Credentials{}
	}
	return app.Creds
}

// client создаёт API-клиент с таймаутом, логгером и TLS-настройками из App.
func (app *App) client() *api.Client {
	s := app.settings()
	opts := []api.Option{
		api.WithTimeout(s.Server.RequestTimeout),
		api.WithLogger(app.logger()),
	}
	if s.Server.InsecureSkipVerify {
		opts = append(opts, api.WithInsecureTLS())
	}
	return NewAPIClient(app.ServerURL, opts...)
}

// requireLogin возвращает идентичность или ошибку с подсказкой войти заново.
func (app *App) requireLogin() (string, error) {
	id, err := app.creds().Identity()
	if err != nil {
		return "", fmt.Errorf("%w: run: bytebite login", err)
	}
	return id, nil
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// .env, client.yaml, файл учётных данных, локальный холодильник и лог.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}
	var noColor bool

	cmd := &cobra.Command{
		Use:   "bytebite",
		Short: "ByteBite CLI — рецепты из того, что есть в холодильнике",
		Long: `ByteBite CLI.

Команды:
  signup           Регистрация нового пользователя
  login            Вход (сохраняет данные пользователя локально)
  logout           Выход
  find-id          Найти id по email
  reset-password   Выслать временный пароль на email
  settings         Экран настроек
  change-password  Сменить пароль (с подтверждением текущего)
  change-name      Сменить имя пользователя (с подтверждением пароля)
  change           Запустить процесс смены по профилю из client.yaml
  fridge           Холодильник: add, remove, list, sync, clear
  recipes          Поиск рецептов
  version          Версия и дата сборки

Примеры:

Вход:
  bytebite login --user-id chef
  (пароль запрашивается скрытым вводом)

Смена пароля из скрипта (текущий, новый, повтор — по строке):
  printf 'abc123\nnewpass1\nnewpass1\n' | bytebite change-password --stdin

Рецепты из содержимого холодильника:
  bytebite recipes search --from-fridge
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				pterm.DisableStyling()
			}

			// .env необязателен
			_ = godotenv.Load()

			if app.ConfigPath == "" {
				p, err := config.DefaultSettingsPath()
				if err != nil {
					return err
				}
				app.ConfigPath = p
			}
			settings, err := config.LoadSettings(app.ConfigPath)
			if err != nil {
				return err
			}
			app.Settings = settings
			if !cmd.Flags().Changed("server") {
				app.ServerURL = settings.Server.URL
			}
			app.Log = logger.NewFileLogger(settings.Log.Path, settings.Log.Level)

			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds

			fp, err := fridge.DefaultPath()
			if err != nil {
				return err
			}
			app.FridgePath = fp
			app.Fridge = fridge.NewStore()
			if err := fridge.LoadFromFile(app.FridgePath, app.Fridge); err != nil {
				return err
			}

			app.Hub = notify.NewHub()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Log != nil {
				_ = app.Log.Sync()
			}
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", config.DefaultServerURL, "server base URL (overrides client.yaml)")
	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "path to client.yaml (default ~/.bytebite/client.yaml)")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(NewSignupCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewFindIDCmd(app))
	cmd.AddCommand(NewResetPasswordCmd(app))
	cmd.AddCommand(NewSettingsCmd(app))
	cmd.AddCommand(NewChangePasswordCmd(app))
	cmd.AddCommand(NewChangeNameCmd(app))
	cmd.AddCommand(NewChangeCmd(app))
	cmd.AddCommand(NewFridgeCmd(app))
	cmd.AddCommand(NewRecipesCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
