package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/notify"
	"github.com/IvanChernomyrdin/bytebite/internal/agent/workflow"
	"github.com/IvanChernomyrdin/bytebite/internal/shared/logger"
)

// Значения по умолчанию для настроек клиента.
const (
	DefaultServerURL      = "http://localhost:5000"
	DefaultRequestTimeout = 10 * time.Second
	DefaultLogLevel       = "info"
)

// Переменные окружения, переопределяющие настройки из файла.
const (
	EnvServer  = "BYTEBITE_SERVER"
	EnvTimeout = "BYTEBITE_TIMEOUT"
)

// Settings — корневая структура client.yaml.
type Settings struct {
	Server   ServerSettings              `yaml:"server"`
	Notify   NotifySettings              `yaml:"notify"`
	Log      LogSettings                 `yaml:"log"`
	Profiles map[string]workflow.Profile `yaml:"profiles"`
}

// ServerSettings — куда и как ходит клиент.
type ServerSettings struct {
	URL                string        `yaml:"url"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify"` // только для dev с самоподписанным сертификатом
}

// NotifySettings — поведение баннеров после перехода между экранами.
type NotifySettings struct {
	FlagTTL time.Duration `yaml:"flag_ttl"`
}

// LogSettings — куда пишется лог запросов.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // debug|info|warn|error
}

// DefaultSettingsPath возвращает <home>/.bytebite/client.yaml.
func DefaultSettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "client.yaml"), nil
}

// DefaultSettings возвращает настройки без файла.
func DefaultSettings() *Settings {
	s := &Settings{}
	ApplyDefaults(s)
	return s
}

// LoadSettings читает YAML, подставляет переменные окружения вида ${VAR},
// проставляет дефолты, применяет переопределения из окружения и валидирует.
//
// Если файла нет, используются значения по умолчанию.
func LoadSettings(path string) (*Settings, error) {
	var s Settings

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		raw = []byte(ExpandEnvStrict(string(raw)))
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("не удалось распарсить yaml: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("не удалось прочитать настройки: %w", err)
	}

	ApplyDefaults(&s)
	if err := s.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

var envVarRe = regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Если переменная не задана, ${VAR} остаётся как есть, и Validate
// вернёт понятную ошибку.
func ExpandEnvStrict(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := envVarRe.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyDefaults проставляет значения, не заданные в файле, и дополняет
// профили из файла встроенными.
func ApplyDefaults(s *Settings) {
	if s.Server.URL == "" {
		s.Server.URL = DefaultServerURL
	}
	if s.Server.RequestTimeout == 0 {
		s.Server.RequestTimeout = DefaultRequestTimeout
	}
	if s.Notify.FlagTTL == 0 {
		s.Notify.FlagTTL = notify.DefaultTTL
	}
	if s.Log.Path == "" {
		s.Log.Path = logger.DefaultPath
	}
	if s.Log.Level == "" {
		s.Log.Level = DefaultLogLevel
	}

	profiles := workflow.BuiltinProfiles()
	for name, p := range s.Profiles {
		if p.Name == "" {
			p.Name = name
		}
		if base, ok := profiles[name]; ok {
			p = p.Merge(base)
		}
		profiles[name] = p
	}
	s.Profiles = profiles
}

// ApplyEnvOverrides переопределяет адрес сервера и таймаут из окружения
// без ${...} в yaml. Например BYTEBITE_TIMEOUT=30s.
func (s *Settings) ApplyEnvOverrides() error {
	if v := strings.TrimSpace(os.Getenv(EnvServer)); v != "" {
		s.Server.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s некорректен: %w", EnvTimeout, err)
		}
		s.Server.RequestTimeout = d
	}
	return nil
}

// Validate проверяет, что с такими настройками клиент может работать.
func (s *Settings) Validate() error {
	if strings.Contains(s.Server.URL, "${") {
		return fmt.Errorf("server.url содержит неподставленную переменную: %q", s.Server.URL)
	}
	u, err := url.Parse(s.Server.URL)
	if err != nil {
		return fmt.Errorf("server.url некорректен: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.url должен начинаться с http:// или https:// (сейчас %q)", s.Server.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("server.url без хоста: %q", s.Server.URL)
	}
	if s.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout не может быть отрицательным (сейчас %s)", s.Server.RequestTimeout)
	}
	if s.Notify.FlagTTL < 0 {
		return fmt.Errorf("notify.flag_ttl не может быть отрицательным (сейчас %s)", s.Notify.FlagTTL)
	}
	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level должен быть debug|info|warn|error (сейчас %q)", s.Log.Level)
	}
	for name, p := range s.Profiles {
		if p.Name != name {
			return fmt.Errorf("профиль %q: name не совпадает с ключом (%q)", name, p.Name)
		}
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Profile возвращает профиль процесса по имени.
func (s *Settings) Profile(name string) (workflow.Profile, bool) {
	p, ok := s.Profiles[name]
	return p, ok
}
