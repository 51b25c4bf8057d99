// Package config содержит функции для работы с локальной конфигурацией CLI-клиента.
//
// Локально хранятся две вещи:
//   - идентичность пользователя после входа (~/.bytebite/credentials.json);
//   - настройки клиента (~/.bytebite/client.yaml), см. settings.go.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

// Credentials содержит данные вошедшего пользователя.
//
// UserID задаёт идентичность, от имени которой выполняются все запросы.
// Username и Email нужны только для отображения на экране настроек.
type Credentials struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Identity возвращает идентификатор пользователя.
//
// Если пользователь не вошёл, возвращает serr.ErrIdentityMissing:
// запросы от имени пустого идентификатора не выполняются.
func (c *Credentials) Identity() (string, error) {
	if c == nil || strings.TrimSpace(c.UserID) == "" {
		return "", serr.ErrIdentityMissing
	}
	return c.UserID, nil
}

// Dir возвращает каталог локальных файлов клиента: <home>/.bytebite.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".bytebite"), nil
}

// DefaultPath возвращает путь к файлу учётных данных.
//
// Формат пути:
//
//	<home>/.bytebite/credentials.json
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "credentials.json"), nil
}

// Load загружает учётные данные из указанного файла.
//
// Если файл не существует, возвращает пустые данные без ошибки.
// Если файл существует, но содержит некорректный JSON, возвращает ошибку.
func Load(path string) (*Credentials, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Credentials{}, nil
		}
		return nil, err
	}
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save сохраняет учётные данные в указанный файл в JSON формате.
//
// При необходимости создаёт директорию назначения с правами 0700.
// Файл записывается с правами 0600.
func Save(path string, c *Credentials) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Remove удаляет файл учётных данных (выход из аккаунта).
//
// Отсутствие файла ошибкой не считается.
func Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
