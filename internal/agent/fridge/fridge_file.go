package fridge

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Dump — формат файла локального холодильника:
//
//	{ "items": [ ... ] }
type Dump struct {
	Items []Item `json:"items"`
}

// DefaultPath возвращает $HOME/.bytebite/fridge.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".bytebite", "fridge.json"), nil
}

// SaveToFile сохраняет хранилище в JSON (каталог 0700, файл 0600).
// Элементы пишутся в порядке List.
func SaveToFile(path string, store *Store) error {
	out := Dump{Items: store.List()}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// LoadFromFile загружает хранилище из файла, полностью заменяя содержимое.
//
// Отсутствие файла — нормальная ситуация при первом запуске.
func LoadFromFile(path string, store *Store) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var dump Dump
	if err := json.Unmarshal(b, &dump); err != nil {
		return err
	}
	store.ReplaceAll(dump.Items)
	return nil
}
