// Package fridge хранит локальный список ингредиентов пользователя.
//
// Store принадлежит CLI-приложению и меняется только через его методы;
// сетевые операции (add/remove/sync) выполняет CLI, а Store отражает
// подтверждённое сервером состояние.
package fridge

import (
	"sort"
	"strings"
	"sync"
	"time"

	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

// Item — ингредиент в холодильнике.
//
// Пара (Name, Seasoning) уникальна: "соль" как приправа и как продукт —
// разные позиции.
type Item struct {
	Name      string    `json:"item_name"`
	Seasoning bool      `json:"is_seasoning"`
	AddedAt   time.Time `json:"added_at"`
}

type key struct {
	name      string
	seasoning bool
}

func keyOf(name string, seasoning bool) key {
	return key{name: strings.TrimSpace(name), seasoning: seasoning}
}

// Store — потокобезопасное хранилище ингредиентов.
type Store struct {
	mu    sync.RWMutex
	items map[key]Item
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{items: make(map[key]Item)}
}

// Add добавляет ингредиент.
//
// Пустое имя — serr.ErrInvalidInput, повтор — serr.ErrAlreadyExists.
func (s *Store) Add(name string, seasoning bool) (Item, error) {
	k := keyOf(name, seasoning)
	if k.name == "" {
		return Item{}, serr.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[k]; ok {
		return Item{}, serr.ErrAlreadyExists
	}
	it := Item{Name: k.name, Seasoning: seasoning, AddedAt: time.Now()}
	s.items[k] = it
	return it, nil
}

// Has сообщает, есть ли ингредиент.
func (s *Store) Has(name string, seasoning bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[keyOf(name, seasoning)]
	return ok
}

// Remove удаляет ингредиент. Если его нет — serr.ErrNotFound.
func (s *Store) Remove(name string, seasoning bool) error {
	k := keyOf(name, seasoning)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[k]; !ok {
		return serr.ErrNotFound
	}
	delete(s.items, k)
	return nil
}

// Clear удаляет все ингредиенты.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[key]Item)
}

// ReplaceAll полностью заменяет содержимое (после sync с сервером).
//
// Пустые имена пропускаются, дубликаты схлопываются.
func (s *Store) ReplaceAll(items []Item) {
	next := make(map[key]Item, len(items))
	for _, it := range items {
		k := keyOf(it.Name, it.Seasoning)
		if k.name == "" {
			continue
		}
		it.Name = k.name
		next[k] = it
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = next
}

// List возвращает копию списка: сначала продукты, потом приправы,
// внутри группы по имени.
func (s *Store) List() []Item {
	s.mu.RLock()
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Seasoning != out[j].Seasoning {
			return !out[i].Seasoning
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Names возвращает имена ингредиентов в порядке List.
func (s *Store) Names() []string {
	items := s.List()
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}

// Len возвращает число ингредиентов.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
