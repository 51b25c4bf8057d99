// Package notify передаёт одноразовое сообщение между экранами клиента.
//
// Процесс, завершившийся успешно, кладёт сообщение в именованный канал
// (Channel.Set). Экран, на который вернулся пользователь, забирает его ровно
// один раз (Channel.Consume или Observe) и показывает баннер, который сам
// скрывается через TTL.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL — сколько баннер остаётся видимым после первого показа.
const DefaultTTL = 3 * time.Second

// Flag — содержимое канала.
type Flag struct {
	Message string
	Present bool
}

// Channel хранит не более одного непрочитанного флага.
//
// Нулевое значение готово к работе.
type Channel struct {
	mu   sync.Mutex
	flag Flag
}

// Set кладёт флаг, заменяя непрочитанный.
func (c *Channel) Set(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flag = Flag{Message: message, Present: true}
}

// Consume забирает флаг. Повторный вызов вернёт Present=false,
// пока не будет нового Set.
func (c *Channel) Consume() Flag {
	c.mu.Lock()
	defer c.mu.Unlock()
	f := c.flag
	c.flag = Flag{}
	return f
}

// Observe забирает флаг и запускает баннер с автоскрытием через ttl.
// Если флага нет, возвращается уже скрытый баннер.
func (c *Channel) Observe(ttl time.Duration) *Banner {
	return newBanner(c.Consume(), ttl)
}

// Hub раздаёт каналы по имени экрана ("settings", "fridge", ...).
type Hub struct {
	mu       sync.Mutex
	channels map[string]*Channel
}

// NewHub создаёт пустой набор каналов.
func NewHub() *Hub {
	return &Hub{channels: make(map[string]*Channel)}
}

// Channel возвращает канал по имени, создавая его при первом обращении.
func (h *Hub) Channel(name string) *Channel {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.channels[name]; ok {
		return ch
	}
	ch := &Channel{}
	h.channels[name] = ch
	return ch
}
