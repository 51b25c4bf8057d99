package notify

import (
	"sync"
	"time"
)

// Banner — показанный флаг с таймером автоскрытия.
//
// Таймер запускается в момент первого показа. Release останавливает его,
// если экран закрыт раньше, чем баннер скрылся.
type Banner struct {
	mu      sync.Mutex
	message string
	visible bool
	timer   *time.Timer
	done    chan struct{}
	once    sync.Once
}

func newBanner(f Flag, ttl time.Duration) *Banner {
	b := &Banner{
		message: f.Message,
		visible: f.Present,
		done:    make(chan struct{}),
	}
	if !f.Present {
		b.finish()
		return b
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	b.timer = time.AfterFunc(ttl, b.hide)
	return b
}

// Message возвращает текст баннера.
func (b *Banner) Message() string {
	return b.message
}

// Visible сообщает, показан ли баннер сейчас.
func (b *Banner) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

// Done закрывается, когда баннер скрыт по таймеру или через Release.
func (b *Banner) Done() <-chan struct{} {
	return b.done
}

// Release скрывает баннер и освобождает таймер.
func (b *Banner) Release() {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.mu.Unlock()
	b.hide()
}

func (b *Banner) hide() {
	b.mu.Lock()
	b.visible = false
	b.mu.Unlock()
	b.finish()
}

func (b *Banner) finish() {
	b.once.Do(func() { close(b.done) })
}
