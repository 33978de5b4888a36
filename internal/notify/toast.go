package notify

import (
	"sync"
	"time"
)

// Toaster короткое уведомление с автоскрытием.
// Новое сообщение сразу вытесняет текущее и перезапускает единственный таймер скрытия
type Toaster struct {
	mu      sync.Mutex
	delay   time.Duration
	message string
	seq     uint64
	timer   *time.Timer
}

// NewToaster создает уведомитель с заданной задержкой скрытия
func NewToaster(delay time.Duration) *Toaster {
	return &Toaster{delay: delay}
}

// Show показывает сообщение. Отложенное скрытие предыдущего сообщения отменяется
func (t *Toaster) Show(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}

	t.seq++
	seq := t.seq
	t.message = message
	t.timer = time.AfterFunc(t.delay, func() {
		t.dismiss(seq)
	})
}

// Current возвращает видимое сообщение или пустую строку
func (t *Toaster) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.message
}

// Close отменяет отложенное скрытие и скрывает сообщение
func (t *Toaster) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.message = ""
}

// dismiss скрывает сообщение, только если оно не было вытеснено более новым:
// Stop не отменяет уже запущенный колбэк таймера
func (t *Toaster) dismiss(seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq != t.seq {
		return
	}
	t.message = ""
	t.timer = nil
}
