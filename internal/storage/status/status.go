// status хранит process-wide признак доступности БД.
//
// Жизненный цикл:
//   - стартовая проба (postgres.Probe) выставляет начальное значение;
//   - хранилище снимает флаг при ошибках уровня соединения;
//   - фоновый монитор (postgres.Monitor) переустанавливает флаг по результату Ping;
//   - middleware.StoreGuard читает флаг перед каждым хендлером, которому нужны данные.
package status

import (
	"sync"
	"sync/atomic"
)

// State — атомарный флаг доступности с подписчиками на смену значения.
// Нулевое значение — «недоступно».
type State struct {
	up atomic.Bool

	mu        sync.Mutex
	observers []func(up bool)
}

// New создаёт State в состоянии «недоступно».
func New() *State {
	return &State{}
}

// Up сообщает, доступно ли хранилище.
func (s *State) Up() bool {
	return s.up.Load()
}

// MarkUp выставляет «доступно». Подписчики вызываются только при фактической смене значения.
func (s *State) MarkUp() {
	s.set(true)
}

// MarkDown выставляет «недоступно».
func (s *State) MarkDown() {
	s.set(false)
}

// OnChange регистрирует подписчика. Подписчик сразу получает текущее значение.
func (s *State) OnChange(fn func(up bool)) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()

	fn(s.Up())
}

func (s *State) set(v bool) {
	if s.up.Swap(v) == v {
		return
	}

	s.mu.Lock()
	observers := make([]func(bool), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(v)
	}
}
