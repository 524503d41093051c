package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Pinger — всё, что нужно пробе и монитору.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe выполняет стартовую проверку соединения: до attempts попыток Ping с паузой backoff.
//
// Контракт:
//   - возвращает nil после первой удачной попытки;
//   - после исчерпания попыток возвращает последнюю ошибку (процесс продолжает работу,
//     data-эндпоинты отвечают 503 до восстановления связи);
//   - отмена ctx прерывает ожидание и возвращает ctx.Err().
func Probe(ctx context.Context, p Pinger, attempts int, backoff time.Duration, log *slog.Logger) error {
	const op = "storage.postgres.Probe"

	if attempts <= 0 {
		attempts = 1
	}
	if log == nil {
		log = slog.Default()
	}

	var lastErr error
	for i := 1; i <= attempts; i++ {
		if lastErr = p.Ping(ctx); lastErr == nil {
			log.Info("postgres_probe_ok", slog.Int("attempt", i))
			return nil
		}

		log.Warn("postgres_probe_failed",
			slog.Int("attempt", i),
			slog.Int("attempts", attempts),
			slog.String("err", lastErr.Error()),
		)

		if i == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("%s: %d attempts: %w", op, attempts, lastErr)
}

// Monitor — фоновая периодическая проверка соединения.
// Ping сам переключает флаг состояния в обе стороны.
type Monitor struct {
	cron *cron.Cron
}

// NewMonitor планирует Ping по расписанию spec (формат robfig/cron, например "@every 15s").
// Каждый Ping ограничен timeout.
func NewMonitor(p Pinger, spec string, timeout time.Duration, log *slog.Logger) (*Monitor, error) {
	const op = "storage.postgres.NewMonitor"

	if log == nil {
		log = slog.Default()
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			log.Warn("postgres_monitor_ping_failed", slog.String("err", err.Error()))
			return
		}
		log.Debug("postgres_monitor_ping_ok")
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Monitor{cron: c}, nil
}

// Start запускает планировщик в отдельной горутине.
func (m *Monitor) Start() {
	m.cron.Start()
}

// Stop останавливает планировщик и дожидается завершения текущей проверки (или ctx).
func (m *Monitor) Stop(ctx context.Context) {
	done := m.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
