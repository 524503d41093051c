// postgres предоставляет реализацию storage.Storage на базе PostgreSQL (pgxpool).
package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pribylovaa/go-classifieds/internal/config"
	"github.com/pribylovaa/go-classifieds/internal/storage"
	"github.com/pribylovaa/go-classifieds/internal/storage/status"
)

type Storage struct {
	db           *pgxpool.Pool
	state        *status.State
	queryTimeout time.Duration
}

// New создаёт пул соединений к PostgreSQL.
//
// Пул ленивый: соединение с БД не устанавливается, доступность проверяет Probe.
// Ошибка возвращается только при некорректном DSN/конфигурации пула.
func New(ctx context.Context, cfg config.DBConfig, queryTimeout time.Duration, state *status.State) (*Storage, error) {
	const op = "storage.postgres.New"

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	db, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if state == nil {
		state = status.New()
	}

	return &Storage{db: db, state: state, queryTimeout: queryTimeout}, nil
}

// Ping проверяет доступность БД и синхронизирует флаг состояния.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.postgres.Ping"

	if err := s.db.Ping(ctx); err != nil {
		s.state.MarkDown()
		return fmt.Errorf("%s: %w", op, err)
	}

	s.state.MarkUp()
	return nil
}

// Close закрывает пул соединений.
// Должен вызываться при остановке приложения.
func (s *Storage) Close() {
	s.db.Close()
}

// withTimeout навешивает дедлайн одного запроса.
func (s *Storage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, s.queryTimeout)
}

// classify приводит ошибку драйвера к ошибкам контракта storage.
//
//   - дедлайн контекста или statement cancel -> storage.ErrTimeout;
//   - ошибка уровня соединения -> storage.ErrUnavailable, флаг состояния снимается;
//   - остальное оборачивается как есть.
func (s *Storage) classify(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, storage.ErrTimeout)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.QueryCanceled {
			return fmt.Errorf("%s: %w", op, storage.ErrTimeout)
		}
		if pgerrcode.IsConnectionException(pgErr.Code) || pgErr.Code == pgerrcode.AdminShutdown ||
			pgErr.Code == pgerrcode.CannotConnectNow {
			s.state.MarkDown()
			return fmt.Errorf("%s: %w", op, storage.ErrUnavailable)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if isConnError(err) {
		s.state.MarkDown()
		return fmt.Errorf("%s: %w", op, storage.ErrUnavailable)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// isConnError — ошибка установки/использования соединения, а не ошибка запроса.
func isConnError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return pgconn.SafeToRetry(err)
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Storage)(nil)
