// service содержит бизнес-логику classifieds-api: листинг объявлений и справочники.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/go-classifieds/internal/cache"
	"github.com/pribylovaa/go-classifieds/internal/config"
	"github.com/pribylovaa/go-classifieds/internal/query"
	"github.com/pribylovaa/go-classifieds/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidID — обязательный идентификатор пути отсутствует или не является целым > 0.
	// Транспорт: 400.
	ErrInvalidID = fmt.Errorf("%w: identifier must be a positive integer", ErrInvalidArgument)
	// ErrUnavailable — хранилище недоступно.
	// Транспорт: 503.
	ErrUnavailable = errors.New("service unavailable")
	// ErrTimeout — запрос к хранилищу не уложился в дедлайн.
	// Транспорт: 503 + Retry-After.
	ErrTimeout = errors.New("request timeout")
)

// Service — описывает бизнес-логику classifieds-api.
type Service struct {
	storage storage.Storage
	cache   cache.ListingCache
	cfg     config.Config
	loc     *time.Location
}

// New создает новый экземпляр Service.
// c == nil -> кэш отключён (cache.Noop).
func New(st storage.Storage, c cache.ListingCache, cfg config.Config) *Service {
	if c == nil {
		c = cache.Noop{}
	}

	// Зона проверена при загрузке конфига; UTC — на случай конфига, собранного вручную.
	loc, err := cfg.Filters.Location()
	if err != nil {
		loc = time.UTC
	}

	return &Service{
		storage: st,
		cache:   c,
		cfg:     cfg,
		loc:     loc,
	}
}

// compileOptions — серверные настройки для query.Compile.
func (s *Service) compileOptions() query.Options {
	return query.Options{
		DefaultLimit: s.cfg.Limits.Default,
		MaxLimit:     s.cfg.Limits.Max,
		Location:     s.loc,
	}
}

// mapStorageErr переводит ошибки стораджа в ошибки сервиса.
// Отмена клиентом прокидывается как есть (context.Canceled).
func mapStorageErr(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrUnavailable):
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	case errors.Is(err, storage.ErrTimeout):
		return fmt.Errorf("%s: %w", op, ErrTimeout)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", op, ErrTimeout)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
