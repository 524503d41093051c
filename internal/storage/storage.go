// storage определяет контракты доступа к БД для сервиса объявлений.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-classifieds/internal/models"
	"github.com/pribylovaa/go-classifieds/internal/query"
)

var (
	// ErrUnavailable — хранилище недоступно (нет соединения с БД).
	ErrUnavailable = errors.New("store unavailable")
	// ErrTimeout — запрос не уложился в таймаут (дедлайн контекста или statement cancel на стороне БД).
	ErrTimeout = errors.New("store timeout")
)

// PostsStorage описывает выборку листинга объявлений.
type PostsStorage interface {
	// ListPosts строит запрос по скомпилированному фильтру (query.Build)
	// и возвращает «сырые» строки в порядке выдачи БД.
	// Набор сканируемых колонок определяется f.EffectiveShape().
	ListPosts(ctx context.Context, f *query.Filter) ([]models.PostRow, error)
}

// DirectoryStorage описывает статические справочники.
// Отсутствие данных — пустой срез, а не ошибка.
type DirectoryStorage interface {
	// CategoryNames возвращает имена категории/подкатегории; nil-аргумент — фильтр не задан.
	// Ненайденная категория — nil.
	CategoryNames(ctx context.Context, categoryID, subcategoryID *int) (categoryName, subcategoryName *string, err error)
	Sports(ctx context.Context) ([]models.Sport, error)
	Areas(ctx context.Context) ([]models.Area, error)
	SubAreasBySport(ctx context.Context, sportID int) ([]models.SubArea, error)
	// SubAreasByArea возвращает подрайоны без гарантии порядка: натуральная сортировка — на сервисном слое.
	SubAreasByArea(ctx context.Context, areaID int) ([]models.SubArea, error)
	StoresBySubArea(ctx context.Context, subAreaID int) ([]models.Store, error)
	ServiceContacts(ctx context.Context, kind models.ServiceKind, by models.Grouping) ([]models.ServiceContact, error)
}

//go:generate mockgen -source=storage.go -destination=../../mocks/storage_mock.go -package=mocks

// Storage задаёт контракт доступа к хранилищу для сервиса.
type Storage interface {
	PostsStorage
	DirectoryStorage
	Ping(ctx context.Context) error
	Close()
}
