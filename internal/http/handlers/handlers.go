// handlers — HTTP-хендлеры публичного REST API.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pribylovaa/go-classifieds/internal/models"
	"github.com/pribylovaa/go-classifieds/internal/query"
	"github.com/pribylovaa/go-classifieds/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=service_mock_test.go -package=handlers

// Service — бизнес-операции, которые нужны хендлерам (реализуется *service.Service).
type Service interface {
	ListProducts(ctx context.Context, p query.Params) (*service.ProductsPage, error)
	Categories(ctx context.Context, rawCategoryID, rawSubcategoryID string) (*models.CategoryNames, error)
	Sports(ctx context.Context) ([]models.Sport, error)
	Areas(ctx context.Context) ([]models.Area, error)
	SubAreasBySport(ctx context.Context, rawSportID string) ([]models.SubArea, error)
	SubAreasByArea(ctx context.Context, rawAreaID string) ([]models.SubArea, error)
	StoresBySubArea(ctx context.Context, rawSubAreaID string) ([]models.Store, error)
	ServiceContacts(ctx context.Context, kind models.ServiceKind, by models.Grouping) ([]models.ServiceContact, error)
}

var _ Service = (*service.Service)(nil)

// HeaderNextCursor — last_post_time для следующей страницы листинга.
const HeaderNextCursor = "X-Next-Cursor"

// Options — параметры HTTP-кэширования ответов.
type Options struct {
	ProductsMaxAge  time.Duration
	DirectoryMaxAge time.Duration
}

// Handlers агрегирует зависимости хендлеров.
type Handlers struct {
	svc  Service
	opts Options
}

func New(svc Service, opts Options) *Handlers {
	return &Handlers{svc: svc, opts: opts}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// cacheFor выставляет Cache-Control для успешного ответа; maxAge <= 0 — no-store.
func cacheFor(w http.ResponseWriter, maxAge time.Duration) {
	if maxAge <= 0 {
		w.Header().Set("Cache-Control", "no-store")
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
}
