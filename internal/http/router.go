package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/klauspost/compress/gzhttp"

	"github.com/pribylovaa/go-classifieds/internal/http/handlers"
	"github.com/pribylovaa/go-classifieds/internal/http/middleware"
	"github.com/pribylovaa/go-classifieds/internal/models"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
	// Разрешённые Origin; пусто — любой.
	CORSOrigins []string
	// Metrics == nil отключает учёт запросов.
	Metrics middleware.RequestObserver
	// Store == nil отключает StoreGuard (например, в тестах).
	Store    middleware.Availability
	Handlers handlers.Options
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
// Ответы сжимаются gzip, если клиент это поддерживает.
func NewRouter(svc handlers.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),              // безопасно ловим паники
		middleware.RequestID(),            // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger),   // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(opts.Metrics),  // счётчики и латентность по шаблону маршрута
		cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderRequestID},
			ExposedHeaders: []string{middleware.HeaderRequestID, handlers.HeaderNextCursor, "Retry-After"},
			MaxAge:         300,
		}),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc, opts.Handlers)

	api := chi.NewRouter()
	if opts.Store != nil {
		api.Use(middleware.StoreGuard(opts.Store)) // без БД — сразу 503
	}
	registerRoutes(api, h)

	if opts.BasePath != "" && opts.BasePath != "/" {
		root.Mount(opts.BasePath, api)
	} else {
		root.Mount("/", api)
	}

	return gzhttp.GzipHandler(root)
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// listing
	r.Get("/products", h.ListProducts)

	// directory
	r.Get("/categories", h.Categories)
	r.Get("/sports", h.Sports)
	r.Get("/sports/{sportId}/sub-areas", h.SubAreasBySport)
	r.Get("/areas", h.Areas)
	r.Get("/sub-areas/area/{areaId}", h.SubAreasByArea)
	r.Get("/stores/sub-area/{subAreaId}", h.StoresBySubArea)

	// emergency services
	r.Get("/security/by-ward", h.ServiceContacts(models.ServiceSecurity, models.ByWard))
	r.Get("/security/by-area", h.ServiceContacts(models.ServiceSecurity, models.ByArea))
	r.Get("/medical/by-ward", h.ServiceContacts(models.ServiceMedical, models.ByWard))
	r.Get("/medical/by-area", h.ServiceContacts(models.ServiceMedical, models.ByArea))
}
