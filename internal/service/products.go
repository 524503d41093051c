package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-classifieds/internal/models"
	logctx "github.com/pribylovaa/go-classifieds/internal/pkg/log"
	"github.com/pribylovaa/go-classifieds/internal/query"
)

// ProductsPage — результат листинга.
type ProductsPage struct {
	Posts []models.Post
	// NextCursor — значение last_post_time для следующей страницы;
	// пусто, если страница неполная или запрос по post_id.
	NextCursor string
}

// ListProducts компилирует фильтр, читает страницу из кэша или БД и собирает карточки.
//
// Ошибки:
//   - ErrInvalidArgument — битые date/last_post_time (до обращения к БД);
//   - ErrUnavailable/ErrTimeout — маппинг storage.ErrUnavailable/storage.ErrTimeout;
//   - прочие ошибки стораджа и сборки — обёрнутые и прокинуты наверх.
func (s *Service) ListProducts(ctx context.Context, p query.Params) (*ProductsPage, error) {
	const op = "service.products.ListProducts"

	lg := logctx.From(ctx)

	f, err := query.Compile(p, s.compileOptions())
	if err != nil {
		lg.Warn("list_products_invalid_argument",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidArgument, err)
	}

	shape := f.EffectiveShape()
	lg.Info("list_products_request",
		slog.String("op", op),
		slog.Int("limit", f.Limit),
		slog.Int("predicates", len(f.Predicates)),
		slog.String("shape", shape.String()),
		slog.Bool("by_post_id", f.PostID != ""),
	)

	key := cacheKey(f)
	if posts, ok := s.cachedPosts(ctx, key); ok {
		lg.Info("list_products_cache_hit",
			slog.String("op", op),
			slog.Int("items", len(posts)),
		)

		return s.page(f, posts), nil
	}

	rows, err := s.storage.ListPosts(ctx, f)
	if err != nil {
		lg.Error("list_products_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, mapStorageErr(op, err)
	}

	posts, err := assemble(rows, shape)
	if err != nil {
		lg.Error("list_products_assemble_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.storePosts(ctx, key, posts)

	lg.Info("list_products_ok",
		slog.String("op", op),
		slog.Int("items", len(posts)),
	)

	return s.page(f, posts), nil
}

func (s *Service) page(f *query.Filter, posts []models.Post) *ProductsPage {
	pg := &ProductsPage{Posts: posts}
	if f.PostID == "" && len(posts) > 0 && len(posts) == f.Limit {
		pg.NextCursor = query.FormatCursor(posts[len(posts)-1].PostTime)
	}

	return pg
}

// cacheKey — sha256 от текста запроса и аргументов: одинаковые фильтры дают одинаковый ключ.
func cacheKey(f *query.Filter) string {
	sql, args := query.Build(f)

	h := sha256.New()
	h.Write([]byte(sql))
	h.Write([]byte{0})
	for _, a := range args {
		fmt.Fprintf(h, "%T:%v\x00", a, a)
	}

	return hex.EncodeToString(h.Sum(nil))
}

// cachedPosts читает страницу из кэша; любые ошибки кэша — промах.
func (s *Service) cachedPosts(ctx context.Context, key string) ([]models.Post, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logctx.From(ctx).Warn("listing_cache_get_failed", slog.String("err", err.Error()))
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var posts []models.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		logctx.From(ctx).Warn("listing_cache_decode_failed", slog.String("err", err.Error()))
		return nil, false
	}

	return posts, true
}

func (s *Service) storePosts(ctx context.Context, key string, posts []models.Post) {
	raw, err := json.Marshal(posts)
	if err != nil {
		logctx.From(ctx).Warn("listing_cache_encode_failed", slog.String("err", err.Error()))
		return
	}

	if err := s.cache.Set(ctx, key, raw, s.cfg.Cache.TTL); err != nil {
		logctx.From(ctx).Warn("listing_cache_set_failed", slog.String("err", err.Error()))
	}
}
