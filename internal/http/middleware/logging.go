package middleware

import (
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/go-classifieds/internal/pkg/log"
)

// Logging кладёт request-scoped логгер (с request_id) в контекст
// и пишет одну запись на запрос после ответа.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logctx.Into(r.Context(), l)
			if rid := r.Header.Get(HeaderRequestID); rid != "" {
				ctx = logctx.With(ctx, slog.String("request_id", rid))
			}
			r = r.WithContext(ctx)

			sw := newStatusWriter(w)
			start := time.Now()

			next.ServeHTTP(sw, r)

			status := sw.code()
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}

			logctx.From(ctx).LogAttrs(ctx, level, "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.Int("status", status),
				slog.Duration("dur", time.Since(start)),
				slog.Int("bytes", sw.count),
			)
		})
	}
}
