package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	logctx "github.com/pribylovaa/go-classifieds/internal/pkg/log"
)

// HealthCheckMethod — метод, который оркестратор дёргает каждые несколько секунд.
const HealthCheckMethod = "/grpc.health.v1.Health/Check"

// LoggingOption настраивает UnaryLoggingInterceptor.
type LoggingOption func(*loggingConfig)

type loggingConfig struct {
	quiet map[string]struct{}
}

// WithQuietMethods понижает уровень итоговой записи успешных вызовов методов до Debug.
func WithQuietMethods(methods ...string) LoggingOption {
	return func(c *loggingConfig) {
		for _, m := range methods {
			c.quiet[m] = struct{}{}
		}
	}
}

// UnaryLoggingInterceptor логирует unary-вызовы и кладёт request-scoped логгер в контекст.
//
// Формат: одна запись msg="grpc" после handler с request_id (x-request-id или UUID),
// method, peer, code, dur. Ошибочные коды пишутся с уровнем Warn.
func UnaryLoggingInterceptor(base *slog.Logger, opts ...LoggingOption) grpc.UnaryServerInterceptor {
	if base == nil {
		base = slog.Default()
	}

	cfg := loggingConfig{quiet: map[string]struct{}{}}
	for _, o := range opts {
		o(&cfg)
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		l := base.With(
			slog.String("request_id", requestID(ctx)),
			slog.String("method", info.FullMethod),
			slog.String("peer", peerAddr(ctx)),
		)
		ctx = logctx.Into(ctx, l)

		resp, err := handler(ctx, req)

		code := status.Code(err)
		level := slog.LevelInfo
		switch {
		case code != codes.OK:
			level = slog.LevelWarn
		case isQuiet(cfg, info.FullMethod):
			level = slog.LevelDebug
		}

		l.LogAttrs(ctx, level, "grpc",
			slog.String("code", code.String()),
			slog.Duration("dur", time.Since(start)),
		)

		return resp, err
	}
}

// StreamLoggingInterceptor логирует завершение stream-вызовов (Health/Watch).
func StreamLoggingInterceptor(base *slog.Logger) grpc.StreamServerInterceptor {
	if base == nil {
		base = slog.Default()
	}

	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		ctx := ss.Context()

		err := handler(srv, ss)

		base.LogAttrs(ctx, slog.LevelInfo, "grpc_stream",
			slog.String("request_id", requestID(ctx)),
			slog.String("method", info.FullMethod),
			slog.String("peer", peerAddr(ctx)),
			slog.String("code", status.Code(err).String()),
			slog.Duration("dur", time.Since(start)),
		)

		return err
	}
}

func isQuiet(cfg loggingConfig, method string) bool {
	_, ok := cfg.quiet[method]
	return ok
}

// requestID: x-request-id из metadata, иначе новый UUID.
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get("x-request-id"); len(v) > 0 && v[0] != "" {
			return v[0]
		}
	}

	return uuid.NewString()
}

// peerAddr: IP:port клиента или "-".
func peerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p != nil && p.Addr != nil {
		return p.Addr.String()
	}

	return "-"
}
