package interceptors

import (
	"context"
	"log/slog"
	"runtime/debug"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	logctx "github.com/pribylovaa/go-classifieds/internal/pkg/log"
)

// Recover перехватывает панику в unary-обработчике, пишет её со стеком
// и отвечает клиенту codes.Internal без деталей.
// Логгер берётся из контекста, иначе base, иначе slog.Default().
func Recover(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				l := logctx.From(ctx)
				if l == slog.Default() && base != nil {
					l = base
				}

				l.Error("panic_recovered",
					slog.String("method", info.FullMethod),
					slog.Any("panic", r),
					slog.String("stack", string(debug.Stack())),
				)

				resp, err = nil, status.Error(codes.Internal, "internal server error")
			}
		}()

		return handler(ctx, req)
	}
}
