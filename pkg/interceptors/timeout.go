// interceptors — серверные gRPC-интерсепторы health-сервера classifieds-api.
package interceptors

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// WithTimeout ограничивает unary-вызов сроком d, как middleware.Timeout на HTTP-стороне:
// более ранний дедлайн клиента сохраняется, d <= 0 отключает ограничение.
func WithTimeout(d time.Duration) grpc.UnaryServerInterceptor {
	if d <= 0 {
		return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
			return handler(ctx, req)
		}
	}

	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return handler(ctx, req)
	}
}
