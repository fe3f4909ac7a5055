package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/paydocs/billscan/internal/common"
)

// UnaryRequestIDInterceptor tags every call with a request ID and logs
// method outcome and latency. Downstream components pick the ID up
// from the context for correlated log lines.
func UnaryRequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := uuid.New().String()
		ctx = common.WithRequestID(ctx, rid)
		start := time.Now()

		resp, err := handler(ctx, req)

		if err != nil {
			logger.Warn("rpc.failed",
				"req_id", rid,
				"method", info.FullMethod,
				"elapsed_ms", time.Since(start).Milliseconds(),
				"error", err,
			)
		} else {
			logger.Info("rpc.ok",
				"req_id", rid,
				"method", info.FullMethod,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
		}
		return resp, err
	}
}
