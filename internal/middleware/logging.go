package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/rsvp/internal/metrics"
)

// LoggingInterceptor logs and measures every Connect call.
// Client errors (invalid argument, aborted) are logged as warnings.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			elapsed := time.Since(start)
			code := rpcCode(err)
			metrics.RecordRPC(procedure, code, elapsed)

			attrs := []any{
				"procedure", procedure,
				"code", code,
				"duration_ms", elapsed.Milliseconds(),
			}
			switch {
			case err == nil:
				slog.Info("RPC ok", attrs...)
			case isClientCode(connect.CodeOf(err)):
				slog.Warn("RPC rejected", append(attrs, "error", errorMessage(err))...)
			default:
				slog.Error("RPC error", append(attrs, "error", err)...)
			}
			return resp, err
		}
	}
}

func rpcCode(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(err).String()
}

func isClientCode(c connect.Code) bool {
	switch c {
	case connect.CodeInvalidArgument, connect.CodeAborted, connect.CodeNotFound,
		connect.CodeFailedPrecondition, connect.CodeCanceled:
		return true
	}
	return false
}

func errorMessage(err error) string {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Message()
	}
	return err.Error()
}
