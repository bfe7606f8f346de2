package logger

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/narwhalmedia/tracker/pkg/interfaces"
)

// RequestLogger returns an HTTP middleware that logs every request after it
// completes and stores a request scoped logger in the request context.
func RequestLogger(log interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			reqLog := log.WithFields(
				interfaces.String("method", r.Method),
				interfaces.String("path", r.URL.Path),
				interfaces.String("request_id", middleware.GetReqID(r.Context())),
			)
			ctx := WithContext(r.Context(), reqLog)

			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []interfaces.Field{
				interfaces.Int("status", status),
				interfaces.Int("bytes", ww.BytesWritten()),
				interfaces.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
				interfaces.String("remote_addr", r.RemoteAddr),
			}

			switch {
			case status >= http.StatusInternalServerError:
				reqLog.Error("HTTP request failed", fields...)
			case status >= http.StatusBadRequest:
				reqLog.Warn("HTTP request rejected", fields...)
			default:
				reqLog.Info("HTTP request", fields...)
			}
		}
		return http.HandlerFunc(fn)
	}
}
