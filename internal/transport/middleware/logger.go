package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mktbiz-byte/cnec-kr-sub001/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, response size, duration and the caller's identifiers.
// Uploads make long requests normal, so duration is logged as is.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			identify(sw, r)
			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int64("bytes", sw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if r.ContentLength > 0 {
				attrs = append(attrs, slog.Int64("request_bytes", r.ContentLength))
			}
			// When Auth runs inside Logger it reports the caller through sw.
			if sw.userID != "" {
				attrs = append(attrs, slog.String("user_id", sw.userID), slog.String("user_role", sw.role))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status >= 400:
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code
// and size, and carries the caller identity back out of inner middleware.
type statusWriter struct {
	http.ResponseWriter
	status      int
	written     int64
	wroteHeader bool
	userID      string
	role        string
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// identify records the authenticated caller on the enclosing statusWriter, if any.
func identify(w http.ResponseWriter, r *http.Request) {
	sw, ok := w.(*statusWriter)
	if !ok {
		return
	}
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		sw.userID = id.String()
		sw.role = ctxutil.UserRoleFromCtx(r.Context())
	}
}
