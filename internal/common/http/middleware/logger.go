package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"

	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"
)

// maxLoggedBody caps how much of a request or response body ends up in a log line.
const maxLoggedBody = 4 << 10

var (
	excludedLogs = []string{
		"/api/health",
		"/api/health/ready",
		"/metrics",
	}

	redactedHeaders = []string{
		"authorization",
		"cookie",
		"set-cookie",
	}
)

// cappedBuffer keeps the first maxLoggedBody bytes written to it.
type cappedBuffer struct {
	bytes.Buffer
	truncated bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if room := maxLoggedBody - b.Len(); room < len(p) {
		b.truncated = true
		if room > 0 {
			b.Buffer.Write(p[:room])
		}
		return len(p), nil
	}
	return b.Buffer.Write(p)
}

func (b *cappedBuffer) String() string {
	if b.truncated {
		return b.Buffer.String() + "...(truncated)"
	}
	return b.Buffer.String()
}

// responseRecorder tees the response into a cappedBuffer and counts the bytes sent.
type responseRecorder struct {
	http.ResponseWriter
	body    cappedBuffer
	written int64
}

func (w *responseRecorder) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.written += int64(n)
	w.body.Write(p[:n])
	return n, err
}

func (w *responseRecorder) Flush() {
	_ = http.NewResponseController(w.ResponseWriter).Flush()
}

func (w *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

func (w *responseRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// captureRequestBody reads the body for logging and restores it for the handler.
func captureRequestBody(req *http.Request) string {
	if req.Body == nil || req.Method == http.MethodGet {
		return ""
	}

	raw, _ := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(raw))

	var body cappedBuffer
	body.Write(raw)
	return body.String()
}

func redactHeaders(header http.Header) string {
	redacted := make(map[string][]string, len(header))
	for k, vals := range header {
		if slices.Contains(redactedHeaders, strings.ToLower(k)) {
			redacted[k] = []string{"*****"}
			continue
		}
		redacted[k] = vals
	}

	b, _ := json.Marshal(redacted)
	return string(b)
}

// Logger writes one line per request. The level follows the response status:
// 5xx is an error, 3xx and 4xx a warning.
func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(excludedLogs, c.Path()) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			reqBody := captureRequestBody(req)

			res := c.Response()
			recorder := &responseRecorder{ResponseWriter: res.Writer}
			res.Writer = recorder

			if err := next(c); err != nil {
				c.Error(err)
			}

			// handlers and auth replace the request context
			ctx := c.Request().Context()
			latency := time.Since(start)

			fields := []xlog.Field{
				xlog.Time("start_time", start),
				xlog.String("method", req.Method),
				xlog.String("route", c.Path()),
				xlog.String("url_path", req.URL.String()),
				xlog.String("request_body", reqBody),
				xlog.String("request_header", redactHeaders(req.Header)),
				xlog.Int("status", res.Status),
				xlog.Int64("response_size", recorder.written),
				xlog.String("response", recorder.body.String()),
				xlog.Duration("latency", latency),
			}
			if principal, ok := PrincipalFromContext(ctx); ok {
				fields = append(fields, xlog.String("principal_uid", principal.UID))
			}

			message := fmt.Sprintf("%d %s %s %v", res.Status, req.Method, req.URL.Path, latency)

			switch {
			case res.Status >= http.StatusInternalServerError:
				xlog.Error(ctx, message, fields...)
			case res.Status >= http.StatusMultipleChoices:
				xlog.Warn(ctx, message, fields...)
			default:
				xlog.Info(ctx, message, fields...)
			}

			return nil
		}
	}
}
