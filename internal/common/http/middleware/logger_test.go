package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_cappedBuffer(t *testing.T) {
	var b cappedBuffer
	b.Write([]byte(strings.Repeat("a", maxLoggedBody-1)))
	n, err := b.Write([]byte("bcd"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, maxLoggedBody, b.Len())
	assert.True(t, strings.HasSuffix(b.String(), "ab...(truncated)"))
}

func Test_captureRequestBody(t *testing.T) {
	t.Run("body is restored for the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/loans/l1/reject", strings.NewReader(`{"reason":"incomplete"}`))

		assert.Equal(t, `{"reason":"incomplete"}`, captureRequestBody(req))

		rest, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"reason":"incomplete"}`, string(rest))
	})

	t.Run("get requests are not read", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/members", strings.NewReader("ignored"))
		assert.Empty(t, captureRequestBody(req))
	})
}

func Test_redactHeaders(t *testing.T) {
	header := http.Header{}
	header.Set("Authorization", "Bearer secret")
	header.Set("X-Request-Id", "req-1")

	got := redactHeaders(header)

	assert.Contains(t, got, `"Authorization":["*****"]`)
	assert.Contains(t, got, `"X-Request-Id":["req-1"]`)
	assert.NotContains(t, got, "secret")
}

func Test_responseRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseRecorder{ResponseWriter: rec}

	n, err := w.Write([]byte(`{"kind":"health"}`))
	require.NoError(t, err)

	assert.Equal(t, int64(n), w.written)
	assert.Equal(t, `{"kind":"health"}`, w.body.String())
	assert.Equal(t, `{"kind":"health"}`, rec.Body.String())
	assert.Equal(t, rec, w.Unwrap())
}
