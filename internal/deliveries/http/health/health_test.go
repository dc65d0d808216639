package health

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_health(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name      string
		checks    map[string]Check
		urlCalled string
		wantRes   string
		wantCode  int
	}{
		{
			name:      "liveness",
			urlCalled: "/api/health",
			wantRes:   `{"kind":"health","status":"server is up and running"}`,
			wantCode:  http.StatusOK,
		},
		{
			name:      "ready without checks",
			urlCalled: "/api/health/ready",
			wantRes:   `{"kind":"readiness","ready":true}`,
			wantCode:  http.StatusOK,
		},
		{
			name:      "ready",
			checks:    map[string]Check{"postgres_read": ok, "postgres_write": ok},
			urlCalled: "/api/health/ready",
			wantRes:   `{"kind":"readiness","ready":true,"checks":{"postgres_read":"ok","postgres_write":"ok"}}`,
			wantCode:  http.StatusOK,
		},
		{
			name:      "dependency down",
			checks:    map[string]Check{"postgres_read": ok, "postgres_write": down},
			urlCalled: "/api/health/ready",
			wantRes:   `{"kind":"readiness","ready":false,"checks":{"postgres_read":"ok","postgres_write":"connection refused"}}`,
			wantCode:  http.StatusServiceUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := echo.New()
			New(app.Group("/api"), tt.checks)

			req := httptest.NewRequest(http.MethodGet, tt.urlCalled, nil)
			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Equal(t, tt.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
