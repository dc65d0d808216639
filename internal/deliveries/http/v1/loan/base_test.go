package loan

import (
	"os"
	"testing"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common/http/middleware"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/common/retry"
	"github.com/unionconnect/go-wallet-admin/internal/config"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/services/mock"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/mock/gomock"
)

var testPrincipal = models.Principal{UID: "uid-admin", MemberID: "CU-0001", IsAdmin: true}

type loanTestHelper struct {
	mockCtrl    *gomock.Controller
	router      *echo.Echo
	mockService *mock.MockLoanService
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func newLoanTestHelper(t *testing.T) loanTestHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockSvc := mock.NewMockLoanService(mockCtrl)

	retryer := retry.NewExponentialBackOff(config.ExponentialBackOffConfig{
		MaxRetries:      2,
		InitialInterval: time.Millisecond,
		MaxBackoffTime:  time.Second,
	})

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	v1Group.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := middleware.WithPrincipal(c.Request().Context(), testPrincipal)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})
	New(v1Group, mockSvc, retryer, 5*time.Second)

	return loanTestHelper{
		mockCtrl:    mockCtrl,
		router:      app,
		mockService: mockSvc,
	}
}
