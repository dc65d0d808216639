package loan

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func doRequest(t *testing.T, router *echo.Echo, method, url, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, strings.TrimSuffix(string(b), "\n")
}

func Test_Handler_approveLoan(t *testing.T) {
	testHelper := newLoanTestHelper(t)

	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		mockData  mockData
		doMock    func()
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/loans/LOAN-1/approve",
			mockData: mockData{
				wantRes:  `{"kind":"loanApproval","loanId":"LOAN-1","transactionId":"TX-1","status":"approved"}`,
				wantCode: http.StatusOK,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().ApproveLoan(gomock.Any(), "LOAN-1", "uid-admin").Return("TX-1", nil)
			},
		},
		{
			name:      "conflict is retried until it commits",
			urlCalled: "/api/v1/loans/LOAN-2/approve",
			mockData: mockData{
				wantRes:  `{"kind":"loanApproval","loanId":"LOAN-2","transactionId":"TX-2","status":"approved"}`,
				wantCode: http.StatusOK,
			},
			doMock: func() {
				gomock.InOrder(
					testHelper.mockService.EXPECT().ApproveLoan(gomock.Any(), "LOAN-2", "uid-admin").Return("", common.ErrBalanceVersionMove),
					testHelper.mockService.EXPECT().ApproveLoan(gomock.Any(), "LOAN-2", "uid-admin").Return("", common.ErrUnavailable),
					testHelper.mockService.EXPECT().ApproveLoan(gomock.Any(), "LOAN-2", "uid-admin").Return("TX-2", nil),
				)
			},
		},
		{
			name:      "retry after a competing commit sees not pending",
			urlCalled: "/api/v1/loans/LOAN-3/approve",
			mockData: mockData{
				wantRes:  `{"status":"error","code":"LOAN_NOT_PENDING","message":"loan request is no longer pending"}`,
				wantCode: http.StatusConflict,
			},
			doMock: func() {
				gomock.InOrder(
					testHelper.mockService.EXPECT().ApproveLoan(gomock.Any(), "LOAN-3", "uid-admin").Return("", common.ErrLoanStatusChanged),
					testHelper.mockService.EXPECT().ApproveLoan(gomock.Any(), "LOAN-3", "uid-admin").
						Return("", fmt.Errorf("%w: status approved", common.ErrLoanNotPending)),
				)
			},
		},
		{
			name:      "conflict persists past the retry budget",
			urlCalled: "/api/v1/loans/LOAN-4/approve",
			mockData: mockData{
				wantRes:  `{"status":"error","code":"LOAN_CONFLICT","message":"loan request was modified concurrently, retry the request","retryable":true}`,
				wantCode: http.StatusConflict,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().ApproveLoan(gomock.Any(), "LOAN-4", "uid-admin").
					Return("", common.ErrLoanStatusChanged).Times(3)
			},
		},
		{
			name:      "not found",
			urlCalled: "/api/v1/loans/LOAN-X/approve",
			mockData: mockData{
				wantRes:  `{"status":"error","code":"LOAN_NOT_FOUND","message":"loan request not found"}`,
				wantCode: http.StatusNotFound,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().ApproveLoan(gomock.Any(), "LOAN-X", "uid-admin").
					Return("", common.ErrLoanNotFound).Times(1)
			},
		},
		{
			name:      "permission denied is not retried",
			urlCalled: "/api/v1/loans/LOAN-5/approve",
			mockData: mockData{
				wantRes:  `{"status":"error","code":"FORBIDDEN","message":"administrator access required"}`,
				wantCode: http.StatusForbidden,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().ApproveLoan(gomock.Any(), "LOAN-5", "uid-admin").
					Return("", common.ErrPermissionDenied).Times(1)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			code, body := doRequest(t, testHelper.router, http.MethodPost, tt.urlCalled, "")
			require.Equal(t, tt.mockData.wantCode, code)
			require.Equal(t, tt.mockData.wantRes, body)
		})
	}
}

func Test_Handler_rejectLoan(t *testing.T) {
	testHelper := newLoanTestHelper(t)

	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		body      string
		mockData  mockData
		doMock    func()
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/loans/LOAN-1/reject",
			body:      `{"reason":"insufficient savings history"}`,
			mockData: mockData{
				wantRes:  `{"kind":"loanRejection","loanId":"LOAN-1","status":"rejected"}`,
				wantCode: http.StatusOK,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().RejectLoan(gomock.Any(), "LOAN-1", "uid-admin", "insufficient savings history").Return(nil)
			},
		},
		{
			name:      "blank reason",
			urlCalled: "/api/v1/loans/LOAN-2/reject",
			body:      `{"reason":"   "}`,
			mockData: mockData{
				wantRes:  `{"status":"error","code":"REASON_REQUIRED","message":"rejection reason is required"}`,
				wantCode: http.StatusBadRequest,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().RejectLoan(gomock.Any(), "LOAN-2", "uid-admin", "   ").Return(common.ErrMissingReason).Times(1)
			},
		},
		{
			name:      "malformed body",
			urlCalled: "/api/v1/loans/LOAN-3/reject",
			body:      `{"reason":`,
			mockData: mockData{
				wantRes:  `{"status":"error","code":400,"message":"unexpected EOF"}`,
				wantCode: http.StatusBadRequest,
			},
		},
		{
			name:      "already decided",
			urlCalled: "/api/v1/loans/LOAN-4/reject",
			body:      `{"reason":"duplicate"}`,
			mockData: mockData{
				wantRes:  `{"status":"error","code":"LOAN_NOT_PENDING","message":"loan request is no longer pending"}`,
				wantCode: http.StatusConflict,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().RejectLoan(gomock.Any(), "LOAN-4", "uid-admin", "duplicate").Return(common.ErrLoanNotPending)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			code, body := doRequest(t, testHelper.router, http.MethodPost, tt.urlCalled, tt.body)
			require.Equal(t, tt.mockData.wantCode, code)
			require.Equal(t, tt.mockData.wantRes, body)
		})
	}
}

func Test_Handler_getAllLoan(t *testing.T) {
	testHelper := newLoanTestHelper(t)

	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		mockData  mockData
		doMock    func()
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/loans?status=pending",
			mockData: mockData{
				wantRes:  `{"kind":"collection","contents":[{"kind":"loanRequest","id":"LOAN-1","userId":"uid-1","amount":50.00,"duration":6,"purpose":"school fees","status":"pending","createdAt":"2026-03-01T09:00:00Z"}],"total_rows":1}`,
				wantCode: http.StatusOK,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().GetList(gomock.Any(), models.LoanFilter{Status: models.LoanStatusPending}).Return([]models.LoanRequest{
					{
						ID:        "LOAN-1",
						UserID:    "uid-1",
						Amount:    decimal.NewFromInt(50),
						Duration:  6,
						Purpose:   "school fees",
						Status:    models.LoanStatusPending,
						CreatedAt: createdAt,
					},
				}, nil)
			},
		},
		{
			name:      "empty",
			urlCalled: "/api/v1/loans",
			mockData: mockData{
				wantRes:  `{"kind":"collection","contents":[],"total_rows":0}`,
				wantCode: http.StatusOK,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().GetList(gomock.Any(), models.LoanFilter{}).Return(nil, nil)
			},
		},
		{
			name:      "store unavailable",
			urlCalled: "/api/v1/loans?userId=uid-9",
			mockData: mockData{
				wantRes:  `{"status":"error","code":"SERVICE_UNAVAILABLE","message":"service temporarily unavailable","retryable":true}`,
				wantCode: http.StatusServiceUnavailable,
			},
			doMock: func() {
				testHelper.mockService.EXPECT().GetList(gomock.Any(), models.LoanFilter{UserID: "uid-9"}).Return(nil, common.ErrUnavailable)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			code, body := doRequest(t, testHelper.router, http.MethodGet, tt.urlCalled, "")
			require.Equal(t, tt.mockData.wantCode, code)
			require.Equal(t, tt.mockData.wantRes, body)
		})
	}
}
