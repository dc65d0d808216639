package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSigningKey = "test-signing-key-with-enough-entropy"

type tokenOption func(*jwt.RegisteredClaims)

func signToken(t *testing.T, subject string, opts ...tokenOption) string {
	t.Helper()

	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    "unionconnect-identity",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	for _, opt := range opts {
		opt(claims)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return token
}

func TestIdentityService_VerifyToken(t *testing.T) {
	testHelper := serviceTestHelper(t)

	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "uid-1",
		Issuer:    "unionconnect-identity",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("another-key"))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "uid-1",
		Issuer:    "unionconnect-identity",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantUID string
		wantErr error
	}{
		{
			name:    "valid token",
			token:   signToken(t, "uid-1"),
			wantUID: "uid-1",
		},
		{
			name:    "empty token",
			token:   "   ",
			wantErr: common.ErrPrincipalRequired,
		},
		{
			name: "expired token",
			token: signToken(t, "uid-1", func(c *jwt.RegisteredClaims) {
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
			}),
			wantErr: common.ErrInvalidToken,
		},
		{
			name: "missing expiry",
			token: signToken(t, "uid-1", func(c *jwt.RegisteredClaims) {
				c.ExpiresAt = nil
			}),
			wantErr: common.ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: signToken(t, "uid-1", func(c *jwt.RegisteredClaims) {
				c.Issuer = "someone-else"
			}),
			wantErr: common.ErrInvalidToken,
		},
		{
			name:    "signed with another key",
			token:   otherKey,
			wantErr: common.ErrInvalidToken,
		},
		{
			name:    "unsigned token",
			token:   noneAlg,
			wantErr: common.ErrInvalidToken,
		},
		{
			name:    "missing subject",
			token:   signToken(t, ""),
			wantErr: common.ErrInvalidToken,
		},
		{
			name:    "garbage",
			token:   "not.a.token",
			wantErr: common.ErrInvalidToken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uid, err := testHelper.identityService.VerifyToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, common.ErrUnauthenticated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUID, uid)
		})
	}
}

func TestIdentityService_AuthenticateAdmin(t *testing.T) {
	testHelper := serviceTestHelper(t)

	tests := []struct {
		name    string
		uid     string
		doMock  func(uid string)
		wantErr error
	}{
		{
			name: "admin",
			uid:  "uid-admin",
			doMock: func(uid string) {
				testHelper.mockUserRepository.EXPECT().GetByID(gomock.Any(), uid).Return(models.Account{
					ID: uid, MemberID: "CU-0001", Email: "admin@unionconnect.test", IsAdmin: true,
				}, nil)
			},
		},
		{
			name: "not an admin",
			uid:  "uid-member",
			doMock: func(uid string) {
				testHelper.mockUserRepository.EXPECT().GetByID(gomock.Any(), uid).Return(models.Account{ID: uid}, nil)
			},
			wantErr: common.ErrNotAdmin,
		},
		{
			name: "account removed",
			uid:  "uid-gone",
			doMock: func(uid string) {
				testHelper.mockUserRepository.EXPECT().GetByID(gomock.Any(), uid).Return(models.Account{}, common.ErrAccountNotFound)
			},
			wantErr: common.ErrPermissionDenied,
		},
		{
			name: "store unavailable",
			uid:  "uid-down",
			doMock: func(uid string) {
				testHelper.mockUserRepository.EXPECT().GetByID(gomock.Any(), uid).Return(models.Account{}, common.ErrUnavailable)
			},
			wantErr: common.ErrUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock(tt.uid)

			got, err := testHelper.identityService.AuthenticateAdmin(context.Background(), signToken(t, tt.uid))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.uid, got.UID)
			assert.True(t, got.IsAdmin)
		})
	}
}

func TestIdentityService_GetPrincipal_cached(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockUserRepository.EXPECT().GetByID(gomock.Any(), "uid-1").
		Return(models.Account{ID: "uid-1", IsAdmin: true}, nil).
		Times(1)

	first, err := testHelper.identityService.GetPrincipal(ctx, "uid-1")
	require.NoError(t, err)
	second, err := testHelper.identityService.GetPrincipal(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	cached, err := testHelper.principalCache.Get(ctx, "principal:uid-1")
	require.NoError(t, err)
	assert.True(t, cached.IsAdmin)
}

func TestIdentityService_InvalidatePrincipal(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ctx := context.Background()

	testHelper.mockUserRepository.EXPECT().GetByID(gomock.Any(), "uid-1").
		Return(models.Account{ID: "uid-1", IsAdmin: true}, nil)
	testHelper.mockUserRepository.EXPECT().GetByID(gomock.Any(), "uid-1").
		Return(models.Account{ID: "uid-1", IsAdmin: false}, nil)

	principal, err := testHelper.identityService.GetPrincipal(ctx, "uid-1")
	require.NoError(t, err)
	assert.True(t, principal.IsAdmin)

	require.NoError(t, testHelper.identityService.InvalidatePrincipal(ctx, "uid-1"))

	_, err = testHelper.identityService.AuthenticateAdmin(ctx, signToken(t, "uid-1"))
	assert.True(t, errors.Is(err, common.ErrNotAdmin))
}
