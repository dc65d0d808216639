package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/unionconnect/go-wallet-admin/internal/common"
	"github.com/unionconnect/go-wallet-admin/internal/common/cache"
	xlog "github.com/unionconnect/go-wallet-admin/internal/common/log"
	"github.com/unionconnect/go-wallet-admin/internal/models"
	"github.com/unionconnect/go-wallet-admin/internal/monitoring"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultPrincipalCacheTTL = 5 * time.Minute
	tokenLeeway              = 30 * time.Second
)

//go:generate mockgen -source=identity_service.go -destination=mock/identity_service.go -package=mock
type IdentityService interface {
	// VerifyToken checks an HS256 token from the identity provider and
	// returns its subject.
	VerifyToken(ctx context.Context, rawToken string) (uid string, err error)

	// GetPrincipal loads the account behind uid, served from cache when present.
	GetPrincipal(ctx context.Context, uid string) (models.Principal, error)

	// AuthenticateAdmin verifies the token and requires the account to be an
	// administrator.
	AuthenticateAdmin(ctx context.Context, rawToken string) (models.Principal, error)

	// InvalidatePrincipal drops the cached principal so the next request
	// reloads it.
	InvalidatePrincipal(ctx context.Context, uid string) error
}

type identity service

var _ IdentityService = (*identity)(nil)

func (s *identity) VerifyToken(_ context.Context, rawToken string) (uid string, err error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return "", common.ErrPrincipalRequired
	}

	conf := s.srv.conf.Identity
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(tokenLeeway),
		jwt.WithExpirationRequired(),
	}
	if conf.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(conf.Issuer))
	}
	if conf.Audience != "" {
		opts = append(opts, jwt.WithAudience(conf.Audience))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(_ *jwt.Token) (any, error) {
		return []byte(conf.SigningKey), nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}

func (s *identity) GetPrincipal(ctx context.Context, uid string) (out models.Principal, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	load := func() (models.Principal, error) {
		account, err := s.srv.sqlRepo.GetUserRepository().GetByID(ctx, uid)
		if err != nil {
			return models.Principal{}, err
		}
		return account.ToPrincipal(), nil
	}

	if s.srv.principalCache == nil {
		return load()
	}

	out, err = s.srv.principalCache.GetOrSet(ctx, cache.GetOrSetOpts[models.Principal]{
		Key:      principalCacheKey(uid),
		TTL:      s.principalCacheTTL(),
		Callback: load,
		OnStoreError: func(err error) {
			xlog.Warn(ctx, "[IDENTITY]", xlog.String("status", "principal not cached"), xlog.String("uid", uid), xlog.Err(err))
		},
	})
	if err != nil && !isStoreError(err) {
		// fall back to the store when the cache fails
		xlog.Warn(ctx, "[IDENTITY]", xlog.String("status", "principal cache unavailable"), xlog.Err(err))
		return load()
	}

	return
}

func (s *identity) AuthenticateAdmin(ctx context.Context, rawToken string) (models.Principal, error) {
	uid, err := s.VerifyToken(ctx, rawToken)
	if err != nil {
		return models.Principal{}, err
	}

	principal, err := s.GetPrincipal(ctx, uid)
	if err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			// a valid token for an account that no longer exists
			return models.Principal{}, fmt.Errorf("%w: %w", common.ErrNotAdmin, err)
		}
		return models.Principal{}, err
	}

	if !principal.IsAdmin {
		return models.Principal{}, common.ErrNotAdmin
	}

	return principal, nil
}

func (s *identity) InvalidatePrincipal(ctx context.Context, uid string) error {
	if s.srv.principalCache == nil {
		return nil
	}
	return s.srv.principalCache.Del(ctx, principalCacheKey(uid))
}

func (s *identity) principalCacheTTL() time.Duration {
	if ttl := s.srv.conf.Identity.PrincipalCacheTTL; ttl > 0 {
		return ttl
	}
	return defaultPrincipalCacheTTL
}

func principalCacheKey(uid string) string {
	return fmt.Sprintf("principal:%s", uid)
}

// isStoreError reports errors raised by the account lookup itself rather
// than by the cache.
func isStoreError(err error) bool {
	return errors.Is(err, common.ErrPrecondition) ||
		errors.Is(err, common.ErrDataNotFound) ||
		errors.Is(err, common.ErrPermissionDenied) ||
		errors.Is(err, common.ErrUnavailable) ||
		errors.Is(err, common.ErrConflict)
}
