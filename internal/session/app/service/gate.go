package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/klwxsrx/school-admin/internal/session/app/auth"
	"github.com/klwxsrx/school-admin/internal/session/domain"
	"github.com/klwxsrx/school-admin/pkg/log"
	"github.com/klwxsrx/school-admin/pkg/metric"
	pkgtime "github.com/klwxsrx/school-admin/pkg/time"
)

type (
	// Gate decides whether the client behind the credential repository may see the admin area.
	Gate interface {
		CheckSession(context.Context) domain.State
		Login(ctx context.Context, email, password string) (domain.Credential, error)
		Logout(context.Context) error
		FetchProfile(context.Context) (domain.UserProfile, error)
	}

	gate struct {
		credentials domain.CredentialRepository
		backend     auth.Backend
		clock       pkgtime.Clock
		metrics     metric.Metrics
		logger      log.Logger
	}
)

func NewGate(
	credentials domain.CredentialRepository,
	backend auth.Backend,
	clock pkgtime.Clock,
	metrics metric.Metrics,
	logger log.Logger,
) Gate {
	return gate{
		credentials: credentials,
		backend:     backend,
		clock:       clock,
		metrics:     metrics,
		logger:      logger,
	}
}

func (g gate) CheckSession(ctx context.Context) domain.State {
	token, err := g.credentials.Token(ctx)
	if errors.Is(err, domain.ErrCredentialNotFound) {
		return domain.StateUnauthenticated
	}
	if err != nil {
		g.logger.WithError(err).Error(ctx, "failed to read session token")
		return domain.StateUnauthenticated
	}

	expiresAt, err := DecodeExpiry(token)
	if err == nil && g.clock.Now(ctx).Before(expiresAt) {
		return domain.StateAuthenticated
	}

	l := g.logger.WithError(err)
	if err == nil {
		l = l.WithField("expiredAt", expiresAt)
	}
	l.Info(ctx, "stored session is not valid, clearing credential")

	if clearErr := g.credentials.Clear(ctx); clearErr != nil {
		g.logger.WithError(clearErr).Warn(ctx, "failed to clear invalid credential")
	}

	return domain.StateUnauthenticated
}

func (g gate) Login(ctx context.Context, email, password string) (domain.Credential, error) {
	credential, err := g.login(ctx, email, password)
	g.metrics.With(metric.Labels{"outcome": loginOutcome(err)}).Increment("session_login_total")
	return credential, err
}

func (g gate) login(ctx context.Context, email, password string) (domain.Credential, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Credential{}, ErrInvalidCredentials
	}

	epoch, err := g.credentials.Epoch(ctx)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("%w: read session epoch: %w", ErrLoginFailed, err)
	}

	credential, err := g.backend.Authenticate(ctx, email, password)
	if errors.Is(err, auth.ErrUnauthorized) {
		return domain.Credential{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.Credential{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	if _, err = DecodeExpiry(credential.Token); err != nil {
		return domain.Credential{}, fmt.Errorf("%w: backend returned unusable token: %w", ErrLoginFailed, err)
	}

	err = g.ensureResponseIsLive(ctx, epoch)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	err = g.credentials.Store(ctx, credential)
	if err != nil {
		g.logger.WithError(err).Error(ctx, "failed to persist credential")
		return credential, fmt.Errorf("%w: %w", ErrStoragePersistFailed, err)
	}

	g.logger.WithField("role", credential.User.Role).Info(ctx, "admin logged in")
	return credential, nil
}

func (g gate) Logout(ctx context.Context) error {
	clearErr := g.credentials.Clear(ctx)
	rotateErr := g.credentials.RotateEpoch(ctx)
	g.metrics.Increment("session_logout_total")

	err := errors.Join(clearErr, rotateErr)
	if err != nil {
		g.logger.WithError(err).Error(ctx, "failed to clear credential on logout")
		return fmt.Errorf("%w: %w", ErrStoragePersistFailed, err)
	}

	return nil
}

func (g gate) FetchProfile(ctx context.Context) (domain.UserProfile, error) {
	token, err := g.credentials.Token(ctx)
	if errors.Is(err, domain.ErrCredentialNotFound) {
		return domain.UserProfile{}, ErrSessionExpired
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("%w: read session token: %w", ErrProfileFetchFailed, err)
	}

	profile, err := g.backend.Profile(ctx, token)
	if errors.Is(err, auth.ErrUnauthorized) {
		g.clearIfCurrent(ctx, token)
		return domain.UserProfile{}, ErrSessionExpired
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("%w: %w", ErrProfileFetchFailed, err)
	}

	current, err := g.credentials.Token(ctx)
	if err != nil || current != token {
		return domain.UserProfile{}, ErrSessionExpired
	}

	err = g.credentials.StoreProfile(ctx, profile)
	if err != nil {
		g.logger.WithError(err).Warn(ctx, "failed to refresh cached profile")
	}

	return profile, nil
}

// ensureResponseIsLive rejects responses that arrived after the caller left or the session was reset.
func (g gate) ensureResponseIsLive(ctx context.Context, epoch string) error {
	if ctx.Err() != nil {
		return fmt.Errorf("request abandoned: %w", ctx.Err())
	}

	current, err := g.credentials.Epoch(ctx)
	if err != nil {
		return fmt.Errorf("read session epoch: %w", err)
	}
	if current != epoch {
		return errors.New("session changed while request was in flight")
	}

	return nil
}

func (g gate) clearIfCurrent(ctx context.Context, token domain.Token) {
	current, err := g.credentials.Token(ctx)
	if err != nil || current != token {
		return
	}

	g.logger.Info(ctx, "backend rejected session token, clearing credential")
	if err = g.credentials.Clear(ctx); err != nil {
		g.logger.WithError(err).Warn(ctx, "failed to clear rejected credential")
	}
}

func loginOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrStoragePersistFailed):
		return "storage_failed"
	default:
		return "failed"
	}
}
