package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/klwxsrx/school-admin/internal/session/domain"
	"github.com/klwxsrx/school-admin/pkg/kv"
)

const (
	KeyToken = "auth.token"
	KeyUser  = "auth.user"
	KeyEpoch = "auth.epoch"

	// KeyLegacyLoggedInFlag is kept for pages still checking the old boolean gate, it is never read here.
	KeyLegacyLoggedInFlag = "auth.isAdminLoggedIn"
)

type credentialRepository struct {
	store kv.Store
}

func NewCredentialRepository(store kv.Store) domain.CredentialRepository {
	return credentialRepository{store: store}
}

func (r credentialRepository) Token(ctx context.Context) (domain.Token, error) {
	token, err := r.store.Get(ctx, KeyToken)
	if errors.Is(err, kv.ErrNotFound) || err == nil && token == "" {
		return "", domain.ErrCredentialNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}

	return domain.Token(token), nil
}

func (r credentialRepository) Profile(ctx context.Context) (domain.UserProfile, error) {
	encoded, err := r.store.Get(ctx, KeyUser)
	if errors.Is(err, kv.ErrNotFound) {
		return domain.UserProfile{}, domain.ErrCredentialNotFound
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("get user: %w", err)
	}

	var user userProfile
	err = json.Unmarshal([]byte(encoded), &user)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("decode user: %w", err)
	}

	return domain.UserProfile(user), nil
}

func (r credentialRepository) Epoch(ctx context.Context) (string, error) {
	epoch, err := r.store.Get(ctx, KeyEpoch)
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get epoch: %w", err)
	}

	return epoch, nil
}

func (r credentialRepository) Store(ctx context.Context, credential domain.Credential) error {
	encodedUser, err := json.Marshal(userProfile(credential.User))
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	err = r.set(ctx,
		KeyToken, string(credential.Token),
		KeyUser, string(encodedUser),
		KeyLegacyLoggedInFlag, "true",
	)
	if err != nil {
		rollbackErr := r.store.Delete(ctx, KeyToken, KeyUser, KeyLegacyLoggedInFlag)
		return errors.Join(err, rollbackErr)
	}

	return nil
}

func (r credentialRepository) StoreProfile(ctx context.Context, profile domain.UserProfile) error {
	encodedUser, err := json.Marshal(userProfile(profile))
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	return r.set(ctx, KeyUser, string(encodedUser))
}

func (r credentialRepository) Clear(ctx context.Context) error {
	err := r.store.Delete(ctx, KeyToken, KeyUser, KeyLegacyLoggedInFlag)
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}

	return nil
}

func (r credentialRepository) RotateEpoch(ctx context.Context) error {
	return r.set(ctx, KeyEpoch, uuid.NewString())
}

func (r credentialRepository) set(ctx context.Context, keyValues ...string) error {
	for i := 0; i+1 < len(keyValues); i += 2 {
		err := r.store.Set(ctx, keyValues[i], keyValues[i+1])
		if err != nil {
			return fmt.Errorf("set %s: %w", keyValues[i], err)
		}
	}

	return nil
}

type userProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
