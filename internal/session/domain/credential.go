//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "CredentialRepository=CredentialRepository"
package domain

import (
	"context"
	"errors"
)

const Name = "session"

const (
	StateUnauthenticated State = iota
	StateAuthenticated
)

var ErrCredentialNotFound = errors.New("credential not found")

type (
	Credential struct {
		Token Token
		User  UserProfile
	}

	UserProfile struct {
		Name  string
		Email string
		Role  string
	}

	Token string

	// State is derived from the stored credential on every check and never persisted.
	State int

	CredentialRepository interface {
		Token(context.Context) (Token, error)
		Profile(context.Context) (UserProfile, error)
		Epoch(context.Context) (string, error)
		Store(context.Context, Credential) error
		StoreProfile(context.Context, UserProfile) error
		Clear(context.Context) error
		RotateEpoch(context.Context) error
	}
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}

	return "unauthenticated"
}
