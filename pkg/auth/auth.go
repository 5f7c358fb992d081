package auth

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("not authenticated")

type (
	// Provider resolves a request token into the principal holding it.
	Provider interface {
		Authenticate(context.Context, Token) (Authentication, error)
	}

	Token interface {
		Type() PrincipalType
	}

	Principal struct {
		Type PrincipalType
		ID   string
	}

	Authentication struct {
		Principal *Principal
	}

	PrincipalType string
)

func Authenticated(principal Principal) Authentication {
	return Authentication{Principal: &principal}
}

func Anonymous() Authentication {
	return Authentication{}
}

func (a Authentication) IsAuthenticated() bool {
	return a.Principal != nil
}
