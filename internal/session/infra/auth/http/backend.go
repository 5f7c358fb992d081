package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/klwxsrx/school-admin/internal/session/app/auth"
	"github.com/klwxsrx/school-admin/internal/session/domain"
	pkghttp "github.com/klwxsrx/school-admin/pkg/http"
)

const (
	authenticatePath = ""
	profilePath      = "/profile"
)

type backend struct {
	client pkghttp.Client
}

// NewBackend expects a client whose base url is the auth endpoint itself.
func NewBackend(client pkghttp.Client) auth.Backend {
	return backend{client: client}
}

func (b backend) Authenticate(ctx context.Context, email, password string) (domain.Credential, error) {
	resp, err := b.client.NewRequest(ctx).
		SetBody(authenticateIn{Email: email, Password: password}).
		Post(authenticatePath)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("request auth.authenticate: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.Credential{}, auth.ErrUnauthorized
	}
	if !resp.IsSuccess() {
		return domain.Credential{}, fmt.Errorf("request auth.authenticate: invalid status code %d", resp.StatusCode())
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[authenticateOut](), nil)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("auth.authenticate response: %w", err)
	}
	if body.AccessToken == "" {
		return domain.Credential{}, fmt.Errorf("auth.authenticate response: access_token is empty")
	}

	return domain.Credential{
		Token: domain.Token(body.AccessToken),
		User:  domain.UserProfile(body.User),
	}, nil
}

func (b backend) Profile(ctx context.Context, token domain.Token) (domain.UserProfile, error) {
	resp, err := b.client.NewRequest(ctx).
		SetAuthToken(string(token)).
		Get(profilePath)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("request auth.profile: %w", err)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return domain.UserProfile{}, auth.ErrUnauthorized
	}
	if !resp.IsSuccess() {
		return domain.UserProfile{}, fmt.Errorf("request auth.profile: invalid status code %d", resp.StatusCode())
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[profileOut](), nil)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("auth.profile response: %w", err)
	}

	return domain.UserProfile(body.User), nil
}

type (
	authenticateIn struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	authenticateOut struct {
		User        userOut `json:"user"`
		AccessToken string  `json:"access_token"`
	}

	profileOut struct {
		User userOut `json:"user"`
	}

	userOut struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
)
