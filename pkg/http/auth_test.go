package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/school-admin/pkg/auth"
	pkghttp "github.com/klwxsrx/school-admin/pkg/http"
)

const testPrincipalType auth.PrincipalType = "tester"

type (
	testToken struct {
		value string
	}

	testProvider struct {
		err error
	}
)

func (t testToken) Type() auth.PrincipalType {
	return testPrincipalType
}

func (p testProvider) Authenticate(_ context.Context, token auth.Token) (auth.Authentication, error) {
	if p.err != nil {
		return auth.Authentication{}, p.err
	}

	t, ok := token.(testToken)
	if !ok || t.value != "valid" {
		return auth.Anonymous(), nil
	}

	return auth.Authenticated(auth.Principal{Type: testPrincipalType, ID: t.value}), nil
}

func testTokenProvider(r *http.Request) (auth.Token, bool) {
	value := r.Header.Get("X-Test-Token")
	if value == "" {
		return nil, false
	}

	return testToken{value: value}, true
}

func TestWithAuthenticationRequirement(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		redirectURL    string
		providerErr    error
		expectCode     int
		expectLocation string
		expectHandled  bool
	}{
		{
			name:          "handled_when_authenticated",
			token:         "valid",
			redirectURL:   "/admin/login",
			expectCode:    http.StatusOK,
			expectHandled: true,
		},
		{
			name:           "redirect_without_token",
			redirectURL:    "/admin/login",
			expectCode:     http.StatusSeeOther,
			expectLocation: "/admin/login",
		},
		{
			name:           "redirect_with_rejected_token",
			token:          "expired",
			redirectURL:    "/admin/login",
			expectCode:     http.StatusSeeOther,
			expectLocation: "/admin/login",
		},
		{
			name:       "unauthorized_without_redirect_url",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:        "internal_error_when_provider_fails",
			token:       "valid",
			redirectURL: "/admin/login",
			providerErr: errors.New("storage disabled"),
			expectCode:  http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var handled bool
			srv := newTestServer()
			srv.Register(
				testHandler{
					method: http.MethodGet,
					path:   "/admin",
					handle: func(_ pkghttp.ResponseWriter, r *http.Request) error {
						handled = true
						a, ok := auth.GetAuthentication(r.Context())
						assert.True(t, ok)
						assert.True(t, a.IsAuthenticated())
						return nil
					},
				},
				pkghttp.WithAuth(testProvider{err: tc.providerErr}, testTokenProvider),
				pkghttp.WithAuthenticationRequirement(tc.redirectURL),
			)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.token != "" {
				req.Header.Set("X-Test-Token", tc.token)
			}
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectCode, rec.Code)
			assert.Equal(t, tc.expectLocation, rec.Header().Get("Location"))
			assert.Equal(t, tc.expectHandled, handled)
		})
	}
}

func TestWithAuth_AnonymousReachesOpenHandler(t *testing.T) {
	var authenticated *bool
	srv := newTestServer()
	srv.Register(
		testHandler{
			method: http.MethodGet,
			path:   "/admin/login",
			handle: func(_ pkghttp.ResponseWriter, r *http.Request) error {
				result, err := auth.IsAuthenticated(r.Context())
				assert.NoError(t, err)
				authenticated = &result
				return nil
			},
		},
		pkghttp.WithAuth(testProvider{}, testTokenProvider),
	)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.NotNil(t, authenticated) {
		assert.False(t, *authenticated)
	}
}
