package admin_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/school-admin/internal/admin"
	adminhttp "github.com/klwxsrx/school-admin/internal/admin/infra/http"
	"github.com/klwxsrx/school-admin/internal/pkg/cmd"
	"github.com/klwxsrx/school-admin/internal/session"
	sessioninfrakv "github.com/klwxsrx/school-admin/internal/session/infra/kv"
	pkghttp "github.com/klwxsrx/school-admin/pkg/http"
	"github.com/klwxsrx/school-admin/pkg/kv"
	"github.com/klwxsrx/school-admin/pkg/lazy"
	"github.com/klwxsrx/school-admin/pkg/log"
	"github.com/klwxsrx/school-admin/pkg/metric"
)

type authBackendStub struct {
	token          string
	loginStatus    atomic.Int32
	profileStatus  atomic.Int32
	profileCalls   atomic.Int32
	authorizations atomic.Value
}

func newAuthBackendStub(t *testing.T) (*authBackendStub, *httptest.Server) {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	stub := &authBackendStub{token: token}
	stub.loginStatus.Store(http.StatusOK)
	stub.profileStatus.Store(http.StatusOK)

	router := http.NewServeMux()
	router.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)

		status := int(stub.loginStatus.Load())
		if status == http.StatusOK && (in.Email != "admin@x.com" || in.Password != "right") {
			status = http.StatusUnauthorized
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		_, _ = fmt.Fprintf(w, `{"user":{"name":"A","email":"admin@x.com","role":"admin"},"access_token":%q}`, token)
	})
	router.HandleFunc("GET /api/auth/login/profile", func(w http.ResponseWriter, r *http.Request) {
		stub.profileCalls.Add(1)
		stub.authorizations.Store(r.Header.Get("Authorization"))

		status := int(stub.profileStatus.Load())
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		_, _ = w.Write([]byte(`{"user":{"name":"Alice","email":"admin@x.com","role":"admin"}}`))
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return stub, srv
}

func loaded[T any](v T) lazy.Loader[T] {
	return lazy.New(func() (T, error) { return v, nil })
}

func newGateway(t *testing.T, store kv.Store) (*authBackendStub, *httptest.Server) {
	t.Helper()

	stub, authSrv := newAuthBackendStub(t)
	t.Setenv("AUTH_SERVICE_URL", authSrv.URL+"/api/auth/login")

	sessionContainer := session.NewDependencyContainer(
		loaded(store),
		loaded(cmd.NewHTTPClientFactory()),
		loaded(metric.NewStub()),
		loaded(log.New(log.LevelDisabled)),
	)
	adminContainer := admin.NewDependencyContainer(sessionContainer.GateProvider, adminhttp.DefaultPathPrefix)

	server := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithHealthCheck())
	adminContainer.MustRegisterHTTPHandlers(server)

	gateway := httptest.NewServer(server)
	t.Cleanup(gateway.Close)

	return stub, gateway
}

func newBrowser(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

type response struct {
	code     int
	location string
	body     string
}

func get(t *testing.T, browser *http.Client, u string) response {
	t.Helper()

	resp, err := browser.Get(u)
	require.NoError(t, err)
	return readResponse(t, resp)
}

func post(t *testing.T, browser *http.Client, u string, form url.Values) response {
	t.Helper()

	resp, err := browser.PostForm(u, form)
	require.NoError(t, err)
	return readResponse(t, resp)
}

func readResponse(t *testing.T, resp *http.Response) response {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return response{
		code:     resp.StatusCode,
		location: resp.Header.Get("Location"),
		body:     string(body),
	}
}

func clientID(t *testing.T, browser *http.Client, gatewayURL string) string {
	t.Helper()

	u, err := url.Parse(gatewayURL)
	require.NoError(t, err)
	for _, c := range browser.Jar.Cookies(u) {
		if c.Name == adminhttp.ClientIDCookieName {
			return c.Value
		}
	}

	t.Fatal("client id cookie is not set")
	return ""
}

var validForm = url.Values{"email": {"admin@x.com"}, "password": {"right"}}

func TestGateway_ProtectedRoutesRedirectBeforeHandler(t *testing.T) {
	stub, gateway := newGateway(t, kv.NewMemoryStore())
	browser := newBrowser(t)

	for _, path := range []string{"/admin", "/admin/", "/admin/notices/42"} {
		resp := get(t, browser, gateway.URL+path)
		assert.Equal(t, http.StatusSeeOther, resp.code, path)
		assert.Equal(t, "/admin/login", resp.location, path)
	}

	resp := post(t, browser, gateway.URL+"/admin/logout", nil)
	assert.Equal(t, http.StatusSeeOther, resp.code)
	assert.Equal(t, "/admin/login", resp.location)

	assert.Zero(t, stub.profileCalls.Load())
	assert.NotEmpty(t, clientID(t, browser, gateway.URL))
}

func TestGateway_LoginPageIsOpen(t *testing.T) {
	_, gateway := newGateway(t, kv.NewMemoryStore())

	resp := get(t, newBrowser(t), gateway.URL+"/admin/login")
	assert.Equal(t, http.StatusOK, resp.code)
	assert.Contains(t, resp.body, `<form method="post" action="/admin/login">`)
}

func TestGateway_LoginDashboardLogout(t *testing.T) {
	store := kv.NewMemoryStore()
	stub, gateway := newGateway(t, store)
	browser := newBrowser(t)

	resp := post(t, browser, gateway.URL+"/admin/login", validForm)
	require.Equal(t, http.StatusSeeOther, resp.code)
	assert.Equal(t, "/admin", resp.location)

	id := clientID(t, browser, gateway.URL)
	token, err := store.Get(context.Background(), fmt.Sprintf("client:%s:%s", id, sessioninfrakv.KeyToken))
	require.NoError(t, err)
	assert.Equal(t, stub.token, token)

	resp = get(t, browser, gateway.URL+"/admin")
	assert.Equal(t, http.StatusOK, resp.code)
	assert.Contains(t, resp.body, "Welcome, Alice")
	assert.Equal(t, "Bearer "+stub.token, stub.authorizations.Load())

	resp = get(t, browser, gateway.URL+"/admin/login")
	assert.Equal(t, http.StatusSeeOther, resp.code)
	assert.Equal(t, "/admin", resp.location)

	resp = get(t, browser, gateway.URL+"/admin/unknown")
	assert.Equal(t, http.StatusNotFound, resp.code)

	resp = post(t, browser, gateway.URL+"/admin/logout", nil)
	assert.Equal(t, http.StatusSeeOther, resp.code)
	assert.Equal(t, "/admin/login", resp.location)

	resp = get(t, browser, gateway.URL+"/admin")
	assert.Equal(t, http.StatusSeeOther, resp.code)
	assert.Equal(t, "/admin/login", resp.location)

	_, err = store.Get(context.Background(), fmt.Sprintf("client:%s:%s", id, sessioninfrakv.KeyToken))
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestGateway_SessionsAreScopedPerBrowser(t *testing.T) {
	_, gateway := newGateway(t, kv.NewMemoryStore())
	signedIn := newBrowser(t)
	other := newBrowser(t)

	resp := post(t, signedIn, gateway.URL+"/admin/login", validForm)
	require.Equal(t, http.StatusSeeOther, resp.code)

	resp = get(t, other, gateway.URL+"/admin")
	assert.Equal(t, http.StatusSeeOther, resp.code)
	assert.Equal(t, "/admin/login", resp.location)

	resp = get(t, signedIn, gateway.URL+"/admin")
	assert.Equal(t, http.StatusOK, resp.code)
}

func TestGateway_LoginErrors(t *testing.T) {
	tests := []struct {
		name        string
		loginStatus int
		form        url.Values
		expectCode  int
		expectBody  string
	}{
		{
			name:        "invalid_credentials",
			loginStatus: http.StatusOK,
			form:        url.Values{"email": {"admin@x.com"}, "password": {"wrong"}},
			expectCode:  http.StatusUnauthorized,
			expectBody:  "Invalid email or password.",
		},
		{
			name:        "missing_password",
			loginStatus: http.StatusOK,
			form:        url.Values{"email": {"admin@x.com"}},
			expectCode:  http.StatusUnauthorized,
			expectBody:  "Invalid email or password.",
		},
		{
			name:        "backend_failure",
			loginStatus: http.StatusInternalServerError,
			form:        validForm,
			expectCode:  http.StatusBadGateway,
			expectBody:  "Sign in is unavailable right now",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub, gateway := newGateway(t, kv.NewMemoryStore())
			stub.loginStatus.Store(int32(tc.loginStatus))
			browser := newBrowser(t)

			resp := post(t, browser, gateway.URL+"/admin/login", tc.form)
			assert.Equal(t, tc.expectCode, resp.code)
			assert.Contains(t, resp.body, tc.expectBody)
			assert.Contains(t, resp.body, `value="admin@x.com"`)

			resp = get(t, browser, gateway.URL+"/admin")
			assert.Equal(t, http.StatusSeeOther, resp.code)
		})
	}
}

func TestGateway_DashboardProfileErrors(t *testing.T) {
	t.Run("rejected_token_signs_out", func(t *testing.T) {
		stub, gateway := newGateway(t, kv.NewMemoryStore())
		browser := newBrowser(t)
		require.Equal(t, http.StatusSeeOther, post(t, browser, gateway.URL+"/admin/login", validForm).code)

		stub.profileStatus.Store(http.StatusUnauthorized)
		resp := get(t, browser, gateway.URL+"/admin")
		assert.Equal(t, http.StatusSeeOther, resp.code)
		assert.Equal(t, "/admin/login", resp.location)

		stub.profileStatus.Store(http.StatusOK)
		resp = get(t, browser, gateway.URL+"/admin")
		assert.Equal(t, http.StatusSeeOther, resp.code)
	})

	t.Run("backend_failure_keeps_session", func(t *testing.T) {
		stub, gateway := newGateway(t, kv.NewMemoryStore())
		browser := newBrowser(t)
		require.Equal(t, http.StatusSeeOther, post(t, browser, gateway.URL+"/admin/login", validForm).code)

		stub.profileStatus.Store(http.StatusServiceUnavailable)
		resp := get(t, browser, gateway.URL+"/admin")
		assert.Equal(t, http.StatusBadGateway, resp.code)
		assert.True(t, strings.Contains(resp.body, "could not be loaded"))

		stub.profileStatus.Store(http.StatusOK)
		resp = get(t, browser, gateway.URL+"/admin")
		assert.Equal(t, http.StatusOK, resp.code)
	})
}
