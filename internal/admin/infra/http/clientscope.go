package http

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	admininfraauth "github.com/klwxsrx/school-admin/internal/admin/infra/auth"
	pkgauth "github.com/klwxsrx/school-admin/pkg/auth"
	pkghttp "github.com/klwxsrx/school-admin/pkg/http"
)

const (
	ClientIDCookieName = "admin_client_id"

	clientIDCookieMaxAge = 365 * 24 * time.Hour
)

const clientIDContextKey contextKey = iota

type contextKey int

// WithClientScope binds every request to a browser, issuing a new client id cookie when the request has none.
func WithClientScope() pkghttp.ServerOption {
	return pkghttp.WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID, err := pkghttp.ParseRequest(r, pkghttp.CookieValue[uuid.UUID](ClientIDCookieName), nil)
			if err != nil || clientID == uuid.Nil {
				clientID = uuid.New()
				http.SetCookie(w, newClientIDCookie(clientID))
			}

			ctx := context.WithValue(r.Context(), clientIDContextKey, clientID)
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
}

func ClientID(ctx context.Context) (uuid.UUID, bool) {
	clientID, ok := ctx.Value(clientIDContextKey).(uuid.UUID)
	return clientID, ok
}

func ClientTokenProvider(r *http.Request) (pkgauth.Token, bool) {
	clientID, ok := ClientID(r.Context())
	if !ok {
		return nil, false
	}

	return admininfraauth.ClientToken{ClientID: clientID}, true
}

func newClientIDCookie(clientID uuid.UUID) *http.Cookie {
	return &http.Cookie{
		Name:     ClientIDCookieName,
		Value:    clientID.String(),
		Path:     "/",
		MaxAge:   int(clientIDCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
