package http

import (
	"context"
	"net/http"

	"github.com/klwxsrx/school-admin/pkg/auth"
)

type AuthTokenProvider func(*http.Request) (auth.Token, bool)

func WithAuth(provider auth.Provider, tokenProviders ...AuthTokenProvider) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			var token auth.Token
			for _, tokenProvider := range tokenProviders {
				token, ok = tokenProvider(r)
				if ok {
					break
				}
			}
			if !ok {
				handler.ServeHTTP(w, setHandlerAuthentication(r, auth.Anonymous()))
				return
			}

			authData, err := provider.Authenticate(r.Context(), token)
			if err != nil {
				writeHandlerResult(r.Context(), w, http.StatusInternalServerError, err)
				return
			}

			handler.ServeHTTP(w, setHandlerAuthentication(r, authData))
		})
	})
}

// WithAuthenticationRequirement answers 401 to anonymous requests, or redirects them when redirectURL is set.
// The handler is never called for an anonymous request.
func WithAuthenticationRequirement(redirectURL string) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isAuthenticated, err := auth.IsAuthenticated(r.Context())
			if err != nil {
				writeHandlerResult(r.Context(), w, http.StatusInternalServerError, err)
				return
			}

			if isAuthenticated {
				handler.ServeHTTP(w, r)
				return
			}

			if redirectURL == "" {
				writeHandlerResult(r.Context(), w, http.StatusUnauthorized, auth.ErrUnauthenticated)
				return
			}

			w.Header().Set("Location", redirectURL)
			writeHandlerResult(r.Context(), w, http.StatusSeeOther, auth.ErrUnauthenticated)
		})
	})
}

func setHandlerAuthentication(r *http.Request, a auth.Authentication) *http.Request {
	getHandlerMetadata(r.Context()).Principal = a.Principal
	return r.WithContext(auth.WithAuthentication(r.Context(), a))
}

func writeHandlerResult(ctx context.Context, w http.ResponseWriter, httpCode int, err error) {
	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err

	w.WriteHeader(httpCode)
}
