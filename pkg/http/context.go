package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/school-admin/pkg/auth"
)

type contextKey int

const handlerMetaContextKey contextKey = iota

type (
	Panic struct {
		Message    string
		Stacktrace []byte
	}

	handlerMetadata struct {
		RouteName string
		Code      int
		Panic     *Panic
		Error     error
		Principal *auth.Principal
	}
)

func withHandlerMetadata(router *mux.Router) *mux.Router {
	router.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := &handlerMetadata{Code: http.StatusOK}
			if route := mux.CurrentRoute(r); route != nil {
				meta.RouteName = route.GetName()
			}

			ctx := context.WithValue(r.Context(), handlerMetaContextKey, meta)
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	return router
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if ok {
		return meta
	}

	return &handlerMetadata{}
}
