package http

import (
	"net/http"

	pkghttp "github.com/klwxsrx/school-admin/pkg/http"
)

// NotFoundHandler keeps unknown admin pages behind the authentication requirement.
type NotFoundHandler struct {
	paths Paths
}

func NewNotFoundHandler(paths Paths) NotFoundHandler {
	return NotFoundHandler{paths: paths}
}

func (h NotFoundHandler) Method() string {
	return http.MethodGet
}

func (h NotFoundHandler) Path() string {
	return h.paths.Protected()
}

func (h NotFoundHandler) Handle(w pkghttp.ResponseWriter, _ *http.Request) error {
	w.SetStatusCode(http.StatusNotFound)
	return renderPage(w, "error", errorPage{
		Error:    "Page not found.",
		RetryURL: h.paths.Dashboard(),
	})
}
