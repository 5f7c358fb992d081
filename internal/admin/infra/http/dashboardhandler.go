package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/school-admin/internal/session/api"
	pkghttp "github.com/klwxsrx/school-admin/pkg/http"
)

const messageProfileFetchFailed = "Your profile could not be loaded, please try again later."

type DashboardHandler struct {
	gates api.GateProvider
	paths Paths
}

func NewDashboardHandler(gates api.GateProvider, paths Paths) DashboardHandler {
	return DashboardHandler{
		gates: gates,
		paths: paths,
	}
}

func (h DashboardHandler) Method() string {
	return http.MethodGet
}

func (h DashboardHandler) Path() string {
	return h.paths.Dashboard()
}

func (h DashboardHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	clientID, ok := ClientID(r.Context())
	if !ok {
		return errors.New("client scope is not set")
	}

	profile, err := h.gates.Gate(clientID).FetchProfile(r.Context())
	switch {
	case err == nil:
		return renderPage(w, "dashboard", dashboardPage{
			Profile:   profile,
			LogoutURL: h.paths.Logout(),
		})
	case errors.Is(err, api.ErrSessionExpired):
		w.Redirect(h.paths.Login(), http.StatusSeeOther)
		return nil
	case errors.Is(err, api.ErrProfileFetchFailed):
		w.SetStatusCode(http.StatusBadGateway)
		if renderErr := renderPage(w, "error", errorPage{
			Error:    messageProfileFetchFailed,
			RetryURL: h.paths.Dashboard(),
		}); renderErr != nil {
			return renderErr
		}
		return err
	default:
		return err
	}
}
