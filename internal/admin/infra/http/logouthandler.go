package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/klwxsrx/school-admin/internal/session/api"
	pkghttp "github.com/klwxsrx/school-admin/pkg/http"
)

const messageLogoutNotPersisted = "You are signed out, but the session could not be removed from this browser storage."

type LogoutHandler struct {
	gates api.GateProvider
	paths Paths
}

func NewLogoutHandler(gates api.GateProvider, paths Paths) LogoutHandler {
	return LogoutHandler{
		gates: gates,
		paths: paths,
	}
}

func (h LogoutHandler) Method() string {
	return http.MethodPost
}

func (h LogoutHandler) Path() string {
	return h.paths.Logout()
}

func (h LogoutHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	clientID, ok := ClientID(r.Context())
	if !ok {
		return errors.New("client scope is not set")
	}

	err := h.gates.Gate(clientID).Logout(r.Context())
	if errors.Is(err, api.ErrStoragePersistFailed) {
		w.SetCookie(newClientIDCookie(uuid.New()))
		return renderPage(w, "login", loginPage{
			LoginURL: h.paths.Login(),
			Warning:  messageLogoutNotPersisted,
		})
	}
	if err != nil {
		return err
	}

	w.Redirect(h.paths.Login(), http.StatusSeeOther)
	return nil
}
