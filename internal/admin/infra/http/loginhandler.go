package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/school-admin/internal/session/api"
	"github.com/klwxsrx/school-admin/pkg/auth"
	pkghttp "github.com/klwxsrx/school-admin/pkg/http"
)

const (
	messageInvalidCredentials = "Invalid email or password."
	messageLoginFailed        = "Sign in is unavailable right now, please try again later."
	messageLoginNotPersisted  = "You are signed in, but the session could not be saved in this browser. You may be signed out after reloading the page."
)

type LoginPageHandler struct {
	paths Paths
}

func NewLoginPageHandler(paths Paths) LoginPageHandler {
	return LoginPageHandler{paths: paths}
}

func (h LoginPageHandler) Method() string {
	return http.MethodGet
}

func (h LoginPageHandler) Path() string {
	return h.paths.Login()
}

func (h LoginPageHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	if isAuthenticated, _ := auth.IsAuthenticated(r.Context()); isAuthenticated {
		w.Redirect(h.paths.Dashboard(), http.StatusSeeOther)
		return nil
	}

	return renderPage(w, "login", loginPage{LoginURL: h.paths.Login()})
}

type LoginHandler struct {
	gates api.GateProvider
	paths Paths
}

func NewLoginHandler(gates api.GateProvider, paths Paths) LoginHandler {
	return LoginHandler{
		gates: gates,
		paths: paths,
	}
}

func (h LoginHandler) Method() string {
	return http.MethodPost
}

func (h LoginHandler) Path() string {
	return h.paths.Login()
}

func (h LoginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	clientID, ok := ClientID(r.Context())
	if !ok {
		return errors.New("client scope is not set")
	}

	email, _ := pkghttp.ParseRequest(r, pkghttp.FormValue[string]("email"), nil)
	password, _ := pkghttp.ParseRequest(r, pkghttp.FormValue[string]("password"), nil)

	page := loginPage{
		LoginURL: h.paths.Login(),
		Email:    email,
	}

	_, err := h.gates.Gate(clientID).Login(r.Context(), email, password)
	switch {
	case err == nil:
		w.Redirect(h.paths.Dashboard(), http.StatusSeeOther)
		return nil
	case errors.Is(err, api.ErrInvalidCredentials):
		page.Error = messageInvalidCredentials
		w.SetStatusCode(http.StatusUnauthorized)
	case errors.Is(err, api.ErrLoginFailed):
		page.Error = messageLoginFailed
		w.SetStatusCode(http.StatusBadGateway)
	case errors.Is(err, api.ErrStoragePersistFailed):
		page.Warning = messageLoginNotPersisted
		page.ContinueURL = h.paths.Dashboard()
		return renderPage(w, "login", page)
	default:
		return err
	}

	if renderErr := renderPage(w, "login", page); renderErr != nil {
		return renderErr
	}

	return err
}
