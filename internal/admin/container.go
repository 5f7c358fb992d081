package admin

import (
	admininfraauth "github.com/klwxsrx/school-admin/internal/admin/infra/auth"
	"github.com/klwxsrx/school-admin/internal/admin/infra/http"
	"github.com/klwxsrx/school-admin/internal/session/api"
	pkgauth "github.com/klwxsrx/school-admin/pkg/auth"
	pkghttp "github.com/klwxsrx/school-admin/pkg/http"
	"github.com/klwxsrx/school-admin/pkg/lazy"
)

type DependencyContainer struct {
	authProvider lazy.Loader[pkgauth.Provider]
	paths        http.Paths

	loginPageHandler lazy.Loader[http.LoginPageHandler]
	loginHandler     lazy.Loader[http.LoginHandler]
	logoutHandler    lazy.Loader[http.LogoutHandler]
	dashboardHandler lazy.Loader[http.DashboardHandler]
	notFoundHandler  lazy.Loader[http.NotFoundHandler]
}

func NewDependencyContainer(
	gates lazy.Loader[api.GateProvider],
	pathPrefix string,
) DependencyContainer {
	paths := http.NewPaths(pathPrefix)

	return DependencyContainer{
		authProvider: lazy.New(func() (pkgauth.Provider, error) {
			return admininfraauth.NewProvider(gates.MustLoad()), nil
		}),
		paths: paths,
		loginPageHandler: lazy.New(func() (http.LoginPageHandler, error) {
			return http.NewLoginPageHandler(paths), nil
		}),
		loginHandler: lazy.New(func() (http.LoginHandler, error) {
			return http.NewLoginHandler(gates.MustLoad(), paths), nil
		}),
		logoutHandler: lazy.New(func() (http.LogoutHandler, error) {
			return http.NewLogoutHandler(gates.MustLoad(), paths), nil
		}),
		dashboardHandler: lazy.New(func() (http.DashboardHandler, error) {
			return http.NewDashboardHandler(gates.MustLoad(), paths), nil
		}),
		notFoundHandler: lazy.New(func() (http.NotFoundHandler, error) {
			return http.NewNotFoundHandler(paths), nil
		}),
	}
}

// MustRegisterHTTPHandlers registers the catch-all route last so that it only receives unknown admin pages.
func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	clientScope := http.WithClientScope()
	withAuth := pkghttp.WithAuth(c.authProvider.MustLoad(), http.ClientTokenProvider)
	authRequired := pkghttp.WithAuthenticationRequirement(c.paths.Login())

	registry.Register(c.loginPageHandler.MustLoad(), clientScope, withAuth)
	registry.Register(c.loginHandler.MustLoad(), clientScope)
	registry.Register(c.logoutHandler.MustLoad(), clientScope, withAuth, authRequired)
	registry.Register(c.dashboardHandler.MustLoad(), clientScope, withAuth, authRequired)
	registry.Register(c.notFoundHandler.MustLoad(), clientScope, withAuth, authRequired)
}
