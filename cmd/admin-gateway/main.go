package main

import (
	"context"

	"github.com/klwxsrx/school-admin/internal/admin"
	"github.com/klwxsrx/school-admin/internal/admin/infra/http"
	"github.com/klwxsrx/school-admin/internal/pkg/cmd"
	"github.com/klwxsrx/school-admin/internal/session"
	pkgcmd "github.com/klwxsrx/school-admin/pkg/cmd"
	"github.com/klwxsrx/school-admin/pkg/env"
)

func main() {
	ctx := context.Background()
	if err := env.LoadDotEnv(".env"); err != nil {
		panic(err)
	}

	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	sessionContainer := session.NewDependencyContainer(
		infra.KVStore,
		infra.HTTPClientFactory,
		infra.Metrics,
		infra.Logger,
	)
	adminContainer := admin.NewDependencyContainer(
		sessionContainer.GateProvider,
		env.Must(env.ParseWithDefault("ADMIN_PATH_PREFIX", http.DefaultPathPrefix)),
	)

	httpServer := infra.HTTPServer.MustLoad()
	adminContainer.MustRegisterHTTPHandlers(httpServer)

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
