package session

import (
	"fmt"

	"github.com/google/uuid"

	commoncmd "github.com/klwxsrx/school-admin/internal/pkg/cmd"
	"github.com/klwxsrx/school-admin/internal/session/api"
	"github.com/klwxsrx/school-admin/internal/session/app/auth"
	"github.com/klwxsrx/school-admin/internal/session/app/service"
	sessioninfrahttp "github.com/klwxsrx/school-admin/internal/session/infra/auth/http"
	sessioninfrakv "github.com/klwxsrx/school-admin/internal/session/infra/kv"
	pkghttp "github.com/klwxsrx/school-admin/pkg/http"
	"github.com/klwxsrx/school-admin/pkg/kv"
	"github.com/klwxsrx/school-admin/pkg/lazy"
	"github.com/klwxsrx/school-admin/pkg/log"
	"github.com/klwxsrx/school-admin/pkg/metric"
	pkgtime "github.com/klwxsrx/school-admin/pkg/time"
)

const authDestination pkghttp.Destination = "auth"

type DependencyContainer struct {
	GateProvider lazy.Loader[api.GateProvider]
}

func NewDependencyContainer(
	store lazy.Loader[kv.Store],
	httpClients lazy.Loader[commoncmd.HTTPClientFactory],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) DependencyContainer {
	backend := authBackendProvider(httpClients)

	return DependencyContainer{
		GateProvider: lazy.New(func() (api.GateProvider, error) {
			return gateProvider{
				store:   store.MustLoad(),
				backend: backend.MustLoad(),
				clock:   pkgtime.NewAdjustableClock(),
				metrics: metrics.MustLoad(),
				logger:  logger.MustLoad(),
			}, nil
		}),
	}
}

func authBackendProvider(httpClients lazy.Loader[commoncmd.HTTPClientFactory]) lazy.Loader[auth.Backend] {
	return lazy.New(func() (auth.Backend, error) {
		return sessioninfrahttp.NewBackend(httpClients.MustLoad().MustInitClient(authDestination)), nil
	})
}

type gateProvider struct {
	store   kv.Store
	backend auth.Backend
	clock   pkgtime.Clock
	metrics metric.Metrics
	logger  log.Logger
}

func (p gateProvider) Gate(clientID uuid.UUID) api.Gate {
	store := kv.WithNamespace(p.store, fmt.Sprintf("client:%s:", clientID))
	return service.NewGate(
		sessioninfrakv.NewCredentialRepository(store),
		p.backend,
		p.clock,
		p.metrics,
		p.logger.WithField("clientID", clientID.String()),
	)
}
