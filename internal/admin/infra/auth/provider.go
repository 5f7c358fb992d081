package auth

import (
	"context"
	"fmt"

	"github.com/klwxsrx/school-admin/internal/session/api"
	"github.com/klwxsrx/school-admin/internal/session/domain"
	"github.com/klwxsrx/school-admin/pkg/auth"
)

type provider struct {
	gates api.GateProvider
}

func NewProvider(gates api.GateProvider) auth.Provider {
	return provider{gates: gates}
}

func (p provider) Authenticate(ctx context.Context, token auth.Token) (auth.Authentication, error) {
	t, ok := token.(ClientToken)
	if !ok {
		return auth.Authentication{}, fmt.Errorf("unknown token with type %s", token.Type())
	}

	if p.gates.Gate(t.ClientID).CheckSession(ctx) != domain.StateAuthenticated {
		return auth.Anonymous(), nil
	}

	return auth.Authenticated(auth.Principal{
		Type: PrincipalTypeAdminClient,
		ID:   t.ClientID.String(),
	}), nil
}
