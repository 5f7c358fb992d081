package auth

import (
	"github.com/google/uuid"

	"github.com/klwxsrx/school-admin/pkg/auth"
)

const PrincipalTypeAdminClient auth.PrincipalType = "adminClient"

// ClientToken names the browser whose stored credential decides the authentication.
type ClientToken struct {
	ClientID uuid.UUID
}

func (t ClientToken) Type() auth.PrincipalType {
	return PrincipalTypeAdminClient
}
