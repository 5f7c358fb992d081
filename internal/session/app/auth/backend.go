//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Backend=Backend"
package auth

import (
	"context"
	"errors"

	"github.com/klwxsrx/school-admin/internal/session/domain"
)

// ErrUnauthorized is returned when the backend rejects the submitted credentials or token.
var ErrUnauthorized = errors.New("auth backend rejected the request")

type Backend interface {
	Authenticate(ctx context.Context, email, password string) (domain.Credential, error)
	Profile(ctx context.Context, token domain.Token) (domain.UserProfile, error)
}
