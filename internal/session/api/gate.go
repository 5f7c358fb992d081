package api

import (
	"github.com/google/uuid"

	"github.com/klwxsrx/school-admin/internal/session/app/service"
)

var (
	ErrInvalidCredentials   = service.ErrInvalidCredentials
	ErrLoginFailed          = service.ErrLoginFailed
	ErrSessionExpired       = service.ErrSessionExpired
	ErrProfileFetchFailed   = service.ErrProfileFetchFailed
	ErrStoragePersistFailed = service.ErrStoragePersistFailed
)

type (
	Gate = service.Gate

	// GateProvider scopes a gate to the credential storage of one browser.
	GateProvider interface {
		Gate(clientID uuid.UUID) Gate
	}
)
