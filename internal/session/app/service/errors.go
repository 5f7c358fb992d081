package service

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrLoginFailed          = errors.New("login failed")
	ErrSessionExpired       = errors.New("session expired")
	ErrProfileFetchFailed   = errors.New("profile fetch failed")
	ErrStoragePersistFailed = errors.New("session storage persist failed")
)
