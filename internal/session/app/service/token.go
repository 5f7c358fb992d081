package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/klwxsrx/school-admin/internal/session/domain"
)

var ErrMalformedToken = errors.New("malformed token")

var unverifiedParser = jwt.NewParser()

// DecodeExpiry reads the exp claim without verifying the signature.
func DecodeExpiry(token domain.Token) (time.Time, error) {
	var claims jwt.RegisteredClaims
	_, _, err := unverifiedParser.ParseUnverified(string(token), &claims)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("%w: exp claim is missing", ErrMalformedToken)
	}

	return claims.ExpiresAt.Time, nil
}
