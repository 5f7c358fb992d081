package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/school-admin/pkg/auth"
)

func TestIsAuthenticated(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		expect    bool
		expectErr bool
	}{
		{
			name:      "error_without_authentication",
			ctx:       context.Background(),
			expectErr: true,
		},
		{
			name: "false_for_anonymous",
			ctx:  auth.WithAuthentication(context.Background(), auth.Anonymous()),
		},
		{
			name:   "true_for_principal",
			ctx:    auth.WithAuthentication(context.Background(), auth.Authenticated(auth.Principal{Type: "admin", ID: "1"})),
			expect: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := auth.IsAuthenticated(tc.ctx)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expect, result)
		})
	}
}

func TestGetAuthentication_ReturnsPrincipal(t *testing.T) {
	ctx := auth.WithAuthentication(context.Background(), auth.Authenticated(auth.Principal{Type: "admin", ID: "1"}))

	result, ok := auth.GetAuthentication(ctx)
	require.True(t, ok)
	require.NotNil(t, result.Principal)
	assert.Equal(t, auth.PrincipalType("admin"), result.Principal.Type)
	assert.Equal(t, "1", result.Principal.ID)
}
