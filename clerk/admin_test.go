package clerk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saluana/or3-provider-clerk/host"
)

func TestNewAdminAdapter(t *testing.T) {
	t.Parallel()
	t.Run("missing-config", func(t *testing.T) {
		t.Parallel()
		require := require.New(t)
		_, err := NewAdminAdapter(nil)
		require.ErrorIs(err, ErrNilParameter)
	})
	t.Run("identity", func(t *testing.T) {
		t.Parallel()
		assert, require := assert.New(t), require.New(t)
		a, err := NewAdminAdapter(testConfig())
		require.NoError(err)
		assert.Equal(ProviderID, a.ID())
		assert.Equal("auth", a.Kind())
	})
}

func TestAdminAdapter_GetStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		cfg          *Config
		enabled      bool
		wantWarnings []string
		wantDetails  map[string]any
	}{
		{
			name:    "all-configured",
			cfg:     testConfig(),
			enabled: true,
			wantDetails: map[string]any{
				"publishable_configured": true,
				"secret_configured":      true,
			},
		},
		{
			name:    "missing-publishable-key",
			cfg:     &Config{SecretKey: "sk_live_abc"},
			enabled: true,
			wantWarnings: []string{
				"Clerk publishable key is missing. Users will not be able to log in.",
			},
			wantDetails: map[string]any{
				"publishable_configured": false,
				"secret_configured":      true,
			},
		},
		{
			name:    "missing-secret-key",
			cfg:     &Config{PublishableKey: "pk_live_abc"},
			enabled: true,
			wantWarnings: []string{
				"Clerk secret key is missing. SSR token validation will fail.",
			},
			wantDetails: map[string]any{
				"publishable_configured": true,
				"secret_configured":      false,
			},
		},
		{
			name:    "missing-both-keys",
			cfg:     &Config{},
			enabled: true,
			wantWarnings: []string{
				"Clerk publishable key is missing. Users will not be able to log in.",
				"Clerk secret key is missing. SSR token validation will fail.",
			},
			wantDetails: map[string]any{
				"publishable_configured": false,
				"secret_configured":      false,
			},
		},
		{
			name:    "disabled-reports-details-without-warnings",
			cfg:     &Config{},
			enabled: false,
			wantDetails: map[string]any{
				"publishable_configured": false,
				"secret_configured":      false,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert, require := assert.New(t), require.New(t)
			a, err := NewAdminAdapter(tt.cfg)
			require.NoError(err)
			got := a.GetStatus(context.Background(), host.StatusContext{Enabled: tt.enabled})
			assert.Equal(tt.wantDetails, got.Details)
			require.Len(got.Warnings, len(tt.wantWarnings))
			for i, want := range tt.wantWarnings {
				assert.Equal("error", got.Warnings[i].Level)
				assert.Equal(want, got.Warnings[i].Message)
			}
			assert.NotNil(got.Actions)
		})
	}
}
