package host

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct{ name string }

func (p *stubProvider) Name() string { return p.name }
func (p *stubProvider) GetSession(context.Context, *Request) (*ProviderSession, error) {
	return nil, nil
}

type stubBroker struct{}

func (stubBroker) GetProviderToken(context.Context, *Request, TokenRequest) Token { return "" }

type stubAdmin struct{ id string }

func (a *stubAdmin) ID() string   { return a.id }
func (a *stubAdmin) Kind() string { return "auth" }
func (a *stubAdmin) GetStatus(context.Context, StatusContext) StatusResult {
	return StatusResult{}
}

func registration(id string, order int) Registration {
	return Registration{
		ID:     id,
		Order:  order,
		Create: func() AuthProvider { return &stubProvider{name: id} },
	}
}

// Registries are process-wide, so these tests reset them and do not run in
// parallel.

func TestRegisterAuthProvider(t *testing.T) {
	t.Run("registers-and-sorts", func(t *testing.T) {
		ResetRegistries()
		t.Cleanup(ResetRegistries)
		assert, require := assert.New(t), require.New(t)
		require.NoError(RegisterAuthProvider(registration("zeta", 100)))
		require.NoError(RegisterAuthProvider(registration("alpha", 100)))
		require.NoError(RegisterAuthProvider(registration("late", 900)))
		require.NoError(RegisterAuthProvider(registration("early", 10)))

		got := AuthProviders()
		require.Len(got, 4)
		ids := []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
		assert.Equal([]string{"early", "alpha", "zeta", "late"}, ids)
	})

	t.Run("duplicate-id", func(t *testing.T) {
		ResetRegistries()
		t.Cleanup(ResetRegistries)
		require := require.New(t)
		require.NoError(RegisterAuthProvider(registration("clerk", 100)))
		require.ErrorIs(RegisterAuthProvider(registration("clerk", 200)), ErrAlreadyRegistered)
	})

	t.Run("missing-id", func(t *testing.T) {
		require := require.New(t)
		require.ErrorIs(RegisterAuthProvider(registration("", 0)), ErrInvalidParameter)
	})

	t.Run("missing-create", func(t *testing.T) {
		require := require.New(t)
		require.ErrorIs(RegisterAuthProvider(Registration{ID: "clerk"}), ErrNilParameter)
	})
}

func TestRegisterTokenBroker(t *testing.T) {
	t.Run("register-and-lookup", func(t *testing.T) {
		ResetRegistries()
		t.Cleanup(ResetRegistries)
		assert, require := assert.New(t), require.New(t)
		require.NoError(RegisterTokenBroker("clerk", func() TokenBroker { return stubBroker{} }))
		factory, err := LookupTokenBroker("clerk")
		require.NoError(err)
		assert.NotNil(factory())
	})

	t.Run("unknown-id", func(t *testing.T) {
		ResetRegistries()
		t.Cleanup(ResetRegistries)
		require := require.New(t)
		_, err := LookupTokenBroker("nope")
		require.ErrorIs(err, ErrNotFound)
	})

	t.Run("duplicate-id", func(t *testing.T) {
		ResetRegistries()
		t.Cleanup(ResetRegistries)
		require := require.New(t)
		require.NoError(RegisterTokenBroker("clerk", func() TokenBroker { return stubBroker{} }))
		require.ErrorIs(
			RegisterTokenBroker("clerk", func() TokenBroker { return stubBroker{} }),
			ErrAlreadyRegistered,
		)
	})

	t.Run("invalid-inputs", func(t *testing.T) {
		require := require.New(t)
		require.ErrorIs(RegisterTokenBroker("", func() TokenBroker { return stubBroker{} }), ErrInvalidParameter)
		require.ErrorIs(RegisterTokenBroker("clerk", nil), ErrNilParameter)
	})
}

func TestRegisterAdminAdapter(t *testing.T) {
	t.Run("register-and-list", func(t *testing.T) {
		ResetRegistries()
		t.Cleanup(ResetRegistries)
		assert, require := assert.New(t), require.New(t)
		require.NoError(RegisterAdminAdapter(&stubAdmin{id: "clerk"}))
		require.NoError(RegisterAdminAdapter(&stubAdmin{id: "auth0"}))
		got := AdminAdapters()
		require.Len(got, 2)
		assert.Equal("auth0", got[0].ID())
		assert.Equal("clerk", got[1].ID())
	})

	t.Run("duplicate-id", func(t *testing.T) {
		ResetRegistries()
		t.Cleanup(ResetRegistries)
		require := require.New(t)
		require.NoError(RegisterAdminAdapter(&stubAdmin{id: "clerk"}))
		require.ErrorIs(RegisterAdminAdapter(&stubAdmin{id: "clerk"}), ErrAlreadyRegistered)
	})

	t.Run("nil-adapter", func(t *testing.T) {
		require := require.New(t)
		require.ErrorIs(RegisterAdminAdapter(nil), ErrNilParameter)
	})
}
