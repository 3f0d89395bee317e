package treasury_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokt-network/pocketknife/internal/treasury"
	"github.com/pokt-network/pocketknife/internal/types"
	"github.com/pokt-network/pocketknife/pkg"
	"github.com/pokt-network/pocketknife/testutil"
)

func TestAddressResolver(t *testing.T) {
	t.Run("resolves and caches", func(t *testing.T) {
		fake := newFakePocket()
		resolver := treasury.NewAddressResolver(fake)
		operator := testutil.RandomOperatorAddress(t)

		expected, err := pkg.ConvertOperatorToAccount(operator)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			account, err := resolver.Resolve(context.Background(), operator)
			require.NoError(t, err)
			assert.Equal(t, expected, account)
		}
		assert.Equal(t, 1, fake.deriveCalls[operator])
	})

	t.Run("distinct operators resolve independently", func(t *testing.T) {
		fake := newFakePocket()
		resolver := treasury.NewAddressResolver(fake)
		opA := testutil.RandomOperatorAddress(t)
		opB := testutil.RandomOperatorAddress(t)

		accountA, err := resolver.Resolve(context.Background(), opA)
		require.NoError(t, err)
		accountB, err := resolver.Resolve(context.Background(), opB)
		require.NoError(t, err)
		assert.NotEqual(t, accountA, accountB)
	})

	t.Run("failure carries the derivation code", func(t *testing.T) {
		fake := newFakePocket()
		operator := testutil.RandomOperatorAddress(t)
		fake.deriveErr[operator] = errors.New("boom")
		resolver := treasury.NewAddressResolver(fake)

		_, err := resolver.Resolve(context.Background(), operator)
		require.Error(t, err)
		assert.True(t, types.IsAddressDerivation(err))
	})

	t.Run("failures are not cached", func(t *testing.T) {
		fake := newFakePocket()
		operator := testutil.RandomOperatorAddress(t)
		fake.deriveErr[operator] = errors.New("boom")
		resolver := treasury.NewAddressResolver(fake)

		_, err := resolver.Resolve(context.Background(), operator)
		require.Error(t, err)
		_, err = resolver.Resolve(context.Background(), operator)
		require.Error(t, err)
		assert.Equal(t, 2, fake.deriveCalls[operator])
	})
}
