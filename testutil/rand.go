package testutil

import (
	"crypto/rand"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/stretchr/testify/require"

	"github.com/pokt-network/pocketknife/pkg"
)

// RandomAccountAddress generates a valid bech32 account-form address.
func RandomAccountAddress(t *testing.T) string {
	return randomAddress(t, pkg.AccountPrefix)
}

// RandomOperatorAddress generates a valid bech32 validator operator address.
func RandomOperatorAddress(t *testing.T) string {
	return randomAddress(t, pkg.OperatorPrefix)
}

func randomAddress(t *testing.T, prefix string) string {
	t.Helper()

	bz := make([]byte, 20)
	_, err := rand.Read(bz)
	require.NoError(t, err)

	addr, err := bech32.ConvertAndEncode(prefix, bz)
	require.NoError(t, err)

	return addr
}

// RandomMicroAmount generates a plausible micro-unit balance.
func RandomMicroAmount() int64 {
	return int64(gofakeit.IntRange(1, 1_000_000_000_000))
}
