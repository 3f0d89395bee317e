package pkg_test

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokt-network/pocketknife/pkg"
)

func mustEncode(t *testing.T, prefix string, bz []byte) string {
	t.Helper()
	addr, err := bech32.ConvertAndEncode(prefix, bz)
	require.NoError(t, err)
	return addr
}

func TestValidateAccountAddress(t *testing.T) {
	bz := []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a,
		0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14,
	}

	t.Run("valid account address", func(t *testing.T) {
		addr := mustEncode(t, pkg.AccountPrefix, bz)
		require.NoError(t, pkg.ValidateAccountAddress(addr))
	})

	t.Run("operator prefix rejected", func(t *testing.T) {
		addr := mustEncode(t, pkg.OperatorPrefix, bz)
		require.Error(t, pkg.ValidateAccountAddress(addr))
	})

	t.Run("empty address rejected", func(t *testing.T) {
		require.Error(t, pkg.ValidateAccountAddress(""))
	})

	t.Run("garbage rejected", func(t *testing.T) {
		require.Error(t, pkg.ValidateAccountAddress("pokt1notbech32!!!"))
	})
}

func TestValidateOperatorAddress(t *testing.T) {
	bz := []byte{
		0x14, 0x13, 0x12, 0x11, 0x10, 0x0f, 0x0e, 0x0d, 0x0c, 0x0b,
		0x0a, 0x09, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}

	t.Run("valid operator address", func(t *testing.T) {
		addr := mustEncode(t, pkg.OperatorPrefix, bz)
		require.NoError(t, pkg.ValidateOperatorAddress(addr))
	})

	t.Run("account prefix rejected", func(t *testing.T) {
		addr := mustEncode(t, pkg.AccountPrefix, bz)
		require.Error(t, pkg.ValidateOperatorAddress(addr))
	})

	t.Run("consensus prefix rejected", func(t *testing.T) {
		addr := mustEncode(t, "poktvalcons", bz)
		require.Error(t, pkg.ValidateOperatorAddress(addr))
	})
}

func TestConvertOperatorToAccount(t *testing.T) {
	bz := []byte{
		0xde, 0xad, 0xbe, 0xef, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55,
		0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
	}

	t.Run("shares address bytes with the operator form", func(t *testing.T) {
		operator := mustEncode(t, pkg.OperatorPrefix, bz)
		account, err := pkg.ConvertOperatorToAccount(operator)
		require.NoError(t, err)
		assert.Equal(t, mustEncode(t, pkg.AccountPrefix, bz), account)
		require.NoError(t, pkg.ValidateAccountAddress(account))
	})

	t.Run("account form input rejected", func(t *testing.T) {
		account := mustEncode(t, pkg.AccountPrefix, bz)
		_, err := pkg.ConvertOperatorToAccount(account)
		require.Error(t, err)
	})
}
