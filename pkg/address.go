package pkg

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

const (
	// AccountPrefix is the bech32 human-readable prefix of account-form
	// addresses.
	AccountPrefix = "pokt"
	// OperatorPrefix is the bech32 human-readable prefix of validator
	// operator addresses.
	OperatorPrefix = "poktvaloper"
)

func ValidateAccountAddress(address string) error {
	bz, err := sdk.GetFromBech32(address, AccountPrefix)
	if err != nil {
		return err
	}

	return sdk.VerifyAddressFormat(bz)
}

func ValidateOperatorAddress(address string) error {
	bz, err := sdk.GetFromBech32(address, OperatorPrefix)
	if err != nil {
		return err
	}

	return sdk.VerifyAddressFormat(bz)
}

// ConvertOperatorToAccount re-encodes a validator operator address with the
// account prefix. Both forms share the same underlying address bytes.
func ConvertOperatorToAccount(operatorAddress string) (string, error) {
	bz, err := sdk.GetFromBech32(operatorAddress, OperatorPrefix)
	if err != nil {
		return "", err
	}
	if err := sdk.VerifyAddressFormat(bz); err != nil {
		return "", err
	}

	return bech32.ConvertAndEncode(AccountPrefix, bz)
}
