package pocketclient

// Wire types for the subset of LCD responses the client consumes.

type coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// decCoin carries a decimal amount string, e.g. "300491.883966650000000000".
type decCoin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type balancesResponse struct {
	Balances []coin `json:"balances"`
}

type applicationResponse struct {
	Application struct {
		Address string `json:"address"`
		Stake   *coin  `json:"stake"`
	} `json:"application"`
}

type supplierResponse struct {
	Supplier supplierEntry `json:"supplier"`
}

type supplierEntry struct {
	OwnerAddress    string `json:"owner_address"`
	OperatorAddress string `json:"operator_address"`
	Stake           *coin  `json:"stake"`
}

type validatorResponse struct {
	Validator struct {
		OperatorAddress string `json:"operator_address"`
		Tokens          string `json:"tokens"`
	} `json:"validator"`
}

type delegatorRewardsResponse struct {
	Rewards []struct {
		ValidatorAddress string    `json:"validator_address"`
		Reward           []decCoin `json:"reward"`
	} `json:"rewards"`
	Total []decCoin `json:"total"`
}

type outstandingRewardsResponse struct {
	Rewards struct {
		Rewards []decCoin `json:"rewards"`
	} `json:"rewards"`
}

type suppliersResponse struct {
	Supplier   []supplierEntry `json:"supplier"`
	Pagination struct {
		NextKey string `json:"next_key"`
	} `json:"pagination"`
}
