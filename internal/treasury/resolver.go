package treasury

import (
	"context"
	"sync"

	"github.com/pokt-network/pocketknife/internal/clients/pocketclient"
	"github.com/pokt-network/pocketknife/internal/observability/metrics"
	"github.com/pokt-network/pocketknife/internal/types"
)

// AddressResolver derives account-form addresses for validator operators,
// caching each derivation for the duration of a run. Safe for concurrent use;
// a cached key is never re-derived.
type AddressResolver struct {
	pocket pocketclient.PocketInterface

	mu    sync.Mutex
	cache map[string]string
}

func NewAddressResolver(pocket pocketclient.PocketInterface) *AddressResolver {
	return &AddressResolver{
		pocket: pocket,
		cache:  make(map[string]string),
	}
}

// Resolve returns the account-form address for an operator-form address.
// Derivation failures isolate to the records depending on this operator.
func (r *AddressResolver) Resolve(ctx context.Context, operatorAddress string) (string, error) {
	r.mu.Lock()
	if account, ok := r.cache[operatorAddress]; ok {
		r.mu.Unlock()
		metrics.IncAddressDerivationCacheHits()
		return account, nil
	}
	r.mu.Unlock()

	account, err := r.pocket.DeriveAccountAddress(ctx, operatorAddress)
	if err != nil {
		return "", types.NewError(types.ErrAddressDerivation, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// A concurrent caller may have resolved the same operator; keep the first
	// insert so the cache is insert-once.
	if existing, ok := r.cache[operatorAddress]; ok {
		return existing, nil
	}
	r.cache[operatorAddress] = account
	return account, nil
}
