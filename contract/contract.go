// Package contract implements the state-transition logic of an on-chain
// NFT sale. It gates who may buy, enforces the supply cap, validates
// payment, splits proceeds between a protocol account and a treasury
// account, and emits the instructions that mint and transfer the
// purchased asset. The chain runtime executes the emitted batch
// atomically; the contract itself never applies instructions.
package contract

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mintgate-xyz/go-mintgate/querycache"
	"github.com/mintgate-xyz/go-mintgate/state"
	"github.com/mintgate-xyz/go-mintgate/wire"
)

// Contract build identity, persisted at instantiation.
const (
	ContractName    = "mintgate-sale"
	ContractVersion = "1.0.0"
)

// Contract is one sale instance. All calls against the same instance
// are serialized by the ledger runtime; the contract checks every
// precondition against the store snapshot taken at call start.
type Contract struct {
	address string
	store   state.Store
	querier wire.Querier
	cache   *querycache.Cache
	log     zerolog.Logger
}

// Option configures a Contract.
type Option func(*Contract)

// WithLogger attaches a structured logger. Without it the contract is
// silent.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Contract) { c.log = log }
}

// WithQueryCache memoizes aggregated query results. Cached responses go
// stale when the chain state moves; use only where that is acceptable,
// e.g. dry runs and local tooling.
func WithQueryCache(cache *querycache.Cache) Option {
	return func(c *Contract) { c.cache = cache }
}

// New creates a contract bound to its own chain address, a store, and
// the chain's query surface.
func New(address string, store state.Store, querier wire.Querier, opts ...Option) *Contract {
	c := &Contract{
		address: address,
		store:   store,
		querier: querier,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Address returns the contract's own chain address.
func (c *Contract) Address() string { return c.address }

// assertOwner fails with ErrUnauthorized unless sender is the
// administrator recorded at instantiation.
func (c *Contract) assertOwner(ctx context.Context, sender string) error {
	owner, err := ownerItem.Load(ctx, c.store)
	if err != nil {
		return err
	}
	if sender != owner {
		return ErrUnauthorized
	}
	return nil
}
