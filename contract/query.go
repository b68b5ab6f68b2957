package contract

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/holiman/uint256"

	"github.com/mintgate-xyz/go-mintgate/pagination"
	"github.com/mintgate-xyz/go-mintgate/state"
	"github.com/mintgate-xyz/go-mintgate/wire"
)

type (
	// ParamsQuery asks for the issuance module parameters.
	ParamsQuery struct{}
	// ClassQuery asks for the sale's collection.
	ClassQuery struct{}
	// ClassesQuery lists every collection created by an issuer.
	ClassesQuery struct {
		Issuer string `json:"issuer"`
	}
	// FrozenQuery asks whether a unit is frozen.
	FrozenQuery struct {
		ID string `json:"id"`
	}
	// WhitelistedQuery asks the chain-side whitelist flag.
	WhitelistedQuery struct {
		ID      string `json:"id"`
		Account string `json:"account"`
	}
	// WhitelistedAccountsForNFTQuery lists every account whitelisted
	// for a unit.
	WhitelistedAccountsForNFTQuery struct {
		ID string `json:"id"`
	}
	// IsWhitelistedQuery asks the contract's own whitelist flag, the
	// one the purchase gate reads.
	IsWhitelistedQuery struct {
		Account string `json:"account"`
	}
	// BalanceQuery asks how many units of the collection an account
	// owns.
	BalanceQuery struct {
		Owner string `json:"owner"`
	}
	// OwnerQuery asks who owns a unit.
	OwnerQuery struct {
		ID string `json:"id"`
	}
	// SupplyQuery asks the collection's total supply.
	SupplyQuery struct{}
	// NFTQuery asks for one unit.
	NFTQuery struct {
		ID string `json:"id"`
	}
	// NFTsQuery lists units: the whole collection when Owner is nil,
	// otherwise every unit the owner holds.
	NFTsQuery struct {
		Owner *string `json:"owner,omitempty"`
	}
	// ClassNFTQuery asks the base registry for the sale's collection.
	ClassNFTQuery struct{}
	// ClassesNFTQuery lists every collection in the base registry.
	ClassesNFTQuery struct{}
	// BurntNFTQuery asks whether a unit id was burnt.
	BurntNFTQuery struct {
		NFTID string `json:"nft_id"`
	}
	// BurntNFTsInClassQuery lists every burnt unit id in the
	// collection.
	BurntNFTsInClassQuery struct{}
	// GetInfoQuery asks the composite sale summary.
	GetInfoQuery struct {
		Owner string `json:"owner"`
	}
)

// QueryMsg is the tagged union of read operations. Exactly one variant
// must be set.
type QueryMsg struct {
	Params                    *ParamsQuery                    `json:"params,omitempty"`
	Class                     *ClassQuery                     `json:"class,omitempty"`
	Classes                   *ClassesQuery                   `json:"classes,omitempty"`
	Frozen                    *FrozenQuery                    `json:"frozen,omitempty"`
	Whitelisted               *WhitelistedQuery               `json:"whitelisted,omitempty"`
	WhitelistedAccountsForNFT *WhitelistedAccountsForNFTQuery `json:"whitelisted_accounts_for_nft,omitempty"`
	IsWhitelisted             *IsWhitelistedQuery             `json:"is_whitelisted,omitempty"`
	Balance                   *BalanceQuery                   `json:"balance,omitempty"`
	Owner                     *OwnerQuery                     `json:"owner,omitempty"`
	Supply                    *SupplyQuery                    `json:"supply,omitempty"`
	NFT                       *NFTQuery                       `json:"nft,omitempty"`
	NFTs                      *NFTsQuery                      `json:"nfts,omitempty"`
	ClassNFT                  *ClassNFTQuery                  `json:"class_nft,omitempty"`
	ClassesNFT                *ClassesNFTQuery                `json:"classes_nft,omitempty"`
	BurntNFT                  *BurntNFTQuery                  `json:"burnt_nft,omitempty"`
	BurntNFTsInClass          *BurntNFTsInClassQuery          `json:"burnt_nfts_in_class,omitempty"`
	GetInfo                   *GetInfoQuery                   `json:"get_info,omitempty"`
}

// aggregated reports whether the query drains a paged source. Only
// these are worth memoizing.
func (m QueryMsg) aggregated() bool {
	return m.Classes != nil || m.WhitelistedAccountsForNFT != nil ||
		m.NFTs != nil || m.ClassesNFT != nil || m.BurntNFTsInClass != nil
}

// GetInfoResponse is the composite sale summary.
type GetInfoResponse struct {
	CurrentTokenID *uint256.Int         `json:"current_token_id"`
	Balance        wire.BalanceResponse `json:"balance"`
	MaxTotalMint   *uint256.Int         `json:"max_total_mint"`
}

// Query runs one read operation and returns the JSON-encoded response.
// Queries have no side effects and are open to any caller.
func (c *Contract) Query(ctx context.Context, msg QueryMsg) (json.RawMessage, error) {
	cacheable := c.cache != nil && msg.aggregated()
	var cacheKey string
	if cacheable {
		k, err := json.Marshal(msg)
		if err != nil {
			return nil, err
		}
		cacheKey = string(k)
		if b, ok := c.cache.Get("query", cacheKey); ok {
			return b, nil
		}
	}

	res, err := c.dispatchQuery(ctx, msg)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}
	if cacheable {
		c.cache.Put(b, "query", cacheKey)
	}
	return b, nil
}

func (c *Contract) dispatchQuery(ctx context.Context, msg QueryMsg) (any, error) {
	switch {
	case msg.Params != nil:
		return c.querier.NFTParams(ctx)
	case msg.Class != nil:
		return c.queryClass(ctx)
	case msg.Classes != nil:
		return c.queryClasses(ctx, msg.Classes.Issuer)
	case msg.Frozen != nil:
		return c.queryFrozen(ctx, msg.Frozen.ID)
	case msg.Whitelisted != nil:
		return c.queryWhitelisted(ctx, msg.Whitelisted.ID, msg.Whitelisted.Account)
	case msg.WhitelistedAccountsForNFT != nil:
		return c.queryWhitelistedAccounts(ctx, msg.WhitelistedAccountsForNFT.ID)
	case msg.IsWhitelisted != nil:
		return c.queryIsWhitelisted(ctx, msg.IsWhitelisted.Account)
	case msg.Balance != nil:
		return c.queryBalance(ctx, msg.Balance.Owner)
	case msg.Owner != nil:
		return c.queryOwner(ctx, msg.Owner.ID)
	case msg.Supply != nil:
		return c.querySupply(ctx)
	case msg.NFT != nil:
		return c.queryNFT(ctx, msg.NFT.ID)
	case msg.NFTs != nil:
		return c.queryNFTs(ctx, msg.NFTs.Owner)
	case msg.ClassNFT != nil:
		return c.queryClassNFT(ctx)
	case msg.ClassesNFT != nil:
		return c.queryClassesNFT(ctx)
	case msg.BurntNFT != nil:
		return c.queryBurntNFT(ctx, msg.BurntNFT.NFTID)
	case msg.BurntNFTsInClass != nil:
		return c.queryBurntNFTsInClass(ctx)
	case msg.GetInfo != nil:
		return c.queryGetInfo(ctx, msg.GetInfo.Owner)
	default:
		return nil, ErrEmptyQuery
	}
}

func (c *Contract) queryClass(ctx context.Context) (wire.ClassResponse, error) {
	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return wire.ClassResponse{}, err
	}
	return c.querier.Class(ctx, classID)
}

func (c *Contract) queryClasses(ctx context.Context, issuer string) (wire.ClassesResponse, error) {
	classes, page, err := pagination.Aggregate(ctx,
		func(ctx context.Context, req *pagination.PageRequest) ([]wire.Class, pagination.PageResponse, error) {
			res, err := c.querier.Classes(ctx, issuer, req)
			if err != nil {
				return nil, pagination.PageResponse{}, err
			}
			return res.Classes, res.Pagination, nil
		})
	if err != nil {
		return wire.ClassesResponse{}, err
	}
	return wire.ClassesResponse{Classes: classes, Pagination: page}, nil
}

func (c *Contract) queryFrozen(ctx context.Context, id string) (wire.FrozenResponse, error) {
	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return wire.FrozenResponse{}, err
	}
	return c.querier.Frozen(ctx, classID, id)
}

func (c *Contract) queryWhitelisted(ctx context.Context, id, account string) (wire.WhitelistedResponse, error) {
	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return wire.WhitelistedResponse{}, err
	}
	return c.querier.Whitelisted(ctx, classID, id, account)
}

func (c *Contract) queryWhitelistedAccounts(ctx context.Context, id string) (wire.WhitelistedAccountsForNFTResponse, error) {
	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return wire.WhitelistedAccountsForNFTResponse{}, err
	}
	accounts, page, err := pagination.Aggregate(ctx,
		func(ctx context.Context, req *pagination.PageRequest) ([]string, pagination.PageResponse, error) {
			res, err := c.querier.WhitelistedAccountsForNFT(ctx, classID, id, req)
			if err != nil {
				return nil, pagination.PageResponse{}, err
			}
			return res.Accounts, res.Pagination, nil
		})
	if err != nil {
		return wire.WhitelistedAccountsForNFTResponse{}, err
	}
	return wire.WhitelistedAccountsForNFTResponse{Accounts: accounts, Pagination: page}, nil
}

// queryIsWhitelisted reads the contract's own flag. An account never
// added reads as false, same as one explicitly removed.
func (c *Contract) queryIsWhitelisted(ctx context.Context, account string) (wire.WhitelistedResponse, error) {
	permitted, err := whitelist.Load(ctx, c.store, account)
	if errors.Is(err, state.ErrNotFound) {
		return wire.WhitelistedResponse{Whitelisted: false}, nil
	}
	if err != nil {
		return wire.WhitelistedResponse{}, err
	}
	return wire.WhitelistedResponse{Whitelisted: permitted}, nil
}

func (c *Contract) queryBalance(ctx context.Context, owner string) (wire.BalanceResponse, error) {
	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return wire.BalanceResponse{}, err
	}
	return c.querier.Balance(ctx, classID, owner)
}

func (c *Contract) queryOwner(ctx context.Context, id string) (wire.OwnerResponse, error) {
	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return wire.OwnerResponse{}, err
	}
	return c.querier.OwnerOf(ctx, classID, id)
}

func (c *Contract) querySupply(ctx context.Context) (wire.SupplyResponse, error) {
	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return wire.SupplyResponse{}, err
	}
	return c.querier.Supply(ctx, classID)
}

func (c *Contract) queryNFT(ctx context.Context, id string) (wire.NFTResponse, error) {
	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return wire.NFTResponse{}, err
	}
	return c.querier.NFT(ctx, classID, id)
}

// queryNFTs lists the whole collection when owner is nil, otherwise the
// owner's units across collections, matching the external module's two
// query scopes.
func (c *Contract) queryNFTs(ctx context.Context, owner *string) (wire.NFTsResponse, error) {
	classID := ""
	ownerAddr := ""
	if owner == nil {
		var err error
		classID, err = classIDItem.Load(ctx, c.store)
		if err != nil {
			return wire.NFTsResponse{}, err
		}
	} else {
		ownerAddr = *owner
	}

	nfts, page, err := pagination.Aggregate(ctx,
		func(ctx context.Context, req *pagination.PageRequest) ([]wire.NFT, pagination.PageResponse, error) {
			res, err := c.querier.NFTs(ctx, classID, ownerAddr, req)
			if err != nil {
				return nil, pagination.PageResponse{}, err
			}
			return res.NFTs, res.Pagination, nil
		})
	if err != nil {
		return wire.NFTsResponse{}, err
	}
	return wire.NFTsResponse{NFTs: nfts, Pagination: page}, nil
}

func (c *Contract) queryClassNFT(ctx context.Context) (wire.ClassResponse, error) {
	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return wire.ClassResponse{}, err
	}
	return c.querier.NFTClass(ctx, classID)
}

func (c *Contract) queryClassesNFT(ctx context.Context) (wire.ClassesResponse, error) {
	classes, page, err := pagination.Aggregate(ctx,
		func(ctx context.Context, req *pagination.PageRequest) ([]wire.Class, pagination.PageResponse, error) {
			res, err := c.querier.NFTClasses(ctx, req)
			if err != nil {
				return nil, pagination.PageResponse{}, err
			}
			return res.Classes, res.Pagination, nil
		})
	if err != nil {
		return wire.ClassesResponse{}, err
	}
	return wire.ClassesResponse{Classes: classes, Pagination: page}, nil
}

func (c *Contract) queryBurntNFT(ctx context.Context, nftID string) (wire.BurntNFTResponse, error) {
	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return wire.BurntNFTResponse{}, err
	}
	return c.querier.BurntNFT(ctx, classID, nftID)
}

func (c *Contract) queryBurntNFTsInClass(ctx context.Context) (wire.BurntNFTsInClassResponse, error) {
	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return wire.BurntNFTsInClassResponse{}, err
	}
	ids, page, err := pagination.Aggregate(ctx,
		func(ctx context.Context, req *pagination.PageRequest) ([]string, pagination.PageResponse, error) {
			res, err := c.querier.BurntNFTsInClass(ctx, classID, req)
			if err != nil {
				return nil, pagination.PageResponse{}, err
			}
			return res.NFTIDs, res.Pagination, nil
		})
	if err != nil {
		return wire.BurntNFTsInClassResponse{}, err
	}
	return wire.BurntNFTsInClassResponse{NFTIDs: ids, Pagination: page}, nil
}

func (c *Contract) queryGetInfo(ctx context.Context, owner string) (GetInfoResponse, error) {
	currentTokenID, err := currentTokenIDItem.Load(ctx, c.store)
	if err != nil {
		return GetInfoResponse{}, err
	}
	balance, err := c.queryBalance(ctx, owner)
	if err != nil {
		return GetInfoResponse{}, err
	}
	maxTotalMint, err := maxTotalMintItem.Load(ctx, c.store)
	if err != nil {
		return GetInfoResponse{}, err
	}
	return GetInfoResponse{
		CurrentTokenID: currentTokenID,
		Balance:        balance,
		MaxTotalMint:   maxTotalMint,
	}, nil
}
