package wire

import (
	"context"

	"github.com/mintgate-xyz/go-mintgate/pagination"
)

// Class describes an NFT collection as reported by the chain.
type Class struct {
	ID          string   `json:"id"`
	Issuer      string   `json:"issuer,omitempty"`
	Name        string   `json:"name,omitempty"`
	Symbol      string   `json:"symbol,omitempty"`
	Description string   `json:"description,omitempty"`
	URI         string   `json:"uri,omitempty"`
	URIHash     string   `json:"uri_hash,omitempty"`
	Data        []byte   `json:"data,omitempty"`
	Features    []uint32 `json:"features,omitempty"`
	RoyaltyRate string   `json:"royalty_rate,omitempty"`
}

// NFT describes one unit as reported by the chain.
type NFT struct {
	ClassID string `json:"class_id"`
	ID      string `json:"id"`
	URI     string `json:"uri,omitempty"`
	URIHash string `json:"uri_hash,omitempty"`
	Data    []byte `json:"data,omitempty"`
}

// Params holds the issuance module's parameters.
type Params struct {
	MintFee struct {
		Denom  string `json:"denom"`
		Amount string `json:"amount"`
	} `json:"mint_fee"`
}

type ParamsResponse struct {
	Params Params `json:"params"`
}

type ClassResponse struct {
	Class Class `json:"class"`
}

type ClassesResponse struct {
	Pagination pagination.PageResponse `json:"pagination"`
	Classes    []Class                 `json:"classes"`
}

type FrozenResponse struct {
	Frozen bool `json:"frozen"`
}

type WhitelistedResponse struct {
	Whitelisted bool `json:"whitelisted"`
}

type WhitelistedAccountsForNFTResponse struct {
	Pagination pagination.PageResponse `json:"pagination"`
	Accounts   []string                `json:"accounts"`
}

type BurntNFTResponse struct {
	Burnt bool `json:"burnt"`
}

type BurntNFTsInClassResponse struct {
	Pagination pagination.PageResponse `json:"pagination"`
	NFTIDs     []string                `json:"nft_ids"`
}

type BalanceResponse struct {
	Amount uint64 `json:"amount,string"`
}

type OwnerResponse struct {
	Owner string `json:"owner"`
}

type SupplyResponse struct {
	Amount uint64 `json:"amount,string"`
}

type NFTResponse struct {
	NFT NFT `json:"nft"`
}

type NFTsResponse struct {
	NFTs       []NFT                   `json:"nfts"`
	Pagination pagination.PageResponse `json:"pagination"`
}

// Querier is the read-side surface of the chain's asset modules. Paged
// methods return one page per call; callers drain them through
// pagination.Aggregate.
type Querier interface {
	// NFTParams returns the issuance module parameters.
	NFTParams(ctx context.Context) (ParamsResponse, error)

	// Class returns one collection from the issuance module.
	Class(ctx context.Context, classID string) (ClassResponse, error)

	// Classes returns one page of collections created by an issuer.
	Classes(ctx context.Context, issuer string, page *pagination.PageRequest) (ClassesResponse, error)

	// Frozen reports whether a unit is frozen.
	Frozen(ctx context.Context, classID, id string) (FrozenResponse, error)

	// Whitelisted reports the chain-side whitelist flag for one unit
	// and account.
	Whitelisted(ctx context.Context, classID, id, account string) (WhitelistedResponse, error)

	// WhitelistedAccountsForNFT returns one page of accounts
	// whitelisted for a unit.
	WhitelistedAccountsForNFT(ctx context.Context, classID, id string, page *pagination.PageRequest) (WhitelistedAccountsForNFTResponse, error)

	// BurntNFT reports whether a unit id was burnt.
	BurntNFT(ctx context.Context, classID, nftID string) (BurntNFTResponse, error)

	// BurntNFTsInClass returns one page of burnt unit ids.
	BurntNFTsInClass(ctx context.Context, classID string, page *pagination.PageRequest) (BurntNFTsInClassResponse, error)

	// Balance returns how many units of a collection an account owns.
	Balance(ctx context.Context, classID, owner string) (BalanceResponse, error)

	// OwnerOf returns the owner of one unit.
	OwnerOf(ctx context.Context, classID, id string) (OwnerResponse, error)

	// Supply returns the total minted supply of a collection.
	Supply(ctx context.Context, classID string) (SupplyResponse, error)

	// NFT returns one unit.
	NFT(ctx context.Context, classID, id string) (NFTResponse, error)

	// NFTs returns one page of units. Exactly one of classID or owner
	// scopes the query: pass owner == "" to list a collection, or
	// classID == "" to list an owner's units across collections.
	NFTs(ctx context.Context, classID, owner string, page *pagination.PageRequest) (NFTsResponse, error)

	// NFTClass returns one collection from the base NFT registry.
	NFTClass(ctx context.Context, classID string) (ClassResponse, error)

	// NFTClasses returns one page of all collections in the registry.
	NFTClasses(ctx context.Context, page *pagination.PageRequest) (ClassesResponse, error)
}
