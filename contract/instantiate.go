package contract

import (
	"context"
	"fmt"
	"strings"

	"github.com/holiman/uint256"

	"github.com/mintgate-xyz/go-mintgate/wire"
)

// defaultPriceDenom is the denomination purchases are paid in when the
// instantiate message does not name one.
const defaultPriceDenom = "uscrt"

// InstantiateMsg carries every sale parameter. All fields except
// current_token_id are immutable after instantiation.
type InstantiateMsg struct {
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Description string   `json:"description,omitempty"`
	URI         string   `json:"uri,omitempty"`
	URIHash     string   `json:"uri_hash,omitempty"`
	Data        []byte   `json:"data,omitempty"`
	Features    []uint32 `json:"features,omitempty"`
	RoyaltyRate string   `json:"royalty_rate,omitempty"`

	PrerevealTokenURI string `json:"prereveal_token_uri"`
	TreasuryAddress   string `json:"treasury_address"`
	ProtocolAddress   string `json:"protocol_address"`

	CurrentTokenID *uint256.Int `json:"current_token_id"`
	MintPrice      *uint256.Int `json:"mint_price"`
	PriceDenom     string       `json:"price_denom,omitempty"`
	FeeDenom       string       `json:"fee_denom,omitempty"`

	SaleStartTime int64 `json:"sale_start_time"`
	SaleEndTime   int64 `json:"sale_end_time"`

	ProtocolFee  uint64       `json:"protocol_fee"`
	MaxTotalMint *uint256.Int `json:"max_total_mint"`
	URIStatus    string       `json:"uri_status"`
}

// Instantiate creates the sale: it records the sender as owner,
// persists the configuration, and emits the collection-issue
// instruction. The collection id is derived once from the symbol and
// the contract's own address, lower-cased.
func (c *Contract) Instantiate(ctx context.Context, sender string, msg InstantiateMsg) (*Response, error) {
	if msg.Symbol == "" {
		return nil, fmt.Errorf("contract: symbol must not be empty")
	}

	classID := strings.ToLower(msg.Symbol + "-" + c.address)

	currentTokenID := msg.CurrentTokenID
	if currentTokenID == nil {
		currentTokenID = uint256.NewInt(0)
	}
	mintPrice := msg.MintPrice
	if mintPrice == nil {
		mintPrice = uint256.NewInt(0)
	}
	maxTotalMint := msg.MaxTotalMint
	if maxTotalMint == nil {
		maxTotalMint = uint256.NewInt(0)
	}
	priceDenom := msg.PriceDenom
	if priceDenom == "" {
		priceDenom = defaultPriceDenom
	}
	feeDenom := msg.FeeDenom
	if feeDenom == "" {
		feeDenom = priceDenom
	}

	saves := []func() error{
		func() error { return contractInfoItem.Save(ctx, c.store, ContractInfo{ContractName, ContractVersion}) },
		func() error { return ownerItem.Save(ctx, c.store, sender) },
		func() error { return classIDItem.Save(ctx, c.store, classID) },
		func() error { return prerevealTokenURIItem.Save(ctx, c.store, msg.PrerevealTokenURI) },
		func() error { return treasuryAddressItem.Save(ctx, c.store, msg.TreasuryAddress) },
		func() error { return protocolAddressItem.Save(ctx, c.store, msg.ProtocolAddress) },
		func() error { return currentTokenIDItem.Save(ctx, c.store, currentTokenID) },
		func() error { return mintPriceItem.Save(ctx, c.store, mintPrice) },
		func() error { return priceDenomItem.Save(ctx, c.store, priceDenom) },
		func() error { return saleStartTimeItem.Save(ctx, c.store, msg.SaleStartTime) },
		func() error { return saleEndTimeItem.Save(ctx, c.store, msg.SaleEndTime) },
		func() error { return protocolFeeItem.Save(ctx, c.store, msg.ProtocolFee) },
		func() error { return maxTotalMintItem.Save(ctx, c.store, maxTotalMint) },
		func() error { return uriStatusItem.Save(ctx, c.store, msg.URIStatus) },
		func() error { return denomItem.Save(ctx, c.store, feeDenom) },
	}
	for _, save := range saves {
		if err := save(); err != nil {
			return nil, err
		}
	}

	c.log.Info().
		Str("owner", sender).
		Str("class_id", classID).
		Str("price_denom", priceDenom).
		Str("fee_denom", feeDenom).
		Msg("sale instantiated")

	issue := wire.IssueClass{
		Name:        msg.Name,
		Symbol:      msg.Symbol,
		Description: msg.Description,
		URI:         msg.URI,
		URIHash:     msg.URIHash,
		Data:        msg.Data,
		Features:    msg.Features,
		RoyaltyRate: msg.RoyaltyRate,
	}

	return NewResponse().
		AddAttribute("owner", sender).
		AddAttribute("class_id", classID).
		AddMessages(issue), nil
}
