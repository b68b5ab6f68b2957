package contract

import (
	"github.com/holiman/uint256"

	"github.com/mintgate-xyz/go-mintgate/state"
)

// One record per configuration field, written once at instantiation.
// Only current_token_id changes afterwards.
var (
	contractInfoItem      = state.NewItem[ContractInfo]("contract_info")
	ownerItem             = state.NewItem[string]("owner")
	classIDItem           = state.NewItem[string]("class_id")
	prerevealTokenURIItem = state.NewItem[string]("prereveal_token_uri")
	treasuryAddressItem   = state.NewItem[string]("treasury_address")
	protocolAddressItem   = state.NewItem[string]("protocol_address")
	currentTokenIDItem    = state.NewItem[*uint256.Int]("current_token_id")
	mintPriceItem         = state.NewItem[*uint256.Int]("mint_price")
	priceDenomItem        = state.NewItem[string]("price_denom")
	saleStartTimeItem     = state.NewItem[int64]("sale_start_time")
	saleEndTimeItem       = state.NewItem[int64]("sale_end_time")
	protocolFeeItem       = state.NewItem[uint64]("protocol_fee")
	maxTotalMintItem      = state.NewItem[*uint256.Int]("max_total_mint")
	uriStatusItem         = state.NewItem[string]("uri_status")
	denomItem             = state.NewItem[string]("denom")

	whitelist = state.NewBoolMap("is_whitelisted")
)

// ContractInfo identifies the contract build that wrote the state.
type ContractInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
