package contract

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/mintgate-xyz/go-mintgate/amount"
	"github.com/mintgate-xyz/go-mintgate/state"
	"github.com/mintgate-xyz/go-mintgate/wire"
)

// purchase runs the sale workflow: gate the caller, check the supply
// cap and the attached payment, split the proceeds, and emit the full
// instruction batch (fee mint+transfer to protocol, fee mint+transfer
// to treasury, NFT mint, NFT transfer) in that order.
//
// The caller must be the owner and whitelisted. The double gate is
// deliberate here: it reproduces the sale's observed behavior, which
// makes Purchase unreachable for non-owner accounts. See DESIGN.md.
//
// The sale window is stored but not checked; only the supply cap bounds
// the sale. See DESIGN.md.
func (c *Contract) purchase(ctx context.Context, sender string, funds []amount.Coin, msg PurchaseMsg) (*Response, error) {
	if err := c.assertOwner(ctx, sender); err != nil {
		return nil, err
	}

	permitted, err := whitelist.Load(ctx, c.store, sender)
	if errors.Is(err, state.ErrNotFound) {
		// No entry means no permission.
		return nil, ErrNotWhitelisted
	}
	if err != nil {
		return nil, err
	}
	if !permitted {
		return nil, ErrNotWhitelisted
	}

	if msg.Count == nil || msg.Count.IsZero() {
		return nil, ErrInvalidCount
	}

	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return nil, err
	}
	currentTokenID, err := currentTokenIDItem.Load(ctx, c.store)
	if err != nil {
		return nil, err
	}
	maxTotalMint, err := maxTotalMintItem.Load(ctx, c.store)
	if err != nil {
		return nil, err
	}

	next := new(uint256.Int)
	if _, overflow := next.AddOverflow(currentTokenID, msg.Count); overflow || next.Cmp(maxTotalMint) > 0 {
		return nil, ErrSupplyExceeded
	}

	mintPrice, err := mintPriceItem.Load(ctx, c.store)
	if err != nil {
		return nil, err
	}
	priceDenom, err := priceDenomItem.Load(ctx, c.store)
	if err != nil {
		return nil, err
	}

	needed := new(uint256.Int)
	if _, overflow := needed.MulOverflow(mintPrice, msg.Count); overflow {
		return nil, fmt.Errorf("%w: mint price times count exceeds 256 bits", amount.ErrOverflow)
	}
	paid := amount.Find(funds, priceDenom)
	if paid.Cmp(needed) < 0 {
		return nil, ErrInsufficientPayment
	}

	feePercent, err := protocolFeeItem.Load(ctx, c.store)
	if err != nil {
		return nil, err
	}
	protocolAddress, err := protocolAddressItem.Load(ctx, c.store)
	if err != nil {
		return nil, err
	}
	treasuryAddress, err := treasuryAddressItem.Load(ctx, c.store)
	if err != nil {
		return nil, err
	}
	denom, err := denomItem.Load(ctx, c.store)
	if err != nil {
		return nil, err
	}

	// The split covers the full attached payment of the price
	// denomination, not just mint_price * count.
	protocolAmount, treasuryAmount, err := amount.Split(paid, feePercent)
	if err != nil {
		return nil, err
	}

	// Advance the sold counter now that every precondition holds. The
	// ledger's transaction boundary unwinds this write if the emitted
	// batch fails to apply.
	if err := currentTokenIDItem.Save(ctx, c.store, next); err != nil {
		return nil, err
	}

	msgs := feeMsgs(denom, protocolAddress, protocolAmount)
	msgs = append(msgs, feeMsgs(denom, treasuryAddress, treasuryAmount)...)
	msgs = append(msgs,
		wire.MintNFT{ClassID: classID, ID: msg.ID, URI: msg.URI, URIHash: msg.URIHash, Data: msg.Data},
		wire.SendNFT{ClassID: classID, ID: msg.ID, Receiver: msg.Receiver},
	)

	c.log.Info().
		Str("class_id", classID).
		Str("id", msg.ID).
		Str("receiver", msg.Receiver).
		Uint64("protocol_amount", protocolAmount).
		Uint64("treasury_amount", treasuryAmount).
		Str("current_token_id", next.Dec()).
		Msg("purchase")

	return NewResponse().
		AddAttribute("method", "purchase").
		AddAttribute("class_id", classID).
		AddAttribute("id", msg.ID).
		AddAttribute("protocol_amount", strconv.FormatUint(protocolAmount, 10)).
		AddAttribute("treasury_amount", strconv.FormatUint(treasuryAmount, 10)).
		AddMessages(msgs...), nil
}
