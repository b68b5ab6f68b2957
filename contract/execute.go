package contract

import (
	"context"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/mintgate-xyz/go-mintgate/amount"
	"github.com/mintgate-xyz/go-mintgate/wire"
)

// MintMsg mints one unit outside the purchase flow.
type MintMsg struct {
	ID      string `json:"id"`
	URI     string `json:"uri,omitempty"`
	URIHash string `json:"uri_hash,omitempty"`
	Data    []byte `json:"data,omitempty"`
}

// BurnMsg destroys one unit.
type BurnMsg struct {
	ID string `json:"id"`
}

// FreezeMsg blocks transfers of one unit.
type FreezeMsg struct {
	ID string `json:"id"`
}

// UnfreezeMsg lifts a freeze.
type UnfreezeMsg struct {
	ID string `json:"id"`
}

// WhitelistMsg adds or removes one account for one unit.
type WhitelistMsg struct {
	ID      string `json:"id"`
	Account string `json:"account"`
}

// SendMsg transfers one unit to a receiver.
type SendMsg struct {
	ID       string `json:"id"`
	Receiver string `json:"receiver"`
}

// PurchaseMsg buys count units' worth of supply and mints unit ID to
// the receiver.
type PurchaseMsg struct {
	Count    *uint256.Int `json:"count"`
	ID       string       `json:"id"`
	URI      string       `json:"uri,omitempty"`
	URIHash  string       `json:"uri_hash,omitempty"`
	Data     []byte       `json:"data,omitempty"`
	Receiver string       `json:"receiver"`
}

// MintAndSendMsg mints fee-denomination tokens and sends them to an
// account.
type MintAndSendMsg struct {
	Account string `json:"account"`
	Amount  uint64 `json:"amount,string"`
}

// ExecuteMsg is the tagged union of mutating operations. Exactly one
// variant must be set.
type ExecuteMsg struct {
	Mint                *MintMsg        `json:"mint,omitempty"`
	Burn                *BurnMsg        `json:"burn,omitempty"`
	Freeze              *FreezeMsg      `json:"freeze,omitempty"`
	Unfreeze            *UnfreezeMsg    `json:"unfreeze,omitempty"`
	AddToWhitelist      *WhitelistMsg   `json:"add_to_whitelist,omitempty"`
	RemoveFromWhitelist *WhitelistMsg   `json:"remove_from_whitelist,omitempty"`
	Send                *SendMsg        `json:"send,omitempty"`
	Purchase            *PurchaseMsg    `json:"purchase,omitempty"`
	MintAndSend         *MintAndSendMsg `json:"mint_and_send,omitempty"`
}

// Execute runs one mutating call. A precondition failure aborts with no
// instruction emitted and no record written.
func (c *Contract) Execute(ctx context.Context, sender string, funds []amount.Coin, msg ExecuteMsg) (*Response, error) {
	switch {
	case msg.Mint != nil:
		m := msg.Mint
		return c.forward(ctx, sender, "mint", m.ID, func(classID string) wire.Msg {
			return wire.MintNFT{ClassID: classID, ID: m.ID, URI: m.URI, URIHash: m.URIHash, Data: m.Data}
		})
	case msg.Burn != nil:
		m := msg.Burn
		return c.forward(ctx, sender, "burn", m.ID, func(classID string) wire.Msg {
			return wire.BurnNFT{ClassID: classID, ID: m.ID}
		})
	case msg.Freeze != nil:
		m := msg.Freeze
		return c.forward(ctx, sender, "freeze", m.ID, func(classID string) wire.Msg {
			return wire.FreezeNFT{ClassID: classID, ID: m.ID}
		})
	case msg.Unfreeze != nil:
		m := msg.Unfreeze
		return c.forward(ctx, sender, "unfreeze", m.ID, func(classID string) wire.Msg {
			return wire.UnfreezeNFT{ClassID: classID, ID: m.ID}
		})
	case msg.AddToWhitelist != nil:
		return c.setWhitelist(ctx, sender, *msg.AddToWhitelist, true)
	case msg.RemoveFromWhitelist != nil:
		return c.setWhitelist(ctx, sender, *msg.RemoveFromWhitelist, false)
	case msg.Send != nil:
		m := msg.Send
		return c.forward(ctx, sender, "send", m.ID, func(classID string) wire.Msg {
			return wire.SendNFT{ClassID: classID, ID: m.ID, Receiver: m.Receiver}
		})
	case msg.Purchase != nil:
		return c.purchase(ctx, sender, funds, *msg.Purchase)
	case msg.MintAndSend != nil:
		return c.mintAndSend(ctx, sender, msg.MintAndSend.Account, msg.MintAndSend.Amount)
	default:
		return nil, ErrEmptyExecute
	}
}

// forward is the shape every owner-gated single-instruction operation
// shares: assert owner, load the collection id, emit one instruction
// built from it.
func (c *Contract) forward(ctx context.Context, sender, method, id string, build func(classID string) wire.Msg) (*Response, error) {
	if err := c.assertOwner(ctx, sender); err != nil {
		return nil, err
	}
	classID, err := classIDItem.Load(ctx, c.store)
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("method", method).
		Str("class_id", classID).
		Str("id", id).
		Msg("forwarding instruction")

	return NewResponse().
		AddAttribute("method", method).
		AddAttribute("class_id", classID).
		AddAttribute("id", id).
		AddMessages(build(classID)), nil
}

// setWhitelist forwards the chain-side whitelist instruction and
// persists the local flag before returning. If the ledger rejects the
// emitted batch its transaction boundary rolls the flag write back.
func (c *Contract) setWhitelist(ctx context.Context, sender string, msg WhitelistMsg, permitted bool) (*Response, error) {
	method := "add_to_white_list"
	var build func(classID string) wire.Msg = func(classID string) wire.Msg {
		return wire.AddToWhitelist{ClassID: classID, ID: msg.ID, Account: msg.Account}
	}
	if !permitted {
		method = "remove_from_white_list"
		build = func(classID string) wire.Msg {
			return wire.RemoveFromWhitelist{ClassID: classID, ID: msg.ID, Account: msg.Account}
		}
	}

	resp, err := c.forward(ctx, sender, method, msg.ID, build)
	if err != nil {
		return nil, err
	}
	if err := whitelist.Save(ctx, c.store, msg.Account, permitted); err != nil {
		return nil, err
	}
	return resp, nil
}

// mintAndSend mints amt of the fee denomination and transfers it to
// account: two instructions, mint first. Usable standalone by the owner
// and reused by the purchase fee split.
func (c *Contract) mintAndSend(ctx context.Context, sender, account string, amt uint64) (*Response, error) {
	if err := c.assertOwner(ctx, sender); err != nil {
		return nil, err
	}
	denom, err := denomItem.Load(ctx, c.store)
	if err != nil {
		return nil, err
	}

	return NewResponse().
		AddAttribute("method", "mint_and_send").
		AddAttribute("denom", denom).
		AddAttribute("amount", strconv.FormatUint(amt, 10)).
		AddMessages(feeMsgs(denom, account, amt)...), nil
}

// feeMsgs builds the mint-then-transfer pair moving amt of the fee
// denomination to account.
func feeMsgs(denom, account string, amt uint64) []wire.Msg {
	coin := amount.NewCoin(denom, amt)
	return []wire.Msg{
		wire.MintAsset{Coin: coin},
		wire.BankSend{ToAddress: account, Amount: []amount.Coin{coin}},
	}
}
