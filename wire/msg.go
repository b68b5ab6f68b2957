// Package wire defines the instruction and query shapes exchanged with
// the chain's asset modules. The contract core emits these; it never
// executes them. The ledger runtime applies an emitted batch
// atomically, so a batch either lands whole or not at all.
package wire

import "github.com/mintgate-xyz/go-mintgate/amount"

// Msg is one outbound instruction for the chain to execute.
type Msg interface {
	// MsgKind names the instruction, e.g. "assetnft.mint".
	MsgKind() string
}

// IssueClass creates the NFT collection at sale instantiation.
type IssueClass struct {
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Description string   `json:"description,omitempty"`
	URI         string   `json:"uri,omitempty"`
	URIHash     string   `json:"uri_hash,omitempty"`
	Data        []byte   `json:"data,omitempty"`
	Features    []uint32 `json:"features,omitempty"`
	RoyaltyRate string   `json:"royalty_rate,omitempty"`
}

func (IssueClass) MsgKind() string { return "assetnft.issue_class" }

// MintAsset mints fungible tokens of the sale's fee denomination to the
// contract's own account.
type MintAsset struct {
	Coin amount.Coin `json:"coin"`
}

func (MintAsset) MsgKind() string { return "assetft.mint" }

// BankSend moves fungible tokens from the contract to a recipient.
type BankSend struct {
	ToAddress string        `json:"to_address"`
	Amount    []amount.Coin `json:"amount"`
}

func (BankSend) MsgKind() string { return "bank.send" }

// MintNFT mints one unit in the sale's collection.
type MintNFT struct {
	ClassID string `json:"class_id"`
	ID      string `json:"id"`
	URI     string `json:"uri,omitempty"`
	URIHash string `json:"uri_hash,omitempty"`
	Data    []byte `json:"data,omitempty"`
}

func (MintNFT) MsgKind() string { return "assetnft.mint" }

// BurnNFT destroys one unit.
type BurnNFT struct {
	ClassID string `json:"class_id"`
	ID      string `json:"id"`
}

func (BurnNFT) MsgKind() string { return "assetnft.burn" }

// FreezeNFT blocks transfers of one unit.
type FreezeNFT struct {
	ClassID string `json:"class_id"`
	ID      string `json:"id"`
}

func (FreezeNFT) MsgKind() string { return "assetnft.freeze" }

// UnfreezeNFT lifts a freeze.
type UnfreezeNFT struct {
	ClassID string `json:"class_id"`
	ID      string `json:"id"`
}

func (UnfreezeNFT) MsgKind() string { return "assetnft.unfreeze" }

// AddToWhitelist whitelists an account for one unit on the chain side.
type AddToWhitelist struct {
	ClassID string `json:"class_id"`
	ID      string `json:"id"`
	Account string `json:"account"`
}

func (AddToWhitelist) MsgKind() string { return "assetnft.add_to_whitelist" }

// RemoveFromWhitelist removes a chain-side whitelist entry.
type RemoveFromWhitelist struct {
	ClassID string `json:"class_id"`
	ID      string `json:"id"`
	Account string `json:"account"`
}

func (RemoveFromWhitelist) MsgKind() string { return "assetnft.remove_from_whitelist" }

// SendNFT transfers one unit to a receiver.
type SendNFT struct {
	ClassID  string `json:"class_id"`
	ID       string `json:"id"`
	Receiver string `json:"receiver"`
}

func (SendNFT) MsgKind() string { return "nft.send" }

// Kinds returns the kind names of a message batch in emission order.
func Kinds(msgs []Msg) []string {
	kinds := make([]string, len(msgs))
	for i, m := range msgs {
		kinds[i] = m.MsgKind()
	}
	return kinds
}
