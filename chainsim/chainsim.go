// Package chainsim is an in-memory stand-in for the chain's asset
// modules. It applies the instruction batches the contract emits and
// serves the paged queries the contract's read side issues, which makes
// full instantiate→purchase→query flows runnable without a chain.
// Used by tests and the dry-run CLI; it models module behavior only as
// far as the contract exercises it.
package chainsim

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mintgate-xyz/go-mintgate/wire"
)

// DefaultPageSize is how many items a paged query returns per page.
const DefaultPageSize = 40

// Module holds the simulated asset-module state.
type Module struct {
	mu       sync.RWMutex
	issuer   string
	pageSize int

	classes    map[string]wire.Class
	classOrder []string

	nfts     map[string]map[string]wire.NFT // class id → unit id → unit
	nftOrder map[string][]string
	owners   map[string]map[string]string

	burnt      map[string]map[string]bool
	burntOrder map[string][]string

	frozen map[string]map[string]bool

	// Chain-side whitelist flags, keyed per class/unit.
	whitelisted    map[string]map[string]bool
	whitelistOrder map[string][]string

	bank map[string]map[string]uint64 // account → denom → amount
}

// New creates a module whose issuing account is the contract address.
// Fungible mints credit the issuer; the contract then moves the funds
// with bank sends, as the real modules do.
func New(issuer string) *Module {
	return &Module{
		issuer:         issuer,
		pageSize:       DefaultPageSize,
		classes:        make(map[string]wire.Class),
		nfts:           make(map[string]map[string]wire.NFT),
		nftOrder:       make(map[string][]string),
		owners:         make(map[string]map[string]string),
		burnt:          make(map[string]map[string]bool),
		burntOrder:     make(map[string][]string),
		frozen:         make(map[string]map[string]bool),
		whitelisted:    make(map[string]map[string]bool),
		whitelistOrder: make(map[string][]string),
		bank:           make(map[string]map[string]uint64),
	}
}

// SetPageSize overrides the page size served by paged queries.
func (m *Module) SetPageSize(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > 0 {
		m.pageSize = n
	}
}

// BankBalance returns a simulated account's balance in one
// denomination.
func (m *Module) BankBalance(account, denom string) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bank[account][denom]
}

// Apply executes one instruction against the module state.
func (m *Module) Apply(msg wire.Msg) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.apply(msg)
}

// ApplyBatch executes an instruction batch atomically: if any
// instruction fails, the whole batch is rolled back, matching the
// ledger's transaction boundary.
func (m *Module) ApplyBatch(msgs []wire.Msg) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := m.clone()
	for i, msg := range msgs {
		if err := m.apply(msg); err != nil {
			m.restore(saved)
			return fmt.Errorf("instruction %d (%s): %w", i, msg.MsgKind(), err)
		}
	}
	return nil
}

func (m *Module) apply(msg wire.Msg) error {
	switch v := msg.(type) {
	case wire.IssueClass:
		return m.issueClass(v)
	case wire.MintAsset:
		m.credit(m.issuer, v.Coin.Denom, v.Coin.Amount)
		return nil
	case wire.BankSend:
		return m.bankSend(v)
	case wire.MintNFT:
		return m.mintNFT(v)
	case wire.BurnNFT:
		return m.burnNFT(v)
	case wire.FreezeNFT:
		return m.setFrozen(v.ClassID, v.ID, true)
	case wire.UnfreezeNFT:
		return m.setFrozen(v.ClassID, v.ID, false)
	case wire.AddToWhitelist:
		m.setWhitelisted(v.ClassID, v.ID, v.Account, true)
		return nil
	case wire.RemoveFromWhitelist:
		m.setWhitelisted(v.ClassID, v.ID, v.Account, false)
		return nil
	case wire.SendNFT:
		return m.sendNFT(v)
	default:
		return fmt.Errorf("chainsim: unsupported instruction %T", msg)
	}
}

func (m *Module) issueClass(v wire.IssueClass) error {
	// Same derivation the contract performs at instantiation.
	classID := strings.ToLower(v.Symbol + "-" + m.issuer)
	if _, ok := m.classes[classID]; ok {
		return fmt.Errorf("chainsim: class %q already exists", classID)
	}
	m.classes[classID] = wire.Class{
		ID:          classID,
		Issuer:      m.issuer,
		Name:        v.Name,
		Symbol:      v.Symbol,
		Description: v.Description,
		URI:         v.URI,
		URIHash:     v.URIHash,
		Data:        v.Data,
		Features:    v.Features,
		RoyaltyRate: v.RoyaltyRate,
	}
	m.classOrder = append(m.classOrder, classID)
	m.nfts[classID] = make(map[string]wire.NFT)
	m.owners[classID] = make(map[string]string)
	m.burnt[classID] = make(map[string]bool)
	m.frozen[classID] = make(map[string]bool)
	return nil
}

func (m *Module) bankSend(v wire.BankSend) error {
	for _, coin := range v.Amount {
		if m.bank[m.issuer][coin.Denom] < coin.Amount {
			return fmt.Errorf("chainsim: insufficient %s balance", coin.Denom)
		}
	}
	for _, coin := range v.Amount {
		m.bank[m.issuer][coin.Denom] -= coin.Amount
		m.credit(v.ToAddress, coin.Denom, coin.Amount)
	}
	return nil
}

func (m *Module) credit(account, denom string, amt uint64) {
	if m.bank[account] == nil {
		m.bank[account] = make(map[string]uint64)
	}
	m.bank[account][denom] += amt
}

func (m *Module) mintNFT(v wire.MintNFT) error {
	if _, ok := m.classes[v.ClassID]; !ok {
		return fmt.Errorf("chainsim: class %q not found", v.ClassID)
	}
	if _, ok := m.nfts[v.ClassID][v.ID]; ok {
		return fmt.Errorf("chainsim: nft %q already exists in %q", v.ID, v.ClassID)
	}
	m.nfts[v.ClassID][v.ID] = wire.NFT{
		ClassID: v.ClassID,
		ID:      v.ID,
		URI:     v.URI,
		URIHash: v.URIHash,
		Data:    v.Data,
	}
	m.nftOrder[v.ClassID] = append(m.nftOrder[v.ClassID], v.ID)
	m.owners[v.ClassID][v.ID] = m.issuer
	return nil
}

func (m *Module) burnNFT(v wire.BurnNFT) error {
	if _, ok := m.nfts[v.ClassID][v.ID]; !ok {
		return fmt.Errorf("chainsim: nft %q not found in %q", v.ID, v.ClassID)
	}
	delete(m.nfts[v.ClassID], v.ID)
	delete(m.owners[v.ClassID], v.ID)
	order := m.nftOrder[v.ClassID]
	for i, id := range order {
		if id == v.ID {
			m.nftOrder[v.ClassID] = append(order[:i:i], order[i+1:]...)
			break
		}
	}
	m.burnt[v.ClassID][v.ID] = true
	m.burntOrder[v.ClassID] = append(m.burntOrder[v.ClassID], v.ID)
	return nil
}

func (m *Module) setFrozen(classID, id string, frozen bool) error {
	if _, ok := m.nfts[classID][id]; !ok {
		return fmt.Errorf("chainsim: nft %q not found in %q", id, classID)
	}
	m.frozen[classID][id] = frozen
	return nil
}

// setWhitelisted records a chain-side flag. Units may be whitelisted
// before they are minted; the sale whitelists buyers ahead of the
// purchase that mints the unit.
func (m *Module) setWhitelisted(classID, id, account string, permitted bool) {
	key := classID + "/" + id
	if m.whitelisted[key] == nil {
		m.whitelisted[key] = make(map[string]bool)
	}
	if _, seen := m.whitelisted[key][account]; !seen {
		m.whitelistOrder[key] = append(m.whitelistOrder[key], account)
	}
	m.whitelisted[key][account] = permitted
}

func (m *Module) sendNFT(v wire.SendNFT) error {
	if _, ok := m.nfts[v.ClassID][v.ID]; !ok {
		return fmt.Errorf("chainsim: nft %q not found in %q", v.ID, v.ClassID)
	}
	if m.frozen[v.ClassID][v.ID] {
		return fmt.Errorf("chainsim: nft %q is frozen", v.ID)
	}
	m.owners[v.ClassID][v.ID] = v.Receiver
	return nil
}

// clone and restore implement the batch transaction boundary.

type snapshot struct {
	classes        map[string]wire.Class
	classOrder     []string
	nfts           map[string]map[string]wire.NFT
	nftOrder       map[string][]string
	owners         map[string]map[string]string
	burnt          map[string]map[string]bool
	burntOrder     map[string][]string
	frozen         map[string]map[string]bool
	whitelisted    map[string]map[string]bool
	whitelistOrder map[string][]string
	bank           map[string]map[string]uint64
}

func (m *Module) clone() snapshot {
	return snapshot{
		classes:        copyMap(m.classes),
		classOrder:     copySlice(m.classOrder),
		nfts:           copyNested(m.nfts),
		nftOrder:       copySliceMap(m.nftOrder),
		owners:         copyNested(m.owners),
		burnt:          copyNested(m.burnt),
		burntOrder:     copySliceMap(m.burntOrder),
		frozen:         copyNested(m.frozen),
		whitelisted:    copyNested(m.whitelisted),
		whitelistOrder: copySliceMap(m.whitelistOrder),
		bank:           copyNested(m.bank),
	}
}

func (m *Module) restore(s snapshot) {
	m.classes = s.classes
	m.classOrder = s.classOrder
	m.nfts = s.nfts
	m.nftOrder = s.nftOrder
	m.owners = s.owners
	m.burnt = s.burnt
	m.burntOrder = s.burntOrder
	m.frozen = s.frozen
	m.whitelisted = s.whitelisted
	m.whitelistOrder = s.whitelistOrder
	m.bank = s.bank
}

func copyMap[V any](in map[string]V) map[string]V {
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copySlice(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyNested[V any](in map[string]map[string]V) map[string]map[string]V {
	out := make(map[string]map[string]V, len(in))
	for k, inner := range in {
		out[k] = copyMap(inner)
	}
	return out
}

func copySliceMap(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = copySlice(v)
	}
	return out
}
