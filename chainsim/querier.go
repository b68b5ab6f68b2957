package chainsim

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mintgate-xyz/go-mintgate/pagination"
	"github.com/mintgate-xyz/go-mintgate/wire"
)

// Module implements the chain's query surface.
var _ wire.Querier = (*Module)(nil)

// page serves one page of items. The cursor is the decimal index of the
// next item, matching how callers are expected to treat it: opaque.
func page[T any](items []T, req *pagination.PageRequest, size int) ([]T, pagination.PageResponse, error) {
	start := 0
	if req != nil && len(req.Key) > 0 {
		n, err := strconv.Atoi(string(req.Key))
		if err != nil {
			return nil, pagination.PageResponse{}, fmt.Errorf("chainsim: bad page key %q", req.Key)
		}
		start = n
	}
	if start > len(items) {
		start = len(items)
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}

	resp := pagination.PageResponse{Total: uint64(len(items))}
	if end < len(items) {
		resp.NextKey = []byte(strconv.Itoa(end))
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, resp, nil
}

func (m *Module) NFTParams(ctx context.Context) (wire.ParamsResponse, error) {
	var res wire.ParamsResponse
	res.Params.MintFee.Denom = "ucore"
	res.Params.MintFee.Amount = "0"
	return res, nil
}

func (m *Module) Class(ctx context.Context, classID string) (wire.ClassResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	class, ok := m.classes[classID]
	if !ok {
		return wire.ClassResponse{}, fmt.Errorf("chainsim: class %q not found", classID)
	}
	return wire.ClassResponse{Class: class}, nil
}

func (m *Module) Classes(ctx context.Context, issuer string, req *pagination.PageRequest) (wire.ClassesResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var all []wire.Class
	for _, id := range m.classOrder {
		if class := m.classes[id]; class.Issuer == issuer {
			all = append(all, class)
		}
	}
	items, resp, err := page(all, req, m.pageSize)
	if err != nil {
		return wire.ClassesResponse{}, err
	}
	return wire.ClassesResponse{Classes: items, Pagination: resp}, nil
}

func (m *Module) Frozen(ctx context.Context, classID, id string) (wire.FrozenResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return wire.FrozenResponse{Frozen: m.frozen[classID][id]}, nil
}

func (m *Module) Whitelisted(ctx context.Context, classID, id, account string) (wire.WhitelistedResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return wire.WhitelistedResponse{Whitelisted: m.whitelisted[classID+"/"+id][account]}, nil
}

func (m *Module) WhitelistedAccountsForNFT(ctx context.Context, classID, id string, req *pagination.PageRequest) (wire.WhitelistedAccountsForNFTResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key := classID + "/" + id
	var accounts []string
	for _, acct := range m.whitelistOrder[key] {
		if m.whitelisted[key][acct] {
			accounts = append(accounts, acct)
		}
	}
	items, resp, err := page(accounts, req, m.pageSize)
	if err != nil {
		return wire.WhitelistedAccountsForNFTResponse{}, err
	}
	return wire.WhitelistedAccountsForNFTResponse{Accounts: items, Pagination: resp}, nil
}

func (m *Module) BurntNFT(ctx context.Context, classID, nftID string) (wire.BurntNFTResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return wire.BurntNFTResponse{Burnt: m.burnt[classID][nftID]}, nil
}

func (m *Module) BurntNFTsInClass(ctx context.Context, classID string, req *pagination.PageRequest) (wire.BurntNFTsInClassResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items, resp, err := page(m.burntOrder[classID], req, m.pageSize)
	if err != nil {
		return wire.BurntNFTsInClassResponse{}, err
	}
	return wire.BurntNFTsInClassResponse{NFTIDs: items, Pagination: resp}, nil
}

func (m *Module) Balance(ctx context.Context, classID, owner string) (wire.BalanceResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n uint64
	for _, o := range m.owners[classID] {
		if o == owner {
			n++
		}
	}
	return wire.BalanceResponse{Amount: n}, nil
}

func (m *Module) OwnerOf(ctx context.Context, classID, id string) (wire.OwnerResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	owner, ok := m.owners[classID][id]
	if !ok {
		return wire.OwnerResponse{}, fmt.Errorf("chainsim: nft %q not found in %q", id, classID)
	}
	return wire.OwnerResponse{Owner: owner}, nil
}

func (m *Module) Supply(ctx context.Context, classID string) (wire.SupplyResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return wire.SupplyResponse{Amount: uint64(len(m.nftOrder[classID]))}, nil
}

func (m *Module) NFT(ctx context.Context, classID, id string) (wire.NFTResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	nft, ok := m.nfts[classID][id]
	if !ok {
		return wire.NFTResponse{}, fmt.Errorf("chainsim: nft %q not found in %q", id, classID)
	}
	return wire.NFTResponse{NFT: nft}, nil
}

func (m *Module) NFTs(ctx context.Context, classID, owner string, req *pagination.PageRequest) (wire.NFTsResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var all []wire.NFT
	if owner == "" {
		for _, id := range m.nftOrder[classID] {
			all = append(all, m.nfts[classID][id])
		}
	} else {
		for _, cid := range m.classOrder {
			for _, id := range m.nftOrder[cid] {
				if m.owners[cid][id] == owner {
					all = append(all, m.nfts[cid][id])
				}
			}
		}
	}
	items, resp, err := page(all, req, m.pageSize)
	if err != nil {
		return wire.NFTsResponse{}, err
	}
	return wire.NFTsResponse{NFTs: items, Pagination: resp}, nil
}

func (m *Module) NFTClass(ctx context.Context, classID string) (wire.ClassResponse, error) {
	return m.Class(ctx, classID)
}

func (m *Module) NFTClasses(ctx context.Context, req *pagination.PageRequest) (wire.ClassesResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]wire.Class, 0, len(m.classOrder))
	for _, id := range m.classOrder {
		all = append(all, m.classes[id])
	}
	items, resp, err := page(all, req, m.pageSize)
	if err != nil {
		return wire.ClassesResponse{}, err
	}
	return wire.ClassesResponse{Classes: items, Pagination: resp}, nil
}
