package main

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/holiman/uint256"

	"github.com/mintgate-xyz/go-mintgate/amount"
	"github.com/mintgate-xyz/go-mintgate/calllog"
	"github.com/mintgate-xyz/go-mintgate/contract"
)

func openTestSale(t *testing.T, storePath string) *sale {
	t.Helper()
	s, err := openSale(storePath, "contract1", false)
	if err != nil {
		t.Fatalf("open sale failed: %v", err)
	}
	return s
}

func mustFinish(t *testing.T, s *sale, method string, resp *contract.Response, callErr error) {
	t.Helper()
	if err := s.finish(context.Background(), method, "owner1", resp, callErr); err != nil {
		t.Fatalf("%s failed: %v", method, err)
	}
}

// A call that passes the contract's preconditions but whose batch the
// chain refuses must be journaled as failed, leave no store writes
// behind, and never poison later replays.
func TestFailedApplyIsJournaledAndSkippedOnReplay(t *testing.T) {
	ctx := context.Background()
	storePath := filepath.Join(t.TempDir(), "sale.db")

	s := openTestSale(t, storePath)
	resp, err := s.contract.Instantiate(ctx, "owner1", contract.InstantiateMsg{
		Name:            "Drop",
		Symbol:          "DROP",
		TreasuryAddress: "treasury1",
		ProtocolAddress: "protocol1",
		MintPrice:       uint256.NewInt(100),
		ProtocolFee:     10,
		MaxTotalMint:    uint256.NewInt(5),
	})
	mustFinish(t, s, "instantiate", resp, err)

	// Occupy unit id token1 so the later purchase batch cannot apply.
	resp, err = s.contract.Execute(ctx, "owner1", nil, contract.ExecuteMsg{
		Mint: &contract.MintMsg{ID: "token1"},
	})
	mustFinish(t, s, "mint", resp, err)

	resp, err = s.contract.Execute(ctx, "owner1", nil, contract.ExecuteMsg{
		AddToWhitelist: &contract.WhitelistMsg{ID: "token1", Account: "owner1"},
	})
	mustFinish(t, s, "add_to_whitelist", resp, err)

	// The purchase clears every precondition, advances the counter in
	// the staged view, then fails at apply on the duplicate mint.
	funds := []amount.Coin{amount.NewCoin("uscrt", 100)}
	resp, err = s.contract.Execute(ctx, "owner1", funds, contract.ExecuteMsg{
		Purchase: &contract.PurchaseMsg{Count: uint256.NewInt(1), ID: "token1", Receiver: "buyer1"},
	})
	if err != nil {
		t.Fatalf("purchase rejected before apply: %v", err)
	}
	finishErr := s.finish(ctx, "purchase", "owner1", resp, err)
	if finishErr == nil || !strings.Contains(finishErr.Error(), "apply batch") {
		t.Fatalf("expected apply failure, got %v", finishErr)
	}

	// The discarded counter advance must not be visible.
	assertCounter(t, s, 0)
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// Reopening replays the journal; the failed record is skipped.
	s = openTestSale(t, storePath)
	defer s.Close()
	assertCounter(t, s, 0)

	records, err := calllog.ReadFile(journalPath(storePath))
	if err != nil {
		t.Fatalf("read journal failed: %v", err)
	}
	last := records[len(records)-1]
	if last.Method != "purchase" || last.Error == "" {
		t.Fatalf("expected failed purchase record, got method %q error %q", last.Method, last.Error)
	}
	if len(last.Messages) != 0 {
		t.Errorf("failed record must carry no instructions, got %d", len(last.Messages))
	}
}

func assertCounter(t *testing.T, s *sale, want uint64) {
	t.Helper()
	raw, err := s.contract.Query(context.Background(), contract.QueryMsg{
		GetInfo: &contract.GetInfoQuery{Owner: "owner1"},
	})
	if err != nil {
		t.Fatalf("get_info failed: %v", err)
	}
	var info contract.GetInfoResponse
	if err := json.Unmarshal(raw, &info); err != nil {
		t.Fatalf("decode get_info failed: %v", err)
	}
	if info.CurrentTokenID.Uint64() != want {
		t.Fatalf("expected current_token_id %d, got %s", want, info.CurrentTokenID.Dec())
	}
}

// Successful calls commit their store writes and replay cleanly.
func TestSuccessfulCallsCommitAndReplay(t *testing.T) {
	ctx := context.Background()
	storePath := filepath.Join(t.TempDir(), "sale.db")

	s := openTestSale(t, storePath)
	resp, err := s.contract.Instantiate(ctx, "owner1", contract.InstantiateMsg{
		Name:            "Drop",
		Symbol:          "DROP",
		TreasuryAddress: "treasury1",
		ProtocolAddress: "protocol1",
		MintPrice:       uint256.NewInt(100),
		ProtocolFee:     10,
		MaxTotalMint:    uint256.NewInt(5),
	})
	mustFinish(t, s, "instantiate", resp, err)

	resp, err = s.contract.Execute(ctx, "owner1", nil, contract.ExecuteMsg{
		AddToWhitelist: &contract.WhitelistMsg{ID: "token1", Account: "owner1"},
	})
	mustFinish(t, s, "add_to_whitelist", resp, err)

	funds := []amount.Coin{amount.NewCoin("uscrt", 100)}
	resp, err = s.contract.Execute(ctx, "owner1", funds, contract.ExecuteMsg{
		Purchase: &contract.PurchaseMsg{Count: uint256.NewInt(1), ID: "token1", Receiver: "buyer1"},
	})
	mustFinish(t, s, "purchase", resp, err)

	assertCounter(t, s, 1)
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	s = openTestSale(t, storePath)
	defer s.Close()
	assertCounter(t, s, 1)
	if got := s.sim.BankBalance("treasury1", "uscrt"); got != 90 {
		t.Errorf("expected replayed treasury balance 90, got %d", got)
	}
}
