package contract_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mintgate-xyz/go-mintgate/contract"
	"github.com/mintgate-xyz/go-mintgate/wire"
)

func TestInstantiateDerivesClassID(t *testing.T) {
	c, _ := newSale(t, contract.InstantiateMsg{})

	ctx := context.Background()
	raw, err := c.Query(ctx, contract.QueryMsg{Class: &contract.ClassQuery{}})
	if err != nil {
		t.Fatalf("class query failed: %v", err)
	}
	var res wire.ClassResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	// Symbol "DROP" and address "contract1", joined and lower-cased.
	if res.Class.ID != "drop-contract1" {
		t.Errorf("expected class id drop-contract1, got %s", res.Class.ID)
	}
	if res.Class.Symbol != "DROP" {
		t.Errorf("expected symbol DROP, got %s", res.Class.Symbol)
	}
}

func TestExecuteForwardsOwnerOperations(t *testing.T) {
	ctx := context.Background()
	c, sim := newSale(t, contract.InstantiateMsg{})

	mint, err := c.Execute(ctx, ownerAddr, nil, contract.ExecuteMsg{
		Mint: &contract.MintMsg{ID: "token1", URI: "ipfs://token1"},
	})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}
	if got := wire.Kinds(mint.Messages); len(got) != 1 || got[0] != "assetnft.mint" {
		t.Fatalf("expected single assetnft.mint, got %v", got)
	}
	if got := mint.Attribute("method"); got != "mint" {
		t.Errorf("expected method attribute mint, got %s", got)
	}
	if err := sim.ApplyBatch(mint.Messages); err != nil {
		t.Fatalf("apply mint failed: %v", err)
	}

	steps := []struct {
		name string
		msg  contract.ExecuteMsg
		kind string
	}{
		{"freeze", contract.ExecuteMsg{Freeze: &contract.FreezeMsg{ID: "token1"}}, "assetnft.freeze"},
		{"unfreeze", contract.ExecuteMsg{Unfreeze: &contract.UnfreezeMsg{ID: "token1"}}, "assetnft.unfreeze"},
		{"send", contract.ExecuteMsg{Send: &contract.SendMsg{ID: "token1", Receiver: buyerAddr}}, "nft.send"},
		{"burn", contract.ExecuteMsg{Burn: &contract.BurnMsg{ID: "token1"}}, "assetnft.burn"},
	}
	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			resp, err := c.Execute(ctx, ownerAddr, nil, step.msg)
			if err != nil {
				t.Fatalf("%s failed: %v", step.name, err)
			}
			if got := wire.Kinds(resp.Messages); len(got) != 1 || got[0] != step.kind {
				t.Fatalf("expected single %s, got %v", step.kind, got)
			}
			if err := sim.ApplyBatch(resp.Messages); err != nil {
				t.Fatalf("apply %s failed: %v", step.name, err)
			}
		})
	}
}

func TestExecuteRejectsNonOwner(t *testing.T) {
	ctx := context.Background()
	c, _ := newSale(t, contract.InstantiateMsg{})

	msgs := []contract.ExecuteMsg{
		{Mint: &contract.MintMsg{ID: "token1"}},
		{Burn: &contract.BurnMsg{ID: "token1"}},
		{Freeze: &contract.FreezeMsg{ID: "token1"}},
		{Unfreeze: &contract.UnfreezeMsg{ID: "token1"}},
		{AddToWhitelist: &contract.WhitelistMsg{ID: "token1", Account: buyerAddr}},
		{RemoveFromWhitelist: &contract.WhitelistMsg{ID: "token1", Account: buyerAddr}},
		{Send: &contract.SendMsg{ID: "token1", Receiver: buyerAddr}},
		{MintAndSend: &contract.MintAndSendMsg{Account: buyerAddr, Amount: 5}},
	}
	for _, msg := range msgs {
		if _, err := c.Execute(ctx, buyerAddr, nil, msg); !errors.Is(err, contract.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	}
}

func TestExecuteRejectsEmptyMessage(t *testing.T) {
	c, _ := newSale(t, contract.InstantiateMsg{})
	_, err := c.Execute(context.Background(), ownerAddr, nil, contract.ExecuteMsg{})
	if !errors.Is(err, contract.ErrEmptyExecute) {
		t.Fatalf("expected ErrEmptyExecute, got %v", err)
	}
}

func TestMintAndSendEmitsMintThenTransfer(t *testing.T) {
	ctx := context.Background()
	c, sim := newSale(t, contract.InstantiateMsg{})

	resp, err := c.Execute(ctx, ownerAddr, nil, contract.ExecuteMsg{
		MintAndSend: &contract.MintAndSendMsg{Account: buyerAddr, Amount: 42},
	})
	if err != nil {
		t.Fatalf("mint_and_send failed: %v", err)
	}
	kinds := wire.Kinds(resp.Messages)
	if len(kinds) != 2 || kinds[0] != "assetft.mint" || kinds[1] != "bank.send" {
		t.Fatalf("expected [assetft.mint bank.send], got %v", kinds)
	}
	if got := resp.Attribute("amount"); got != "42" {
		t.Errorf("expected amount attribute 42, got %s", got)
	}

	if err := sim.ApplyBatch(resp.Messages); err != nil {
		t.Fatalf("apply batch failed: %v", err)
	}
	if got := sim.BankBalance(buyerAddr, "uscrt"); got != 42 {
		t.Errorf("expected balance 42, got %d", got)
	}
}

func TestWhitelistEmitsChainInstruction(t *testing.T) {
	ctx := context.Background()
	c, sim := newSale(t, contract.InstantiateMsg{})

	resp, err := c.Execute(ctx, ownerAddr, nil, contract.ExecuteMsg{
		AddToWhitelist: &contract.WhitelistMsg{ID: "token1", Account: buyerAddr},
	})
	if err != nil {
		t.Fatalf("add to whitelist failed: %v", err)
	}
	if got := wire.Kinds(resp.Messages); len(got) != 1 || got[0] != "assetnft.add_to_whitelist" {
		t.Fatalf("expected assetnft.add_to_whitelist, got %v", got)
	}
	if got := resp.Attribute("method"); got != "add_to_white_list" {
		t.Errorf("expected method add_to_white_list, got %s", got)
	}
	if err := sim.ApplyBatch(resp.Messages); err != nil {
		t.Fatalf("apply batch failed: %v", err)
	}

	got, err := sim.Whitelisted(ctx, "drop-contract1", "token1", buyerAddr)
	if err != nil {
		t.Fatalf("whitelisted query failed: %v", err)
	}
	if !got.Whitelisted {
		t.Error("expected chain-side flag to be set")
	}
}
