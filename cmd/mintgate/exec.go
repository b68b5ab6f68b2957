package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mintgate-xyz/go-mintgate/amount"
	"github.com/mintgate-xyz/go-mintgate/contract"
)

func execCall(args []string) error {
	fs := flag.NewFlagSet("exec", flag.ExitOnError)
	storePath := fs.String("store", "sale.db", "Path to the sale store")
	address := fs.String("address", "mintgate1", "Contract address")
	sender := fs.String("sender", "owner1", "Calling account")
	fundsArg := fs.String("funds", "", "Attached funds, e.g. 100uscrt")
	verbose := fs.Bool("verbose", false, "Log contract activity")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: mintgate exec [options] <message>

Execute one mutating call. The message is a JSON object with exactly one
variant set, given inline or as a file path.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Whitelist the owner for unit 1
  mintgate exec --store sale.db '{"add_to_whitelist":{"id":"1","account":"owner1"}}'

  # Purchase unit 1
  mintgate exec --store sale.db --funds 100uscrt \
    '{"purchase":{"count":"1","id":"1","uri":"ipfs://1","receiver":"buyer1"}}'
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("message required")
	}

	raw, err := readMsgArg(fs.Arg(0))
	if err != nil {
		return err
	}
	var msg contract.ExecuteMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("parse message: %w", err)
	}
	funds, err := amount.ParseCoins(*fundsArg)
	if err != nil {
		return fmt.Errorf("parse funds: %w", err)
	}

	s, err := openSale(*storePath, *address, *verbose)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	resp, err := s.contract.Execute(ctx, *sender, funds, msg)
	if err := s.finish(ctx, methodName(msg), *sender, resp, err); err != nil {
		return err
	}

	for _, attr := range resp.Attributes {
		fmt.Printf("%s: %s\n", attr.Key, attr.Value)
	}
	fmt.Printf("instructions: %d\n", len(resp.Messages))
	return nil
}

func methodName(msg contract.ExecuteMsg) string {
	switch {
	case msg.Mint != nil:
		return "mint"
	case msg.Burn != nil:
		return "burn"
	case msg.Freeze != nil:
		return "freeze"
	case msg.Unfreeze != nil:
		return "unfreeze"
	case msg.AddToWhitelist != nil:
		return "add_to_whitelist"
	case msg.RemoveFromWhitelist != nil:
		return "remove_from_whitelist"
	case msg.Send != nil:
		return "send"
	case msg.Purchase != nil:
		return "purchase"
	case msg.MintAndSend != nil:
		return "mint_and_send"
	default:
		return "unknown"
	}
}
