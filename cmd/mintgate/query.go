package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mintgate-xyz/go-mintgate/contract"
)

func query(args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	storePath := fs.String("store", "sale.db", "Path to the sale store")
	address := fs.String("address", "mintgate1", "Contract address")
	verbose := fs.Bool("verbose", false, "Log contract activity")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: mintgate query [options] <message>

Run one read query. Chain state is rebuilt by replaying the call
journal, so queries reflect every successful exec so far.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # List the whole collection
  mintgate query --store sale.db '{"nfts":{}}'

  # Sale summary for one account
  mintgate query --store sale.db '{"get_info":{"owner":"buyer1"}}'
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
	var msg contract.QueryMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("parse message: %w", err)
	}

	s, err := openSale(*storePath, *address, *verbose)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.contract.Query(context.Background(), msg)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, res, "", "  "); err != nil {
		return fmt.Errorf("format response: %w", err)
	}
	fmt.Println(out.String())
	return nil
}
