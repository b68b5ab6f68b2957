package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/holiman/uint256"

	"github.com/mintgate-xyz/go-mintgate/contract"
)

func initSale(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	storePath := fs.String("store", "sale.db", "Path to the sale store")
	address := fs.String("address", "mintgate1", "Contract address")
	sender := fs.String("sender", "owner1", "Instantiating account, recorded as owner")
	verbose := fs.Bool("verbose", false, "Log contract activity")

	name := fs.String("name", "", "Collection name")
	symbol := fs.String("symbol", "", "Collection symbol (required)")
	description := fs.String("description", "", "Collection description")
	prerevealURI := fs.String("prereveal-uri", "", "Token URI served before reveal")
	treasury := fs.String("treasury", "", "Treasury account (required)")
	protocol := fs.String("protocol", "", "Protocol fee account (required)")
	mintPrice := fs.Uint64("mint-price", 0, "Price per unit")
	priceDenom := fs.String("price-denom", "", "Payment denomination (defaults to uscrt)")
	feeDenom := fs.String("fee-denom", "", "Fee denomination (defaults to the price denomination)")
	protocolFee := fs.Uint64("protocol-fee", 0, "Protocol fee percentage, 0-100")
	maxTotalMint := fs.Uint64("max-total-mint", 0, "Supply cap")
	saleStart := fs.Int64("sale-start", 0, "Sale start, unix seconds")
	saleEnd := fs.Int64("sale-end", 0, "Sale end, unix seconds")
	uriStatus := fs.String("uri-status", "prereveal", "URI reveal status")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: mintgate init [options]

Instantiate a sale into a local store. The invoking account becomes the
owner; the collection id is derived from the symbol and the contract
address.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *symbol == "" {
		fs.Usage()
		return fmt.Errorf("--symbol is required")
	}
	if *treasury == "" || *protocol == "" {
		fs.Usage()
		return fmt.Errorf("--treasury and --protocol are required")
	}

	s, err := openSale(*storePath, *address, *verbose)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	msg := contract.InstantiateMsg{
		Name:              *name,
		Symbol:            *symbol,
		Description:       *description,
		PrerevealTokenURI: *prerevealURI,
		TreasuryAddress:   *treasury,
		ProtocolAddress:   *protocol,
		CurrentTokenID:    uint256.NewInt(0),
		MintPrice:         uint256.NewInt(*mintPrice),
		PriceDenom:        *priceDenom,
		FeeDenom:          *feeDenom,
		SaleStartTime:     *saleStart,
		SaleEndTime:       *saleEnd,
		ProtocolFee:       *protocolFee,
		MaxTotalMint:      uint256.NewInt(*maxTotalMint),
		URIStatus:         *uriStatus,
	}

	resp, err := s.contract.Instantiate(ctx, *sender, msg)
	if err := s.finish(ctx, "instantiate", *sender, resp, err); err != nil {
		return err
	}

	fmt.Printf("Sale instantiated\n")
	fmt.Printf("  owner:    %s\n", resp.Attribute("owner"))
	fmt.Printf("  class_id: %s\n", resp.Attribute("class_id"))
	fmt.Printf("  store:    %s\n", *storePath)
	fmt.Printf("  journal:  %s\n", journalPath(*storePath))
	return nil
}
