package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "init":
		if err := initSale(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "exec":
		if err := execCall(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "query":
		if err := query(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "journal":
		if err := journal(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("mintgate version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mintgate - NFT sale contract dry-run tool

Usage:
  mintgate <command> [options]

Commands:
  init       Instantiate a sale into a local store
  exec       Execute a mutating call against the sale
  query      Run a read query against the sale
  journal    Display the call journal
  help       Show this help message
  version    Show version information

Examples:
  # Instantiate a sale
  mintgate init --store sale.db --symbol DROP --treasury treasury1 \
    --protocol protocol1 --mint-price 100 --protocol-fee 10 --max-total-mint 500

  # Whitelist a buyer, then purchase
  mintgate exec --store sale.db '{"add_to_whitelist":{"id":"1","account":"owner1"}}'
  mintgate exec --store sale.db --funds 100uscrt \
    '{"purchase":{"count":"1","id":"1","receiver":"buyer1"}}'

  # Query the collection
  mintgate query --store sale.db '{"nfts":{}}'

  # Show the call journal as CSV
  mintgate journal --store sale.db --csv

For command-specific help, run:
  mintgate <command> --help`)
}
