package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mintgate-xyz/go-mintgate/calllog"
)

func journal(args []string) error {
	fs := flag.NewFlagSet("journal", flag.ExitOnError)
	storePath := fs.String("store", "sale.db", "Path to the sale store")
	csvOut := fs.Bool("csv", false, "Write CSV instead of a table")
	methodFilter := fs.String("method", "", "Filter by method")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: mintgate journal [options]

Display the call journal, oldest first.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Show all calls
  mintgate journal --store sale.db

  # Only purchases, as CSV
  mintgate journal --store sale.db --method purchase --csv
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := calllog.ReadFile(journalPath(*storePath))
	if err != nil {
		return err
	}

	if *methodFilter != "" {
		filtered := records[:0]
		for _, rec := range records {
			if rec.Method == *methodFilter {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if len(records) == 0 {
		fmt.Println("No calls recorded")
		return nil
	}

	if *csvOut {
		return calllog.WriteCSV(os.Stdout, records)
	}

	fmt.Printf("=== Call Journal (%d calls) ===\n\n", len(records))
	for _, rec := range records {
		status := "ok"
		if rec.Error != "" {
			status = "FAILED: " + rec.Error
		}
		kinds := make([]string, len(rec.Messages))
		for i, m := range rec.Messages {
			kinds[i] = m.Kind
		}
		fmt.Printf("%s  %-22s %-12s %s\n", rec.Time.Format("2006-01-02 15:04:05"), rec.Method, rec.Sender, status)
		if len(kinds) > 0 {
			fmt.Printf("%21s %s\n", "", strings.Join(kinds, ", "))
		}
	}
	return nil
}
