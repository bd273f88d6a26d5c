package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/starclub/inventory"
	"github.com/starclub/inventory/renderer"
)

type reportCmd struct {
	date  string
	item  string
	csv   string
	share bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a stock report for a single day" }
func (*reportCmd) Usage() string {
	return `sci report [-d <date>] [-i <item_id>] [-csv <file>] [-share]

  Displays the audit entries recorded for one day, with purchase, sales
  and shortage totals. -csv exports the same rows to a spreadsheet file;
  -share prints a plain-text block ready to paste into a messaging app.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date (defaults to today).")
	f.StringVar(&c.item, "i", "all", "Restrict the report to one item id.")
	f.StringVar(&c.csv, "csv", "", "Write the report as CSV to this file.")
	f.BoolVar(&c.share, "share", false, "Print the report as a shareable text message.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	on := inventory.Today()
	if c.date != "" {
		if on, err = inventory.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -d: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	txs := snap.Filter(on, c.item)

	if c.csv != "" {
		if err := c.exportCSV(snap, txs); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", len(txs), c.csv)
		return subcommands.ExitSuccess
	}

	if c.share {
		fmt.Println(inventory.ShareMessage(snap, on, txs))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Report(snap, on, txs))
	return subcommands.ExitSuccess
}

func (c *reportCmd) exportCSV(snap *inventory.Snapshot, txs []inventory.Transaction) error {
	out, err := os.Create(c.csv)
	if err != nil {
		return err
	}
	if err := inventory.ExportCSV(out, snap, txs); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
