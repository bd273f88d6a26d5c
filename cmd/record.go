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

type recordCmd struct {
	item     string
	date     string
	open     string
	purchase string
	sales    string
	physical string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record a stock audit entry for an item" }
func (*recordCmd) Usage() string {
	return `sci record -i <item_id> [-d <date>] [-open <n>] [-purchase <n>] [-sales <n>] -physical <n>

  Records one audit entry. The closing stock and the shortage are derived:

    closing  = opening + purchase - sales
    shortage = physical - closing

  When -open is omitted, the opening stock defaults to the item's latest
  physically counted stock, chaining audits day over day.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item id to audit.")
	f.StringVar(&c.date, "d", "", "Audit date (defaults to today).")
	f.StringVar(&c.open, "open", "", "Opening stock (defaults to the item's latest physical count).")
	f.StringVar(&c.purchase, "purchase", "0", "Units purchased since the last audit.")
	f.StringVar(&c.sales, "sales", "0", "Units sold since the last audit.")
	f.StringVar(&c.physical, "physical", "0", "Units physically counted on the shelf.")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if snap.Item(c.item) == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown item id %q (list ids with the items command)\n", c.item)
		return subcommands.ExitUsageError
	}

	in := inventory.EntryInput{ItemID: c.item}

	if c.date != "" {
		in.Date, err = inventory.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -d: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if c.open == "" {
		in.OpeningStock = snap.LatestStockFor(c.item)
	} else if in.OpeningStock, err = inventory.ParseQuantity(c.open); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -open: %v\n", err)
		return subcommands.ExitUsageError
	}
	if in.Purchase, err = inventory.ParseQuantity(c.purchase); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -purchase: %v\n", err)
		return subcommands.ExitUsageError
	}
	if in.Sales, err = inventory.ParseQuantity(c.sales); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -sales: %v\n", err)
		return subcommands.ExitUsageError
	}
	if in.PhysicalStock, err = inventory.ParseQuantity(c.physical); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -physical: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx, err := snap.Record(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := OpenStore().Save(snap); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(snap, tx))
	return subcommands.ExitSuccess
}
