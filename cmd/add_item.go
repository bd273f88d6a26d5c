package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/starclub/inventory"
)

type addItemCmd struct {
	name     string
	category string
	min      string
	unit     string
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add a new product to the catalog" }
func (*addItemCmd) Usage() string {
	return `sci add-item -name <name> [-category <category_id>] [-min <quantity>] [-unit <unit>]

  Adds a product to the catalog. The minimum stock sets the low-stock
  threshold used by the registry and the dashboard.
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name.")
	f.StringVar(&c.category, "category", "", "Category id (see the items command).")
	f.StringVar(&c.min, "min", "0", "Minimum stock before the item is flagged low.")
	f.StringVar(&c.unit, "unit", "pcs", "Display unit (pkts, bags, kg, ...).")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	minStock, err := inventory.ParseQuantity(c.min)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -min: %v\n", err)
		return subcommands.ExitUsageError
	}

	snap, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	item, err := snap.AddItem(c.name, c.category, minStock, c.unit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := OpenStore().Save(snap); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added item %q with id %s\n", item.Name, item.ID)
	return subcommands.ExitSuccess
}
