package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/starclub/inventory/renderer"
)

type inventoryCmd struct{}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "display the live inventory registry" }
func (*inventoryCmd) Usage() string {
	return `sci inventory

  Displays every catalog item with its current stock on hand, flagging
  items below their minimum threshold and items whose latest audit found
  inventory missing.
`
}

func (*inventoryCmd) SetFlags(f *flag.FlagSet) {}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Registry(snap))
	return subcommands.ExitSuccess
}
