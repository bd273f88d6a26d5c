package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type itemsCmd struct{}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list catalog items and categories with their ids" }
func (*itemsCmd) Usage() string {
	return `sci items

  Lists the raw catalog with ids, for use with the -i and -category
  flags of the other commands.
`
}

func (*itemsCmd) SetFlags(f *flag.FlagSet) {}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString("# Catalog\n\n")
	b.WriteString("## Items\n\n")
	b.WriteString("| ID | Name | Category | Min | Unit |\n")
	b.WriteString("|---|---|---|---:|---|\n")
	for _, item := range snap.Items {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			item.ID, item.Name, snap.CategoryName(item.CategoryID), item.MinStock, item.Unit)
	}
	b.WriteString("\n## Categories\n\n")
	b.WriteString("| ID | Name |\n")
	b.WriteString("|---|---|\n")
	for _, category := range snap.Categories {
		fmt.Fprintf(&b, "| %s | %s |\n", category.ID, category.Name)
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
