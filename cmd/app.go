// Package cmd implements the CLI application to manage the club inventory.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/starclub/inventory"
)

// Commands lists all subcommands in registration order. A main package
// registers them on a subcommands.Commander and Executes the selected one.
var Commands = []subcommands.Command{
	&addItemCmd{},
	&addCategoryCmd{},
	&recordCmd{},
	&inventoryCmd{},
	&dashboardCmd{},
	&reportCmd{},
	&txCmd{},
	&itemsCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("file", "inventory.json", "Path to the inventory snapshot file (JSON format)")

// OpenStore returns the store bound to the app snapshot file.
func OpenStore() *inventory.Store {
	return inventory.NewStore(*snapshotFile)
}

// LoadSnapshot loads the app snapshot, seeding a starter one when the file
// does not exist yet.
func LoadSnapshot() (*inventory.Snapshot, error) {
	return OpenStore().Load()
}

// printMarkdown renders markdown to the terminal with glamour styling,
// falling back to the raw text when rendering fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
