package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/starclub/inventory"
	"github.com/starclub/inventory/agent"
	"github.com/starclub/inventory/renderer"
	"google.golang.org/genai"
)

type dashboardCmd struct {
	ai bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display inventory statistics and stock levels" }
func (*dashboardCmd) Usage() string {
	return `sci dashboard [-ai]

  Displays the aggregate statistics and the per-item stock levels.
  With -ai, appends a short AI summary of the inventory situation;
  the summary degrades to a substitute message when unavailable.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.ai, "ai", false, "Include an AI summary of the inventory.")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	insight := ""
	if c.ai {
		insight = c.summarize(ctx, snap)
	}

	printMarkdown(renderer.Dashboard(snap, insight))
	return subcommands.ExitSuccess
}

func (c *dashboardCmd) summarize(ctx context.Context, snap *inventory.Snapshot) string {
	if !agent.Online() {
		return agent.Offline
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return agent.Unavailable
	}
	return agent.Summarize(ctx, client, snap)
}
