// Package agent produces best-effort AI summaries of the inventory ledger.
//
// The summary is a convenience on top of the data path, never part of it: any
// failure (no connectivity, missing key, model error, timeout) resolves to a
// substitute message, and no ledger operation waits on it.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/starclub/inventory"
	"google.golang.org/genai"
)

const (
	// Offline is shown when no API key is configured.
	Offline = "AI insights are unavailable offline."
	// Unavailable is shown when the summary call fails for any reason.
	Unavailable = "Unable to load AI insights at this time."
)

// summaryTimeout bounds the whole summary exchange, including tool calls.
const summaryTimeout = 30 * time.Second

// Online reports whether an API key is configured. Without one the client
// cannot reach the service, which is the CLI equivalent of being offline.
func Online() bool {
	return os.Getenv("GEMINI_API_KEY") != "" || os.Getenv("GOOGLE_API_KEY") != ""
}

// Summarize asks the analyst for a short natural-language summary of the
// dashboard aggregate. It always returns a displayable string.
func Summarize(ctx context.Context, client *genai.Client, snap *inventory.Snapshot) string {
	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()

	data, err := json.Marshal(snap.Stats())
	if err != nil {
		return Unavailable
	}

	analyst := NewAnalyst(snap)
	if err := analyst.Start(ctx, client); err != nil {
		return Unavailable
	}

	prompt := fmt.Sprintf("Analyze this inventory data and provide a professional business summary.\n\nData: %s", data)
	content, err := analyst.Ask(ctx, &genai.Part{Text: prompt})
	if err != nil || len(content.Parts) == 0 || content.Parts[0].Text == "" {
		return Unavailable
	}
	return content.Parts[0].Text
}
