package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/starclub/inventory"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// NewAnalyst creates the inventory analyst expert. Its tools read the given
// snapshot; they never mutate it.
func NewAnalyst(snap *inventory.Snapshot) *Expert {
	lib := []Function{lowStockItems(snap), recentShortages(snap)}

	return &Expert{
		Name: "Analyst",
		Description: `The inventory analyst. It reads the stock-audit ledger and
		summarizes stock levels, shortages and purchase patterns.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You analyze inventory data for a small retail business and write a
			professional business summary.
			Focus on stock levels, shortages, and purchase patterns.
			Limit your answer to 3 concise bullet points.
			Use the available tools when you need details about low-stock items
			or recent shortages.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// lowStockItems lists catalog items currently below their minimum threshold.
func lowStockItems(snap *inventory.Snapshot) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "LowStockItems",
			Description: `LowStockItems lists every item whose current stock on hand is below its minimum threshold, with the current count and the threshold.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "One line per low-stock item: name, current stock, minimum threshold, unit.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var b strings.Builder
			for _, level := range snap.StockLevels() {
				if !level.Low {
					continue
				}
				fmt.Fprintf(&b, "%s: %s of %s minimum (%s)\n", level.Item.Name, level.Current, level.Item.MinStock, level.Item.Unit)
			}
			if b.Len() == 0 {
				b.WriteString("no items are below their minimum threshold")
			}
			return &genai.FunctionResponse{
				ID:       id,
				Name:     "LowStockItems",
				Response: map[string]any{"output": b.String()},
			}
		},
	}
}

// recentShortages lists the latest audit entries where inventory went missing.
func recentShortages(snap *inventory.Snapshot) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "RecentShortages",
			Description: `RecentShortages lists the most recent audit entries where the physical count came in below the system's expectation, most recent first.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "One line per shortage entry: date, item name, missing units.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			const limit = 10
			var b strings.Builder
			count := 0
			for _, tx := range snap.Entries(inventory.AcceptAll) {
				if !tx.Shortage.IsNegative() {
					continue
				}
				fmt.Fprintf(&b, "%s: %s missing %s\n", tx.Date, snap.ItemName(tx.ItemID), tx.Shortage.Abs())
				count++
				if count == limit {
					break
				}
			}
			if b.Len() == 0 {
				b.WriteString("no shortages on record")
			}
			return &genai.FunctionResponse{
				ID:       id,
				Name:     "RecentShortages",
				Response: map[string]any{"output": b.String()},
			}
		},
	}
}
