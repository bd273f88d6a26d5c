package renderer

import (
	"github.com/starclub/inventory"
)

type dashboardLevel struct {
	Name    string
	Current string
	Min     string
	Status  string
}

type dashboardData struct {
	Stats   inventory.Stats
	Levels  []dashboardLevel
	Insight string
}

// Dashboard renders the stats cards, the stock level distribution and the
// optional AI insight block. Pass an empty insight to skip that section.
func Dashboard(snap *inventory.Snapshot, insight string) string {
	data := dashboardData{
		Stats:   snap.Stats(),
		Insight: insight,
	}
	for _, level := range snap.StockLevels() {
		data.Levels = append(data.Levels, dashboardLevel{
			Name:    level.Item.Name,
			Current: level.Current.String(),
			Min:     level.Item.MinStock.String(),
			Status:  levelStatus(level),
		})
	}

	partials := map[string]string{
		"dashboard_levels": "dashboard_levels.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, data)
}

func levelStatus(level inventory.StockLevel) string {
	switch {
	case level.Low:
		return "LOW STOCK"
	case level.Shortage:
		return "SHORTAGE"
	default:
		return "OK"
	}
}
