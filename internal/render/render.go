// Package render formats reports and stats for the terminal. It emits
// strings only; all decisions about what goes in them were made upstream.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/auphere/placesync/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
)

// Header renders the banner shown before a sync pass.
func Header(city string, typeCount int) string {
	text := fmt.Sprintf("%s\n%s",
		titleStyle.Render(fmt.Sprintf("🗺️  placesync — %s", city)),
		dimStyle.Render(fmt.Sprintf("%d place types queued", typeCount)))
	return panelStyle.Render(text)
}

// OutcomeLine renders the one-line live progress entry for a finished type.
func OutcomeLine(o model.SyncOutcome) string {
	if o.Succeeded {
		return successStyle.Render(fmt.Sprintf("✅ %s %s: %d new, %d duplicates (%.1fs)",
			o.Icon, o.Label, o.Created, o.Skipped, o.Duration.Seconds()))
	}
	return failStyle.Render(fmt.Sprintf("❌ %s %s: %s", o.Icon, o.Label, o.Error))
}

// ResultsTable renders the per-type outcome table in log order.
func ResultsTable(outcomes []model.SyncOutcome) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Type", "Status", "New", "Duplicates", "Requests", "Duration")
	for _, o := range outcomes {
		if o.Succeeded {
			t.Row(
				fmt.Sprintf("%s %s", o.Icon, o.Label),
				"✅",
				fmt.Sprintf("%d", o.Created),
				fmt.Sprintf("%d", o.Skipped),
				fmt.Sprintf("%d", o.APIRequests),
				fmt.Sprintf("%.1fs", o.Duration.Seconds()),
			)
		} else {
			t.Row(
				fmt.Sprintf("%s %s", o.Icon, o.Label),
				"❌",
				"-", "-", "-",
				fmt.Sprintf("%.1fs", o.Duration.Seconds()),
			)
		}
	}
	return t.Render()
}

// StatsTable renders one snapshot under a title, types first, then cities,
// then the average rating when present. Map order is not stable, so rows
// are sorted by key.
func StatsTable(title string, snap *model.StatsSnapshot) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Metric", "Count")
	for _, k := range sortedKeys(snap.PlacesByType) {
		t.Row(k, fmt.Sprintf("%d", snap.PlacesByType[k]))
	}
	for _, k := range sortedKeys(snap.PlacesByCity) {
		t.Row("📍 "+k, fmt.Sprintf("%d", snap.PlacesByCity[k]))
	}
	if snap.AverageRating != nil {
		t.Row("⭐ Average rating", fmt.Sprintf("%.2f", *snap.AverageRating))
	}
	return titleStyle.Render(title) + "\n" + t.Render()
}

// TypesTable renders the full catalog grouped by category.
func TypesTable(types []model.PlaceType) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Type", "Category", "Cell", "Radius")
	for _, pt := range types {
		t.Row(
			fmt.Sprintf("%s %s", pt.Icon, pt.ID),
			pt.Category,
			fmt.Sprintf("%.1f km", pt.CellSizeKm),
			fmt.Sprintf("%d m", pt.RadiusM),
		)
	}
	return t.Render()
}

// Summary renders the closing panel with run totals and the cost estimate.
func Summary(rep *model.RunReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render("✨ Sync pass complete"))
	fmt.Fprintf(&b, "Run:           %s\n", rep.RunID)
	fmt.Fprintf(&b, "New places:    %d\n", rep.Totals.Created)
	fmt.Fprintf(&b, "Duplicates:    %d\n", rep.Totals.Skipped)
	fmt.Fprintf(&b, "API requests:  %d\n", rep.Totals.APIRequests)
	if n := rep.FailedCount(); n > 0 {
		fmt.Fprintf(&b, "Failed types:  %s\n", failStyle.Render(fmt.Sprintf("%d", n)))
	}
	d := rep.Totals.Duration
	fmt.Fprintf(&b, "Duration:      %.1fs (%.1f min)\n", d.Seconds(), d.Minutes())
	fmt.Fprintf(&b, "Est. cost:     $%.2f USD", rep.Totals.EstimatedCostUSD)
	return panelStyle.Render(b.String())
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
