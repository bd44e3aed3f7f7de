package views

import (
	"fmt"
	"strings"

	"glimpse/internal/ui/viewmodels"
)

func (r *Renderer) renderHistory(page viewmodels.PageState) string {
	b := &strings.Builder{}
	b.WriteString(r.styles.Title.Render("Search history"))
	b.WriteString("\n\n")

	if len(page.History) == 0 {
		b.WriteString(r.styles.Dim.Render("No searches recorded yet."))
		return b.String()
	}

	for i, entry := range page.History {
		line := fmt.Sprintf("  %-30s %4d results  %s",
			truncate(entry.Query, 30), entry.Results, entry.SearchedAt)
		if entry.ClickedURL != "" {
			line += "  → " + truncate(entry.ClickedURL, 40)
		}
		if i == page.HistoryCursor {
			line = r.styles.SelectionBg.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("enter re-runs · d deletes entry · x clears all"))
	return b.String()
}
