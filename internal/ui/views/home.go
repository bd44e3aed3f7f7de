package views

import (
	"strings"

	"glimpse/internal/ui/viewmodels"
)

func (r *Renderer) renderHome(page viewmodels.PageState) string {
	b := &strings.Builder{}

	if len(page.Trending) > 0 {
		b.WriteString(r.styles.Title.Render("Trending"))
		b.WriteString("\n")
		for i, q := range page.Trending {
			line := "  " + q
			if i == page.Selected {
				line = r.styles.SelectionBg.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(page.Recent) > 0 {
		b.WriteString(r.styles.Title.Render("Recent searches"))
		b.WriteString("\n")
		offset := len(page.Trending)
		for i, q := range page.Recent {
			line := "  " + q
			if offset+i == page.Selected {
				line = r.styles.SelectionBg.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if len(page.Trending) == 0 && len(page.Recent) == 0 {
		b.WriteString(r.styles.Dim.Render("Press / and start typing to search."))
	}
	return b.String()
}
