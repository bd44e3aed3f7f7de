package views

import (
	"fmt"
	"strings"

	"glimpse/internal/ui/viewmodels"
)

func (r *Renderer) renderResults(page viewmodels.PageState, state viewmodels.ViewState) string {
	b := &strings.Builder{}

	if page.Total > 0 {
		fmt.Fprintf(b, "%s\n\n", r.styles.Meta.Render(
			fmt.Sprintf("%d results for %q", page.Total, page.Query)))
	}

	if len(page.Rows) == 0 {
		if page.Loading {
			b.WriteString(r.styles.Dim.Render("Searching…"))
		} else {
			b.WriteString(r.styles.Dim.Render(fmt.Sprintf("No results for %q.", page.Query)))
		}
		return b.String()
	}

	for i, row := range page.Rows {
		title := r.styles.Title
		if i == page.Selected {
			title = r.styles.TitleSel
		}
		b.WriteString(title.Render(row.Title))
		b.WriteString("\n")
		b.WriteString(r.styles.URL.Render(row.URL))
		if row.Meta != "" {
			b.WriteString("  ")
			b.WriteString(r.styles.Meta.Render(row.Meta))
		}
		b.WriteString("\n")
		if row.Snippet != "" {
			b.WriteString(r.styles.Snippet.Render(row.Snippet))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if bar := r.renderPageBar(page); bar != "" {
		b.WriteString(bar)
	}
	return b.String()
}

func (r *Renderer) renderPageBar(page viewmodels.PageState) string {
	if len(page.PageBar) < 2 {
		return ""
	}
	parts := make([]string, 0, len(page.PageBar))
	for _, n := range page.PageBar {
		style := r.styles.PageNum
		if n == page.CurrentPage {
			style = r.styles.PageNumCur
		}
		parts = append(parts, style.Render(fmt.Sprintf("%d", n)))
	}
	return strings.Join(parts, "")
}
