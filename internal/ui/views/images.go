package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"glimpse/internal/ui/viewmodels"
)

const imageCellWidth = 28

// ImageColumns returns the grid column count for the given terminal
// width. The model uses it to translate selection movement into rows.
func ImageColumns(width int) int {
	return max(1, (width-2)/imageCellWidth)
}

func (r *Renderer) renderImages(page viewmodels.PageState, state viewmodels.ViewState) string {
	b := &strings.Builder{}

	if len(page.Images) == 0 {
		if page.Loading {
			b.WriteString(r.styles.Dim.Render("Searching…"))
		} else {
			b.WriteString(r.styles.Dim.Render(fmt.Sprintf("No images for %q.", page.Query)))
		}
		return b.String()
	}

	cols := ImageColumns(state.Width)
	cellStyle := r.styles.Dim.Width(imageCellWidth - 2)

	row := make([]string, 0, cols)
	for i, cell := range page.Images {
		selected := i == page.Selected
		row = append(row, r.renderImageCell(cell, cellStyle, selected))
		if len(row) == cols {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
			b.WriteString("\n")
			row = row[:0]
		}
	}
	if len(row) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}

	switch {
	case page.LoadingMore:
		b.WriteString(r.styles.Dim.Render("Loading more…"))
	case page.HasMore:
		b.WriteString(r.styles.Dim.Render("Scroll for more"))
	default:
		b.WriteString(r.styles.Dim.Render("End of results"))
	}
	return b.String()
}

func (r *Renderer) renderImageCell(cell viewmodels.ImageCell, style lipgloss.Style, selected bool) string {
	title := r.styles.Title
	if selected {
		title = r.styles.TitleSel
	}
	meta := cell.SourceDomain
	if cell.Dimensions != "" {
		meta = cell.SourceDomain + " " + cell.Dimensions
	}
	body := title.Render(truncate(cell.Title, imageCellWidth-4)) + "\n" +
		r.styles.Meta.Render(truncate(meta, imageCellWidth-4))
	return style.Render(body)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
