package views

import (
	"fmt"
	"strings"

	"glimpse/internal/ui/viewmodels"
)

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// surfaceTabs maps paths to the tab bar entries.
var surfaceTabs = []struct {
	label string
	path  string
}{
	{"Web", "/search"},
	{"Images", "/images"},
	{"Videos", "/videos"},
	{"News", "/news"},
}

// Render produces the complete view
func (r *Renderer) Render(state viewmodels.ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderHeader(state))
	content.WriteString("\n")

	if state.Dropdown.Open {
		content.WriteString(r.renderDropdown(state.Dropdown, state.Width))
		content.WriteString("\n")
	}

	content.WriteString(r.renderBody(state))

	content.WriteString("\n")
	content.WriteString(r.renderFooter(state))

	return content.String()
}

func (r *Renderer) renderHeader(state viewmodels.ViewState) string {
	logo := r.styles.Logo.Render("glimpse")

	tabs := make([]string, 0, len(surfaceTabs))
	for _, tab := range surfaceTabs {
		style := r.styles.Surface
		if strings.HasPrefix(state.Path, tab.path) {
			style = r.styles.SurfaceCur
		}
		tabs = append(tabs, style.Render(tab.label))
	}

	header := logo + "  " + strings.Join(tabs, " · ")
	input := r.styles.InputBox.Width(max(20, state.Width-4)).Render(state.InputView)

	return header + "\n" + input
}

func (r *Renderer) renderDropdown(d viewmodels.DropdownState, width int) string {
	lines := make([]string, 0, len(d.Items))
	for i, item := range d.Items {
		label := item.Text
		if item.Prefix != "" {
			label = r.styles.DropPrefix.Render(item.Prefix) + " " + item.Text
		}
		line := fmt.Sprintf("%s %s", item.Icon, label)
		if i == d.Highlighted {
			line = r.styles.DropItemSel.Render(line)
		} else {
			line = r.styles.DropItem.Render(line)
		}
		lines = append(lines, line)
	}
	return r.styles.Dropdown.Width(max(20, width-4)).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderBody(state viewmodels.ViewState) string {
	page := state.Page

	if page.Err != "" {
		return r.renderErrorPanel(page.Err, state.Width)
	}

	switch page.Kind {
	case viewmodels.KindHome:
		return r.renderHome(page)
	case viewmodels.KindResults:
		return r.renderResults(page, state)
	case viewmodels.KindImages:
		return r.renderImages(page, state)
	case viewmodels.KindSettings:
		return r.renderSettings(page)
	case viewmodels.KindHistory:
		return r.renderHistory(page)
	default:
		return r.styles.Dim.Render("Nothing here. Press / to search.")
	}
}

// renderErrorPanel renders the inline failure panel with the raw error
// text. The page stays interactive; there is no retry.
func (r *Renderer) renderErrorPanel(errText string, width int) string {
	body := "Request failed\n" + errText
	return r.styles.ErrorBox.Width(max(20, width-4)).Render(body)
}

func (r *Renderer) renderFooter(state viewmodels.ViewState) string {
	parts := []string{}
	if state.SpinnerView != "" && state.Page.Loading {
		parts = append(parts, state.SpinnerView)
	}
	if state.Page.ActiveFilters > 0 {
		parts = append(parts, r.styles.Filter.Render(
			fmt.Sprintf("[%d filter(s): %s · c clears]", state.Page.ActiveFilters, state.Page.FilterSummary)))
	}
	if state.Status != "" {
		parts = append(parts, r.styles.Status.Render(state.Status))
	}

	footer := strings.Join(parts, "  ")
	if state.ShowHelpBar && state.HelpView != "" {
		if footer != "" {
			footer += "\n"
		}
		footer += r.styles.Help.Render(state.HelpView)
	}
	return footer
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
