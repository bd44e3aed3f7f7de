package views

import (
	"fmt"
	"strings"

	"glimpse/internal/ui/viewmodels"
)

// SettingsRows is the fixed order of rows on the settings page. The model
// and the renderer agree on this order for cursor movement and editing.
var SettingsRows = []string{
	"Safe search",
	"Results per page",
	"Region",
	"Language",
	"Theme",
	"Open in new tab",
	"Show thumbnails",
}

func (r *Renderer) renderSettings(page viewmodels.PageState) string {
	s := page.Settings
	values := []string{
		s.SafeSearch,
		fmt.Sprintf("%d", s.ResultsPerPage),
		s.Region,
		s.Language,
		s.Theme,
		onOff(s.OpenInNewTab),
		onOff(s.ShowThumbnails),
	}

	b := &strings.Builder{}
	b.WriteString(r.styles.Title.Render("Settings"))
	b.WriteString("\n\n")
	for i, label := range SettingsRows {
		line := fmt.Sprintf("  %-18s %s", label, values[i])
		if i == page.SettingsCursor {
			line = r.styles.SelectionBg.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("enter/space cycles value · s saves · r resets to defaults"))
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
