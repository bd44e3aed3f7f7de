package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Logo        lipgloss.Style
	Surface     lipgloss.Style
	SurfaceCur  lipgloss.Style
	InputBox    lipgloss.Style
	Dropdown    lipgloss.Style
	DropItem    lipgloss.Style
	DropItemSel lipgloss.Style
	DropPrefix  lipgloss.Style
	Title       lipgloss.Style
	TitleSel    lipgloss.Style
	URL         lipgloss.Style
	Snippet     lipgloss.Style
	Meta        lipgloss.Style
	Dim         lipgloss.Style
	PageNum     lipgloss.Style
	PageNumCur  lipgloss.Style
	ErrorBox    lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	Help        lipgloss.Style
	SelectionBg lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Logo: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Surface:    lipgloss.NewStyle().Faint(true),
		SurfaceCur: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		DropItem:    lipgloss.NewStyle(),
		DropItemSel: lipgloss.NewStyle().Background(lipgloss.Color("237")).Bold(true),
		DropPrefix:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		TitleSel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75")).
			Background(lipgloss.Color("237")),
		URL:     lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		Snippet: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:     lipgloss.NewStyle().Faint(true),
		PageNum: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		PageNumCur: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("99")).
			Padding(0, 1),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("203")).
			Padding(0, 1),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:        lipgloss.NewStyle().Faint(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("237")),
	}
}
