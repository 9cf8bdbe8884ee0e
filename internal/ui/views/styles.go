package views

import (
	"github.com/charmbracelet/lipgloss"

	"showcase/internal/domain"
)

// StarColor is the fill colour of rating stars
const StarColor = "#f6d5a8"

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	InfoBox       lipgloss.Style
	Card          lipgloss.Style
	CardFocused   lipgloss.Style
	CardName      lipgloss.Style
	Price         lipgloss.Style
	Arrow         lipgloss.Style
	ArrowDisabled lipgloss.Style
	Track         lipgloss.Style
	Thumb         lipgloss.Style
	ThumbDragging lipgloss.Style
	StarFull      lipgloss.Style
	StarEmpty     lipgloss.Style
	Rating        lipgloss.Style
	Dot           lipgloss.Style
	DotInactive   lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		CardFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardName:      lipgloss.NewStyle().Bold(true),
		Price:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Arrow:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		ArrowDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Track:         lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Thumb:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ThumbDragging: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		StarFull:      lipgloss.NewStyle().Foreground(lipgloss.Color(StarColor)),
		StarEmpty:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Rating:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dot:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DotInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// SwatchStyle returns the style that paints a colour variant swatch
func SwatchStyle(v domain.ColorVariant) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(v.Hex))
}
