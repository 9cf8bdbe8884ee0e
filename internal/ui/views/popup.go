package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centres the popup content in a width x height screen.
// Content taller than the screen is cut from offset on.
func (pr *PopupRenderer) RenderPopup(popupContent string, offset, height, width int) string {
	styled := pr.styles.InfoBox.Render(popupContent)

	// keep a small margin
	maxH := height - 2
	if maxH > 0 && lipgloss.Height(styled) > maxH {
		styled = pr.styles.InfoBox.Render(scrollLines(popupContent, offset, maxH-4))
	}

	if width <= 0 || height <= 0 {
		return styled
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styled)
}

// scrollLines returns at most n lines of s starting at offset
func scrollLines(s string, offset, n int) string {
	lines := strings.Split(s, "\n")
	n = max(n, 1)
	offset = min(max(offset, 0), max(len(lines)-n, 0))
	end := min(offset+n, len(lines))
	return strings.Join(lines[offset:end], "\n")
}
