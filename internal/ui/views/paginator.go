package views

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
)

// NewPaginator creates the dot line under the scrollbar
func NewPaginator(styles *Styles) paginator.Model {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = styles.Dot.Render("•")
	p.InactiveDot = styles.DotInactive.Render("◦")
	p.KeyMap = paginator.KeyMap{}
	return p
}

// RenderPaginator draws page of pages, switching to numerals when the dots
// would not fit in width
func RenderPaginator(p paginator.Model, page, pages, width int) string {
	if pages <= 1 {
		return ""
	}
	p.SetTotalPages(pages)
	p.Page = min(max(page, 0), pages-1)

	out := p.View()
	if lipgloss.Width(out) > width {
		p.Type = paginator.Arabic
		out = p.View()
	}
	return out
}
