package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"showcase/internal/domain"
	"showcase/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Layout         Layout
	Products       []domain.Product
	VisibleIndex   int
	FocusedIndex   int
	CanPrev        bool
	CanNext        bool
	Color          domain.ColorKey
	Loading        bool
	Spinner        string
	ShowScrollbar  bool
	ScrollPosition float64
	Dragging       bool
	Paginator      string
	StatusMessage  string
	StatusKind     state.StatusKind
	FilterQuery    string
	FilterInput    string
	InputActive    bool
	SortMode       string
	Stale          bool
	ShowHelp       bool
	HelpContent    string
	HelpOffset     int
	HelpModel      help.Model
	Keys           help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	popupRender *PopupRenderer
	scrollbar   *ScrollbarView
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles),
		popupRender: NewPopupRenderer(styles),
		scrollbar:   NewScrollbarView(styles),
	}
}

// Scrollbar returns the scrollbar view whose geometry the drag controller reads
func (r *Renderer) Scrollbar() *ScrollbarView {
	return r.scrollbar
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	if vs.ShowHelp {
		return r.popupRender.RenderPopup(vs.HelpContent, vs.HelpOffset, vs.Layout.Height, vs.Layout.Width)
	}

	content := &strings.Builder{}
	content.WriteString(r.renderTitle(vs))
	content.WriteString("\n")

	content.WriteString(r.renderStrip(vs))
	content.WriteString("\n\n")

	pad := strings.Repeat(" ", ArrowWidth)
	if vs.ShowScrollbar {
		content.WriteString(pad + r.scrollbar.Render(vs.ScrollPosition, vs.Dragging))
	}
	content.WriteString("\n")
	if vs.Paginator != "" && len(vs.Products) > 0 {
		content.WriteString(pad + vs.Paginator)
	}
	content.WriteString("\n\n")

	content.WriteString(r.renderStatus(vs))
	content.WriteString("\n")

	if vs.InputActive {
		content.WriteString(r.styles.Filter.Render(vs.FilterInput))
	} else if vs.Keys != nil {
		content.WriteString(vs.HelpModel.View(vs.Keys))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderTitle(vs ViewState) string {
	logo := r.styles.Title.Render("showcase")

	indicators := []string{}
	if vs.Loading {
		indicators = append(indicators, fmt.Sprintf("%s Loading", vs.Spinner))
	}
	if vs.SortMode != "" {
		indicators = append(indicators, "sort: "+vs.SortMode)
	}
	if vs.FilterQuery != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", vs.FilterQuery)))
	}
	if len(indicators) == 0 {
		return logo
	}

	right := r.styles.Dim.Render(strings.Join(indicators, " | "))
	termWidth := vs.Layout.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	// Title carries a bottom margin; pad only its first line
	logoWidth := lipgloss.Width(r.styles.Title.UnsetMarginBottom().Render("showcase"))
	padding := termWidth - 2*mainLeft - logoWidth - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	lines := strings.SplitN(logo, "\n", 2)
	lines[0] = lines[0] + strings.Repeat(" ", padding) + right
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderStrip(vs ViewState) string {
	l := vs.Layout
	if vs.Loading && len(vs.Products) == 0 {
		return r.centerInStrip(l, fmt.Sprintf("%s Loading products…", vs.Spinner))
	}
	if len(vs.Products) == 0 {
		msg := "No products available"
		if vs.FilterQuery != "" {
			msg = "No products match the filter"
		}
		return r.centerInStrip(l, r.styles.Dim.Render(msg))
	}

	cols := []string{r.renderArrow("‹", vs.CanPrev)}
	for slot := 0; slot < l.SlidesToShow; slot++ {
		i := vs.VisibleIndex + slot
		if slot > 0 {
			cols = append(cols, strings.Repeat(" ", cardGap))
		}
		if i < 0 || i >= len(vs.Products) {
			cols = append(cols, lipgloss.NewStyle().Width(l.CardWidth).Height(CardHeight).Render(""))
			continue
		}
		cols = append(cols, r.cardRender.Render(vs.Products[i], vs.Color, l.CardWidth, i == vs.FocusedIndex))
	}
	cols = append(cols, r.renderArrow("›", vs.CanNext))
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (r *Renderer) renderArrow(glyph string, enabled bool) string {
	style := r.styles.Arrow
	if !enabled {
		style = r.styles.ArrowDisabled
	}
	lines := make([]string, CardHeight)
	for i := range lines {
		lines[i] = strings.Repeat(" ", ArrowWidth)
	}
	lines[CardHeight/2] = " " + style.Render(glyph) + " "
	return strings.Join(lines, "\n")
}

func (r *Renderer) centerInStrip(l Layout, msg string) string {
	width := l.StripWidth + 2*ArrowWidth
	return lipgloss.Place(width, CardHeight, lipgloss.Center, lipgloss.Center, msg)
}

func (r *Renderer) renderStatus(vs ViewState) string {
	var parts []string
	if msg := vs.StatusMessage; msg != "" {
		switch vs.StatusKind {
		case state.StatusError:
			parts = append(parts, r.styles.StatusError.Render(msg))
		case state.StatusWarning:
			parts = append(parts, r.styles.StatusWarning.Render(msg))
		case state.StatusSuccess:
			parts = append(parts, r.styles.StatusSuccess.Render(msg))
		default:
			parts = append(parts, r.styles.Status.Render(msg))
		}
	}
	if vs.Stale {
		parts = append(parts, r.styles.StatusWarning.Render("offline: showing cached products"))
	}
	return strings.Join(parts, "  ")
}
