package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"showcase/internal/domain"
	"showcase/internal/ui/logic"
)

const (
	// CardHeight is the number of rows a rendered card occupies
	CardHeight = 8
	// cardChrome is the horizontal space taken by border and padding
	cardChrome = 4
	// swatchRow is the card row holding the colour swatches
	swatchRow = 4
	// swatchWidth is the number of columns per swatch
	swatchWidth = 3
)

// CardRenderer handles product card rendering
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// Render draws one product card of the given total width
func (r *CardRenderer) Render(p domain.Product, color domain.ColorKey, width int, focused bool) string {
	inner := max(width-cardChrome, 1)

	lines := []string{
		r.styles.CardName.Render(runewidth.Truncate(p.Name, inner, "…")),
		r.styles.Price.Render(FormatPrice(p.Price)),
		"",
		r.renderSwatches(color),
		r.styles.Dim.Render(runewidth.Truncate(domain.VariantFor(color).Name, inner, "…")),
		r.RenderStars(p.PopularityScore),
	}

	style := r.styles.Card
	if focused {
		style = r.styles.CardFocused
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (r *CardRenderer) renderSwatches(active domain.ColorKey) string {
	var b strings.Builder
	for _, v := range domain.ColorVariants {
		dot := SwatchStyle(v).Render("●")
		if v.Key == active {
			b.WriteString("[" + dot + "]")
		} else {
			b.WriteString(" " + dot + " ")
		}
	}
	return b.String()
}

// RenderStars draws a five star rating followed by the numeric score
func (r *CardRenderer) RenderStars(score float64) string {
	full, half, empty := StarCounts(score)

	var b strings.Builder
	b.WriteString(r.styles.StarFull.Render(strings.Repeat("★", full)))
	if half {
		b.WriteString(r.styles.StarFull.Render("☆"))
	}
	b.WriteString(r.styles.StarEmpty.Render(strings.Repeat("★", empty)))
	b.WriteString(r.styles.Rating.Render(fmt.Sprintf(" %.1f/5", logic.StarRating(score))))
	return b.String()
}

// StarCounts splits a score into full stars, an optional half star and
// empty stars, always five in total
func StarCounts(score float64) (full int, half bool, empty int) {
	rating := logic.StarRating(score)
	full = int(math.Floor(rating))
	half = rating-float64(full) >= 0.5
	empty = 5 - full
	if half {
		empty--
	}
	return full, half, empty
}

// FormatPrice renders a price in dollars with two decimals
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// SwatchAt returns the colour whose swatch covers the card-local cell
func SwatchAt(col, row int) (domain.ColorKey, bool) {
	if row != swatchRow {
		return "", false
	}
	// border and left padding
	col -= 2
	if col < 0 {
		return "", false
	}
	i := col / swatchWidth
	if i >= len(domain.ColorVariants) {
		return "", false
	}
	return domain.ColorVariants[i].Key, true
}
