package teaui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/currency"
	"tableflip.dev/pedal/pkg/tui/theme"
)

// renderBike draws the bike details card shown next to the calendar.
func renderBike(th theme.CardTheme, b bike.Bike, code currency.Code, width int) string {
	row := func(label, value string) string {
		return th.Label.Render(fmt.Sprintf("%-9s", label)) + th.Value.Render(value)
	}
	lines := []string{
		th.Name.Render(b.Name),
		row("Type", b.Type),
		row("Size", fmt.Sprintf("%d", b.BodySize)),
		row("Max load", fmt.Sprintf("%d kg", b.MaxLoad)),
		row("Rating", th.Star.Render(stars(b.Ratings))+fmt.Sprintf(" %.1f", b.Ratings)),
		row("Price", currency.Format(b.Rate, code)+" / day"),
	}
	if b.IsRented {
		lines = append(lines, th.Label.Render("currently rented"))
	}
	if b.Description != "" {
		lines = append(lines, "", wordwrap.String(b.Description, width))
	}
	return strings.Join(lines, "\n")
}

func stars(rating float64) string {
	n := int(rating + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
