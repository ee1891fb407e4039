package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Panel  PanelTheme
	Modal  PanelTheme
	Picker PickerTheme
	Card   CardTheme
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// PickerTheme styles the date picker grid.
type PickerTheme struct {
	Header    lipgloss.Style
	Weekday   lipgloss.Style
	Day       lipgloss.Style
	Endpoint  lipgloss.Style
	Between   []lipgloss.Style
	Disabled  lipgloss.Style
	DiffMonth lipgloss.Style
	Today     lipgloss.Style
	Cursor    lipgloss.Style
	NavOn     lipgloss.Style
	NavOff    lipgloss.Style
	Pending   lipgloss.Style
}

// CardTheme styles bike and booking summaries.
type CardTheme struct {
	Name   lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Price  lipgloss.Style
	Star   lipgloss.Style
	Button lipgloss.Style
}

const (
	rangeFrom = "#5A56E0"
	rangeTo   = "#EE6FF8"
)

// BetweenSteps is the number of shades used for in-range days.
const BetweenSteps = 7

// Gradient blends from one hex color to another in n steps.
func Gradient(from, to string, n int) []colorful.Color {
	a, err := colorful.Hex(from)
	if err != nil {
		return nil
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return nil
	}
	if n < 2 {
		return []colorful.Color{a}
	}
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = a.BlendLab(b, float64(i)/float64(n-1)).Clamped()
	}
	return out
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	between := make([]lipgloss.Style, 0, BetweenSteps)
	for _, c := range Gradient(rangeFrom, rangeTo, BetweenSteps) {
		between = append(between, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(c.Hex())))
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Panel: PanelTheme{
			Frame: frame,
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Modal: PanelTheme{
			Frame: frame.BorderForeground(lipgloss.Color(rangeFrom)),
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(rangeTo)),
			Body:  lipgloss.NewStyle(),
		},
		Picker: PickerTheme{
			Header:    lipgloss.NewStyle().Bold(true),
			Weekday:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Day:       lipgloss.NewStyle(),
			Endpoint:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(rangeFrom)),
			Between:   between,
			Disabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Strikethrough(true),
			DiffMonth: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Today:     lipgloss.NewStyle().Underline(true),
			Cursor:    lipgloss.NewStyle().Reverse(true),
			NavOn:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			NavOff:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Pending:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
		},
		Card: CardTheme{
			Name:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Value:  lipgloss.NewStyle(),
			Price:  lipgloss.NewStyle().Bold(true),
			Star:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			Button: lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color(rangeFrom)),
		},
	}
}
