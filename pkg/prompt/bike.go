// Package prompt asks for bikes and dates on the terminal when a command
// runs with --interactive.
package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/pedal/pkg/bike"
)

// SelectBike lets the user pick one of bikes. Rented bikes are listed but
// marked.
func SelectBike(in io.Reader, out io.Writer, bikes []bike.Bike) (bike.Bike, error) {
	if len(bikes) == 0 {
		return bike.Bike{}, fmt.Errorf("no bikes to choose from")
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Type | green }}{{ if .IsRented }} {{ \"rented\" | red }}{{ end }}",
		Inactive: "   {{ .Name }} {{ .Type | cyan }}{{ if .IsRented }} {{ \"rented\" | faint }}{{ end }}",
		Selected: "{{ .Name | bold }}",
		Details: `
--------- Bike ----------
{{ "Size:" | faint }}	{{ .BodySize }}
{{ "Max load:" | faint }}	{{ .MaxLoad }}
{{ "Rate:" | faint }}	{{ .Rate }}
{{ "Ratings:" | faint }}	{{ .Ratings }}
`,
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Bike",
		Items:     bikes,
		Templates: templates,
		Size:      10,
		Searcher:  bikeSearcher(bikes),
		Stdin:     io.NopCloser(in),
		Stdout:    nopCloser{out},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return bike.Bike{}, fmt.Errorf("prompt failed: %w", err)
	}
	return bikes[i], nil
}

func bikeSearcher(bikes []bike.Bike) func(string, int) bool {
	return func(input string, index int) bool {
		b := bikes[index]
		name := strings.Replace(strings.ToLower(b.Name+b.Type), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
