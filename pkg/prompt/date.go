package prompt

import (
	"fmt"
	"io"

	"github.com/manifoldco/promptui"

	"tableflip.dev/pedal/pkg/datepicker"
)

// Range asks for a start and an end date. Neither may fall before today and
// the end may not come before the start.
func Range(in io.Reader, out io.Writer, today datepicker.Date) (datepicker.Range, error) {
	from, err := Date(in, out, "From", today)
	if err != nil {
		return datepicker.Range{}, err
	}
	to, err := Date(in, out, "To", from)
	if err != nil {
		return datepicker.Range{}, err
	}
	return datepicker.Range{Start: from, End: to}, nil
}

// Date asks for a single date no earlier than min.
func Date(in io.Reader, out io.Writer, label string, min datepicker.Date) (datepicker.Date, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} : ",
		Valid:   "{{ . | green }} : ",
		Invalid: "{{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s [%s]", label, min),
		Templates: templates,
		Validate:  validateDate(min),
		Stdin:     io.NopCloser(in),
		Stdout:    nopCloser{out},
	}

	result, err := prompt.Run()
	if err != nil {
		return datepicker.Date{}, fmt.Errorf("prompt failed: %w", err)
	}
	if result == "" {
		return min, nil
	}
	return datepicker.ParseDate(result)
}

// validateDate accepts an empty answer (meaning min) or a date on or after
// min.
func validateDate(min datepicker.Date) promptui.ValidateFunc {
	return func(input string) error {
		if input == "" {
			return nil
		}
		d, err := datepicker.ParseDate(input)
		if err != nil {
			return err
		}
		if d.Before(min) {
			return fmt.Errorf("%s is before %s", d, min)
		}
		return nil
	}
}
