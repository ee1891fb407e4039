// Package printers renders pedal data for the command line.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/currency"
)

type PrettyPrint struct {
	Out      io.Writer
	Currency currency.Code
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) code() currency.Code {
	if pp.Currency == "" {
		return currency.Default
	}
	return pp.Currency
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// JSON writes v indented.
func (pp *PrettyPrint) JSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}

// Bikes prints the catalog as a table; bookmarked bikes get a star.
func (pp *PrettyPrint) Bikes(bikes []bike.Bike, bookmarked map[int]bool) {
	if len(bikes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	star := color.New(color.FgHiYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow("", bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Type"), bold.Sprint("Size"), bold.Sprint("Per day"), bold.Sprint("Rating"))
	for _, b := range bikes {
		mark := " "
		if bookmarked[b.ID] {
			mark = star.Sprint("★")
		}
		name := b.Name
		if b.IsRented {
			name = faint.Sprintf("%s (rented)", b.Name)
		}
		tbl.AddRow(mark, b.ID, name, b.Type, b.BodySize, currency.Format(b.Rate, pp.code()), fmt.Sprintf("%.1f", b.Ratings))
	}
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Quote prints the price breakdown for a rental request.
func (pp *PrettyPrint) Quote(b bike.Bike, details bike.RentDetails, amount bike.RentAmount) {
	pp.Title(b.Name)
	pp.summary(details)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Subtotal", currency.Format(amount.RentAmount, pp.code()))
	tbl.AddRow("Service fee", currency.Format(amount.Fee, pp.code()))
	tbl.AddRow(color.New(color.Bold).Sprint("Total"), color.New(color.Bold).Sprint(currency.Format(amount.TotalAmount, pp.code())))
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Rental prints a booking confirmation.
func (pp *PrettyPrint) Rental(ret bike.BikeReturnDetails) {
	ok := color.New(color.FgGreen, color.Bold)
	_, _ = ok.Fprintf(pp.out(), "Booked %s (%s)\n", ret.Bike.Name, ret.Bike.Type)
	pp.summary(bike.RentDetails{UserID: ret.UserID, BikeID: ret.BikeID, DateFrom: ret.DateFrom, DateTo: ret.DateTo})
	_, _ = color.New(color.Faint).Fprintf(pp.out(), "rental #%d\n", ret.ID)
}

func (pp *PrettyPrint) summary(details bike.RentDetails) {
	days := details.Days()
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	i := color.New(color.Italic)
	_, _ = i.Fprintf(pp.out(), "%s → %s, %d %s\n", details.DateFrom, details.DateTo, days, unit)
}

// Error prints err without failing the command.
func (pp *PrettyPrint) Error(err error) {
	r := color.New(color.FgRed)
	_, _ = r.Fprintln(pp.out(), strings.TrimSpace(err.Error()))
}
