package rent

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/datepicker"
	"tableflip.dev/pedal/pkg/mockapi"
	"tableflip.dev/pedal/pkg/printers"
)

func TestRentTwiceReportsUnavailable(t *testing.T) {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	ts := httptest.NewServer(mockapi.New(mockapi.Options{Logger: quiet}).Handler())
	defer ts.Close()

	var out bytes.Buffer
	r := &Rent{
		Service: api.NewClient(ts.URL, "", api.WithLogger(quiet)),
		Details: bike.RentDetails{
			UserID:   1,
			BikeID:   3,
			DateFrom: datepicker.MustParseDate("2030-05-01"),
			DateTo:   datepicker.MustParseDate("2030-05-03"),
		},
		Printer: &printers.PrettyPrint{Out: &out},
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(out.String(), "Cargo Max") {
		t.Fatalf("expected the rented bike in output:\n%s", out.String())
	}

	err := r.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "already rented") {
		t.Fatalf("expected an unavailable error, got %v", err)
	}
}
