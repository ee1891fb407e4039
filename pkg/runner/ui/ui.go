// Package ui runs the interactive booking TUI.
package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bookmarks"
	"tableflip.dev/pedal/pkg/currency"
	"tableflip.dev/pedal/pkg/logging"
	"tableflip.dev/pedal/pkg/screensize"
	teaui "tableflip.dev/pedal/pkg/tui/app"
)

var ErrNotTerminal = errors.New("ui: stdout is not a terminal")

type UI struct {
	Service     api.Service
	Bookmarks   bookmarks.Store
	UserID      int
	Currency    currency.Code
	Breakpoints screensize.Breakpoints
	GridLength  int

	// LogFile receives logs while the UI owns the terminal.
	LogFile  string
	LogLevel string
	// ShowRedirect offers a way back to the list after booking.
	ShowRedirect bool
}

func (u *UI) Do(ctx context.Context) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}
	if u.LogFile != "" {
		closeLog, err := logging.SetupFile(u.LogLevel, u.LogFile)
		if err != nil {
			return err
		}
		defer func() { _ = closeLog() }()
	}
	logrus.WithField("user", u.UserID).Info("starting booking ui")

	return teaui.Run(ctx, teaui.Options{
		Service:      u.Service,
		Bookmarks:    u.Bookmarks,
		UserID:       u.UserID,
		Currency:     u.Currency,
		Breakpoints:  u.Breakpoints,
		GridLength:   u.GridLength,
		ShowRedirect: u.ShowRedirect,
		Logger:       logrus.StandardLogger(),
	})
}
