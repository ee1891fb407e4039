// Package teaui hosts the Bubble Tea program for the pedal booking TUI.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"tableflip.dev/pedal/pkg/api"
	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/bookmarks"
	"tableflip.dev/pedal/pkg/currency"
	"tableflip.dev/pedal/pkg/datepicker"
	"tableflip.dev/pedal/pkg/screensize"
	"tableflip.dev/pedal/pkg/tui/components/bikelist"
	"tableflip.dev/pedal/pkg/tui/components/calendar"
	"tableflip.dev/pedal/pkg/tui/components/help"
	"tableflip.dev/pedal/pkg/tui/components/overview"
	"tableflip.dev/pedal/pkg/tui/components/panel"
	"tableflip.dev/pedal/pkg/tui/components/pricing"
	"tableflip.dev/pedal/pkg/tui/components/success"
	"tableflip.dev/pedal/pkg/tui/events"
	"tableflip.dev/pedal/pkg/tui/theme"
)

type screen int

const (
	screenList screen = iota
	screenDetails
	screenBooking
	screenSuccess
)

func (s screen) title() string {
	switch s {
	case screenDetails:
		return "Details"
	case screenBooking:
		return "Booking"
	case screenSuccess:
		return "Booked"
	}
	return "Bikes"
}

const (
	listID     events.ComponentID = "bike-list"
	calendarID events.ComponentID = "booking-calendar"
	pricingID  events.ComponentID = "pricing"
	overviewID events.ComponentID = "overview"
	successID  events.ComponentID = "success"

	loadTimeout = 10 * time.Second
)

// Options configures the booking UI.
type Options struct {
	Service api.Service
	// Bookmarks is optional; without it bookmarking is disabled.
	Bookmarks    bookmarks.Store
	UserID       int
	Currency     currency.Code
	Breakpoints  screensize.Breakpoints
	GridLength   int
	ShowRedirect bool
	Now          func() time.Time
	Logger       logrus.FieldLogger
}

// Model contains UI state.
type Model struct {
	opts   Options
	ctx    context.Context
	cancel context.CancelFunc
	log    logrus.FieldLogger

	theme    theme.Theme
	observer *screensize.Observer
	width    int
	height   int

	screen screen
	status string

	list     *bikelist.Model
	bike     bike.Bike
	value    datepicker.Range
	calendar *calendar.Model
	modal    bool
	pricing  *pricing.Model
	overview *overview.Model
	success  *success.Model

	help        *help.Model
	helpVisible bool

	watchCh     <-chan bookmarks.Event
	watchCancel context.CancelFunc
}

type bikesLoadedMsg struct {
	bikes []bike.Bike
	err   error
}

type bikeLoadedMsg struct {
	bike bike.Bike
	err  error
}

type watchStartedMsg struct {
	ch     <-chan bookmarks.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event bookmarks.Event
}

type watchStoppedMsg struct{}

// New constructs the root model.
func New(opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Currency == "" {
		opts.Currency = currency.Default
	}
	if len(opts.Breakpoints.Steps) == 0 {
		opts.Breakpoints = screensize.DefaultBreakpoints()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	th := theme.Default()
	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		opts:     opts,
		ctx:      ctx,
		cancel:   cancel,
		log:      opts.Logger.WithField("component", "tui"),
		theme:    th,
		observer: screensize.NewObserver(opts.Breakpoints, 0),
		list:     bikelist.NewModel(listID, opts.Bookmarks, opts.Currency),
		pricing:  pricing.New(pricingID, opts.Service, opts.Currency, th.Card),
		overview: overview.New(overviewID, opts.Service, opts.Currency, th.Card),
		success:  success.New(successID, th.Card, opts.ShowRedirect),
		status:   "Loading bikes…",
	}
}

// Run launches the interactive TUI program. The date picker subscription and
// bookmark watch are released even if the program exits abnormally.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Close releases the viewport subscription, the bookmark watch and any
// in-flight work.
func (m *Model) Close() {
	m.closeCalendar()
	m.stopWatch()
	m.cancel()
}

// Observer exposes the viewport observer fed by window size messages.
func (m *Model) Observer() *screensize.Observer { return m.observer }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.refreshBookmarks()
	return tea.Batch(m.loadBikes(), startWatchCmd(m.ctx, m.opts.Bookmarks))
}

func (m *Model) loadBikes() tea.Cmd {
	svc := m.opts.Service
	ctx := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, loadTimeout)
		defer cancel()
		bikes, err := svc.Bikes(ctx)
		return bikesLoadedMsg{bikes: bikes, err: err}
	}
}

func (m *Model) loadBike(id int) tea.Cmd {
	svc := m.opts.Service
	ctx := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, loadTimeout)
		defer cancel()
		b, err := svc.Bike(ctx, id)
		return bikeLoadedMsg{bike: b, err: err}
	}
}

func (m *Model) refreshBookmarks() {
	if m.opts.Bookmarks == nil {
		return
	}
	m.list.SetBookmarked(bookmarks.IDs(m.ctx, m.opts.Bookmarks))
}

func startWatchCmd(parent context.Context, marks bookmarks.Store) tea.Cmd {
	if marks == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := marks.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update routes Bubble Tea messages to the active screen.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.noteEvent(msg)

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.observer.Resize(msg.Width)
		if !m.observer.Size().Mobile {
			m.modal = false
		}
		m.layout()
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case bikesLoadedMsg:
		if msg.err != nil {
			m.setError("load bikes", msg.err)
			break
		}
		m.list.SetBikes(msg.bikes)
		m.status = fmt.Sprintf("%d bikes", len(msg.bikes))
	case bikeLoadedMsg:
		if msg.err != nil {
			m.setError("load bike", msg.err)
			break
		}
		if msg.bike.ID == m.bike.ID {
			m.bike = msg.bike
		}

	case watchStartedMsg:
		if msg.err != nil {
			m.setError("watch bookmarks", msg.err)
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.refreshBookmarks()
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.opts.Bookmarks))
		}

	case events.BikeSelectMsg:
		cmds = append(cmds, m.openDetails(msg.Bike))
	case events.BookmarkToggledMsg:
		if msg.Err != nil {
			m.setError("bookmark", msg.Err)
			break
		}
		m.list.Update(msg)
		if msg.Bookmarked {
			m.status = fmt.Sprintf("Bookmarked bike %d", msg.BikeID)
		} else {
			m.status = fmt.Sprintf("Removed bookmark for bike %d", msg.BikeID)
		}
	case events.RangeSelectedMsg:
		if msg.Component == calendarID {
			cmds = append(cmds, m.applyRange(msg.Range))
		}
	case events.QuoteLoadedMsg:
		m.pricing.Update(msg)
	case events.ErrorMsg:
		m.overview.Update(msg)
	case events.BookedMsg:
		m.overview.Update(msg)
		rental := msg.Rental
		if rental.Bike.ID == 0 {
			rental.Bike = m.bike
		}
		m.success.SetRental(rental)
		m.closeCalendar()
		m.screen = screenSuccess
		m.status = fmt.Sprintf("Booking %d confirmed", rental.ID)
		cmds = append(cmds, m.loadBikes())
	case events.BackMsg:
		m.backToList()
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}
	if m.helpVisible {
		if key == "?" || key == "esc" || key == "q" {
			m.helpVisible = false
			return nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return cmd
	}
	if key == "?" && !m.capturingText() {
		m.toggleHelp()
		return nil
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenList:
		if key == "q" && !m.capturingText() {
			return tea.Quit
		}
		m.list, cmd = m.list.Update(msg)
	case screenDetails:
		cmd = m.handleDetailsKey(msg)
	case screenBooking:
		if key == "esc" && !m.overview.Submitting() {
			m.screen = screenDetails
			return nil
		}
		m.overview, cmd = m.overview.Update(msg)
	case screenSuccess:
		if key == "q" {
			return tea.Quit
		}
		m.success, cmd = m.success.Update(msg)
	}
	return cmd
}

func (m *Model) handleDetailsKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	mobile := m.observer.Size().Mobile
	if mobile && !m.modal {
		switch key {
		case "esc":
			m.backToList()
		case "d", "enter":
			m.modal = true
		case "r":
			m.openBooking()
		}
		return nil
	}
	switch key {
	case "esc":
		if m.modal {
			m.modal = false
			return nil
		}
		m.backToList()
		return nil
	case "r":
		if !m.modal {
			m.openBooking()
			return nil
		}
	}
	var cmd tea.Cmd
	m.calendar, cmd = m.calendar.Update(msg)
	return cmd
}

// capturingText reports whether the list filter owns the keyboard.
func (m *Model) capturingText() bool {
	return m.screen == screenList && m.list.Filtering()
}

func (m *Model) openDetails(b bike.Bike) tea.Cmd {
	m.closeCalendar()
	m.bike = b
	m.value = datepicker.Range{}
	picker, err := datepicker.New(datepicker.Options{
		Length: m.opts.GridLength,
		Now:    m.opts.Now(),
	})
	if err != nil {
		m.setError("calendar", err)
		return nil
	}
	m.calendar = calendar.New(calendarID, m.theme.Picker, picker)
	m.calendar.Activate(m.observer)
	m.modal = false
	m.pricing.SetDetails(bike.RentDetails{})
	m.screen = screenDetails
	m.status = "Pick your dates"
	m.layout()
	return m.loadBike(b.ID)
}

// applyRange stores a proposed range as the bound value, writes it back to
// the picker and requests a new quote.
func (m *Model) applyRange(r datepicker.Range) tea.Cmd {
	m.value = r
	if m.calendar != nil {
		if err := m.calendar.Picker().SetValue(r); err != nil {
			m.setError("dates", err)
			return nil
		}
	}
	m.modal = false
	m.status = fmt.Sprintf("%d days selected", bike.Days(r.Start, r.End))
	return m.pricing.SetDetails(bike.NewRentDetails(m.opts.UserID, m.bike.ID, r))
}

func (m *Model) openBooking() {
	if !m.value.IsComplete() {
		m.status = "Pick a start and an end date first"
		return
	}
	amount, ok := m.pricing.Amount()
	if !ok {
		m.status = "Waiting for the price"
		return
	}
	m.overview.SetBooking(m.bike, bike.NewRentDetails(m.opts.UserID, m.bike.ID, m.value), amount)
	m.screen = screenBooking
	m.status = "Review your booking"
}

func (m *Model) backToList() {
	m.closeCalendar()
	m.value = datepicker.Range{}
	m.modal = false
	m.screen = screenList
	m.status = ""
}

func (m *Model) closeCalendar() {
	if m.calendar != nil {
		m.calendar.Deactivate()
	}
}

func (m *Model) toggleHelp() {
	m.helpVisible = !m.helpVisible
	if m.helpVisible {
		if m.help == nil {
			m.help = help.New(m.width, m.bodyHeight())
		} else {
			m.help.SetSize(m.width, m.bodyHeight())
		}
	}
}

func (m *Model) setError(op string, err error) {
	m.status = fmt.Sprintf("ERR: %s: %v", op, err)
	m.log.WithError(err).Warn(op)
}

type describer interface {
	Describe() string
}

func (m *Model) noteEvent(msg tea.Msg) {
	d, ok := msg.(describer)
	if !ok {
		return
	}
	m.log.WithField("event", fmt.Sprintf("%T", msg)).Debug(d.Describe())
}

func (m *Model) bodyHeight() int {
	return max(m.height-2, 1)
}

func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.list.SetSize(m.width, m.bodyHeight())
	if m.calendar != nil {
		m.calendar.SetSize(m.width, m.bodyHeight())
	}
	if m.help != nil {
		m.help.SetSize(m.width, m.bodyHeight())
	}
}

// View renders the active screen between a title bar and a status footer.
func (m *Model) View() (string, *tea.Cursor) {
	header := m.theme.Panel.Title.Render("pedal · " + m.screen.title())

	var body string
	switch {
	case m.helpVisible && m.help != nil:
		body, _ = m.help.View()
	case m.screen == screenList:
		body = m.list.View()
	case m.screen == screenDetails:
		body = m.detailsView()
	case m.screen == screenBooking:
		body = m.overview.View()
	case m.screen == screenSuccess:
		body = m.success.View()
	}

	footer := m.theme.Footer.Help.Render(m.hints())
	if m.status != "" {
		style := m.theme.Footer.Status
		if strings.HasPrefix(m.status, "ERR:") {
			style = m.theme.Footer.Error
		}
		footer = style.Render(m.status) + "  " + footer
	}
	return strings.Join([]string{header, body, footer}, "\n"), nil
}

func (m *Model) detailsView() string {
	card := renderBike(m.theme.Card, m.bike, m.opts.Currency, m.cardWidth())
	if m.calendar == nil {
		return card
	}
	if m.observer.Size().Mobile {
		if m.modal {
			modal := panel.New(m.theme.Modal)
			modal.SetContent("Select dates", m.calendar.View())
			modal.SetActions("c confirm • esc close")
			return modal.Place(m.width, m.bodyHeight())
		}
		dates := "not selected"
		if m.value.IsComplete() {
			dates = m.value.Start.String() + " → " + m.value.End.String()
		}
		return strings.Join([]string{
			card,
			"",
			m.theme.Card.Label.Render("Dates   ") + m.theme.Card.Value.Render(dates),
			"",
			m.pricing.View(),
		}, "\n")
	}
	right := lipgloss.JoinVertical(lipgloss.Left, m.calendar.View(), "", m.pricing.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, card, "    ", right)
}

func (m *Model) cardWidth() int {
	if m.width <= 0 {
		return 40
	}
	if m.observer.Size().Mobile {
		return max(m.width-2, 20)
	}
	return max(m.width/2-4, 30)
}

func (m *Model) hints() string {
	switch m.screen {
	case screenDetails:
		if m.observer.Size().Mobile && !m.modal {
			return "d dates • r book • esc back • ? help"
		}
		if m.modal {
			return "enter pick • c confirm • [ ] month • esc close"
		}
		return "enter pick • [ ] month • r book • esc back • ? help"
	case screenBooking:
		return "enter book • esc back"
	case screenSuccess:
		if m.opts.ShowRedirect {
			return "enter bikes • q quit"
		}
		return "q quit"
	}
	return "enter open • b bookmark • / filter • ? help • q quit"
}
