package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/pedal/pkg/bike"
	"tableflip.dev/pedal/pkg/datepicker"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// BikeSelectMsg is emitted when the user opens a bike from the list.
type BikeSelectMsg struct {
	Component ComponentID
	Bike      bike.Bike
}

// Describe renders the selection in a human-friendly format for logs.
func (m BikeSelectMsg) Describe() string {
	return fmt.Sprintf(`id:%d name:%q`, m.Bike.ID, m.Bike.Name)
}

// BikeSelectCmd wraps BikeSelectMsg into a tea.Cmd.
func BikeSelectCmd(component ComponentID, b bike.Bike) tea.Cmd {
	return func() tea.Msg {
		return BikeSelectMsg{Component: component, Bike: b}
	}
}

// RangeSelectedMsg carries a range proposed by a date picker. The owner of
// the bound value applies it; the picker never writes it back itself.
type RangeSelectedMsg struct {
	Component ComponentID
	Range     datepicker.Range
}

// Describe implements the logging helper.
func (m RangeSelectedMsg) Describe() string {
	return fmt.Sprintf(`start:%q end:%q`, m.Range.Start, m.Range.End)
}

// RangeSelectedCmd wraps RangeSelectedMsg into a tea.Cmd.
func RangeSelectedCmd(component ComponentID, r datepicker.Range) tea.Cmd {
	return func() tea.Msg {
		return RangeSelectedMsg{Component: component, Range: r}
	}
}

// QuoteLoadedMsg delivers the result of an amount request. Seq lets the
// pricing component drop responses for details that changed in the meantime.
type QuoteLoadedMsg struct {
	Component ComponentID
	Seq       int
	Details   bike.RentDetails
	Amount    bike.RentAmount
	Err       error
}

// Describe implements the logging helper.
func (m QuoteLoadedMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf(`seq:%d err:%q`, m.Seq, m.Err)
	}
	return fmt.Sprintf(`seq:%d total:%.2f`, m.Seq, m.Amount.TotalAmount)
}

// BookedMsg is emitted once a rental has been created.
type BookedMsg struct {
	Component ComponentID
	Rental    bike.BikeReturnDetails
}

// Describe implements the logging helper.
func (m BookedMsg) Describe() string {
	return fmt.Sprintf(`rental:%d bike:%d`, m.Rental.ID, m.Rental.BikeID)
}

// BookedCmd wraps BookedMsg into a tea.Cmd.
func BookedCmd(component ComponentID, rental bike.BikeReturnDetails) tea.Cmd {
	return func() tea.Msg {
		return BookedMsg{Component: component, Rental: rental}
	}
}

// BookmarkToggledMsg reports a bookmark change made from the UI.
type BookmarkToggledMsg struct {
	Component  ComponentID
	BikeID     int
	Bookmarked bool
	Err        error
}

// Describe implements the logging helper.
func (m BookmarkToggledMsg) Describe() string {
	return fmt.Sprintf(`bike:%d on:%t`, m.BikeID, m.Bookmarked)
}

// BackMsg asks the root to return to the previous screen.
type BackMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BackMsg) Describe() string { return string(m.Component) }

// BackCmd wraps BackMsg into a tea.Cmd.
func BackCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BackMsg{Component: component}
	}
}

// ErrorMsg surfaces a failure from an asynchronous command.
type ErrorMsg struct {
	Component ComponentID
	Err       error
}

// Describe implements the logging helper.
func (m ErrorMsg) Describe() string {
	return fmt.Sprintf(`err:%q`, m.Err)
}
