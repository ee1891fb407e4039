// Package screensize classifies the terminal width into layout breakpoints
// and fans resize notifications out to interested components.
package screensize

import (
	"sort"
	"sync"
)

// Class names a width breakpoint.
type Class string

const (
	Small       Class = "sm"
	Medium      Class = "md"
	Large       Class = "lg"
	ExtraLarge  Class = "xl"
	ExtraLarge2 Class = "xxl"
)

// Breakpoint is the minimum width, in columns, for a Class.
type Breakpoint struct {
	Class     Class
	Threshold int
}

// Breakpoints configures classification.
type Breakpoints struct {
	Steps []Breakpoint
	// MobileMaxWidth is the widest terminal still treated as mobile.
	MobileMaxWidth int
}

// DefaultBreakpoints are the column thresholds used by the booking UI.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		Steps: []Breakpoint{
			{Class: Small, Threshold: 40},
			{Class: Medium, Threshold: 60},
			{Class: Large, Threshold: 80},
			{Class: ExtraLarge, Threshold: 100},
			{Class: ExtraLarge2, Threshold: 120},
		},
		MobileMaxWidth: 100,
	}
}

// Size is the derived classification of a width.
type Size struct {
	Width  int
	Class  Class
	Mobile bool
}

// Classify returns the largest class whose threshold fits width, falling
// back to Small.
func (b Breakpoints) Classify(width int) Class {
	steps := append([]Breakpoint(nil), b.Steps...)
	sort.Slice(steps, func(i, j int) bool { return steps[i].Threshold > steps[j].Threshold })
	for _, s := range steps {
		if width >= s.Threshold {
			return s.Class
		}
	}
	return Small
}

// IsMobile reports whether width gets the narrow interaction policy.
func (b Breakpoints) IsMobile(width int) bool {
	return width <= b.MobileMaxWidth
}

// Measure derives the Size for width.
func (b Breakpoints) Measure(width int) Size {
	return Size{Width: width, Class: b.Classify(width), Mobile: b.IsMobile(width)}
}

// Observer tracks the current width and notifies subscribers on change.
type Observer struct {
	mu          sync.Mutex
	breakpoints Breakpoints
	width       int
	nextID      int
	listeners   map[int]func(Size)
}

// NewObserver returns an observer seeded with width.
func NewObserver(b Breakpoints, width int) *Observer {
	return &Observer{
		breakpoints: b,
		width:       width,
		listeners:   make(map[int]func(Size)),
	}
}

// Size returns the current classification.
func (o *Observer) Size() Size {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.breakpoints.Measure(o.width)
}

// Subscribe registers fn, calls it once with the current size, and returns
// a function that removes it. The returned function may be called more than
// once.
func (o *Observer) Subscribe(fn func(Size)) (unsubscribe func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	size := o.breakpoints.Measure(o.width)
	o.mu.Unlock()

	fn(size)

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.listeners, id)
			o.mu.Unlock()
		})
	}
}

// Subscribers returns the number of registered listeners.
func (o *Observer) Subscribers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners)
}

// Resize records a new width and notifies every listener. Listeners run
// outside the lock so they may subscribe or unsubscribe.
func (o *Observer) Resize(width int) {
	o.mu.Lock()
	o.width = width
	size := o.breakpoints.Measure(width)
	ids := make([]int, 0, len(o.listeners))
	for id := range o.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Size), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, o.listeners[id])
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(size)
	}
}
