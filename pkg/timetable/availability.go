// Package timetable formulates weekly school timetabling instances as
// constraint models and decodes the solver's verdict into per-lesson slots.
package timetable

import (
	"fmt"
	"io"
)

const (
	// MaxDays is the largest supported number of days per week.
	MaxDays = 7
	// MaxPeriodsPerDay is bounded by the width of the per-day bitmask.
	MaxPeriodsPerDay = 32
)

// Availability is a rectangular grid of free/busy flags addressed by
// (day, period), backed by one bitmask per day: bit p of day d is set when
// period p of day d is free. Out-of-range indices are programming errors and
// panic; they are never clamped.
type Availability struct {
	days          int
	periodsPerDay int
	buffer        []uint32
}

// NewAvailability creates a grid with every period marked busy.
func NewAvailability(days, periodsPerDay int) *Availability {
	if days < 1 || days > MaxDays {
		panic(fmt.Sprintf("days out of range: %v", days))
	}
	if periodsPerDay < 1 || periodsPerDay > MaxPeriodsPerDay {
		panic(fmt.Sprintf("periods per day out of range: %v", periodsPerDay))
	}

	return &Availability{
		days:          days,
		periodsPerDay: periodsPerDay,
		buffer:        make([]uint32, days),
	}
}

// NewFullAvailability creates a grid with every period marked free.
func NewFullAvailability(days, periodsPerDay int) *Availability {
	availability := NewAvailability(days, periodsPerDay)
	for day := range days {
		availability.SetDay(day, true)
	}
	return availability
}

func (a *Availability) Days() int {
	return a.days
}

func (a *Availability) PeriodsPerDay() int {
	return a.periodsPerDay
}

// Get reports whether the slot is free.
func (a *Availability) Get(day, period int) bool {
	a.checkSlot(day, period)
	return a.buffer[day]&(1<<period) != 0
}

// Set marks a single slot free or busy.
func (a *Availability) Set(day, period int, val bool) {
	a.checkSlot(day, period)
	mask := uint32(1) << period
	if val {
		a.buffer[day] |= mask
	} else {
		a.buffer[day] &^= mask
	}
}

// Toggle flips a single slot.
func (a *Availability) Toggle(day, period int) {
	a.checkSlot(day, period)
	a.buffer[day] ^= 1 << period
}

// SetDay marks an entire day free or busy.
func (a *Availability) SetDay(day int, val bool) {
	a.checkDay(day)
	if val {
		a.buffer[day] = a.dayMask()
	} else {
		a.buffer[day] = 0
	}
}

// ToggleDay flips every period of a day.
func (a *Availability) ToggleDay(day int) {
	a.checkDay(day)
	a.buffer[day] ^= a.dayMask()
}

// GetDay exposes the raw bitmask of a day so that callers can intersect masks
// directly.
func (a *Availability) GetDay(day int) uint32 {
	a.checkDay(day)
	return a.buffer[day]
}

// Clone returns an independent copy of the grid.
func (a *Availability) Clone() *Availability {
	clone := NewAvailability(a.days, a.periodsPerDay)
	copy(clone.buffer, a.buffer)
	return clone
}

// Print dumps the grid one day per line, periods left to right.
func (a *Availability) Print(w io.Writer) {
	for day := range a.days {
		fmt.Fprintf(w, "Day %v: ", day)
		for period := range a.periodsPerDay {
			if a.Get(day, period) {
				fmt.Fprint(w, "1 ")
			} else {
				fmt.Fprint(w, "0 ")
			}
		}
		fmt.Fprintln(w)
	}
}

// dayMask is the all-ones mask of width periodsPerDay.
func (a *Availability) dayMask() uint32 {
	return uint32(1)<<a.periodsPerDay - 1
}

func (a *Availability) checkDay(day int) {
	if day < 0 || day >= a.days {
		panic(fmt.Sprintf("day index out of range: %v", day))
	}
}

func (a *Availability) checkSlot(day, period int) {
	a.checkDay(day)
	if period < 0 || period >= a.periodsPerDay {
		panic(fmt.Sprintf("period index out of range: %v", period))
	}
}
