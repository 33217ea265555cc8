package entity

import (
	"slices"

	"cloud.google.com/go/civil"
)

// CycleConfig is a snapshot of everything the resolver needs.
// A nil StartDate means no cycle has been configured.
type CycleConfig struct {
	StartDate *civil.Date
	Shifts    []ShiftType
}

// Clone returns a deep copy so snapshots can be handed to several subscribers
func (c CycleConfig) Clone() CycleConfig {
	out := CycleConfig{Shifts: slices.Clone(c.Shifts)}
	if c.StartDate != nil {
		d := *c.StartDate
		out.StartDate = &d
	}
	return out
}

// DayAssignment is the shift resolved for a date. Assigned is false when no
// cycle start date is set or the shift list is empty.
type DayAssignment struct {
	Date     civil.Date
	Shift    ShiftType
	Assigned bool
}

// CalendarDay is one cell of a month grid
type CalendarDay struct {
	DayAssignment
	InMonth bool
}
