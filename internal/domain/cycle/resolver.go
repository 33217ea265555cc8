// Package cycle maps calendar dates onto a repeating list of shifts.
//
// Day 0 of the cycle is the configured start date; every following day moves
// one slot forward and every preceding day one slot back, wrapping around the
// list in both directions. All arithmetic is done on whole calendar days, so
// daylight-saving changes and leap days never shift the result.
package cycle

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/entity"
)

// FloorMod returns offset mod n in [0, n). n must be positive.
func FloorMod(offset, n int) int {
	return ((offset % n) + n) % n
}

// DayOffset returns the signed number of calendar days from start to target
func DayOffset(target, start civil.Date) int {
	return target.DaysSince(start)
}

// Index returns the slot of target in a cycle of n shifts anchored at start
func Index(target, start civil.Date, n int) int {
	return FloorMod(DayOffset(target, start), n)
}

// Resolve returns the shift assigned to target. The second result is false
// when start is nil or shifts is empty.
func Resolve(target civil.Date, start *civil.Date, shifts []entity.ShiftType) (entity.ShiftType, bool) {
	if start == nil || len(shifts) == 0 {
		return entity.ShiftType{}, false
	}
	return shifts[Index(target, *start, len(shifts))], true
}

// ResolveTime resolves the calendar day t falls on in its own location;
// the time of day is ignored.
func ResolveTime(t time.Time, start *civil.Date, shifts []entity.ShiftType) (entity.ShiftType, bool) {
	return Resolve(civil.DateOf(t), start, shifts)
}

// Assign wraps Resolve into a DayAssignment
func Assign(date civil.Date, start *civil.Date, shifts []entity.ShiftType) entity.DayAssignment {
	shift, ok := Resolve(date, start, shifts)
	return entity.DayAssignment{
		Date:     date,
		Shift:    shift,
		Assigned: ok,
	}
}
