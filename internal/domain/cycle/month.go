package cycle

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/entity"
)

// GridCells is the size of a month grid: six Sunday-first weeks
const GridCells = 42

// MonthGrid lays out the month as six Sunday-first weeks, padding with the
// tail of the previous month and the head of the next one. Out-of-range
// months are normalized the way time.Date does (month 13 is next January).
func MonthGrid(year int, month time.Month) []entity.CalendarDay {
	first := civil.DateOf(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	lead := int(first.In(time.UTC).Weekday())

	days := make([]entity.CalendarDay, 0, GridCells)
	cursor := first.AddDays(-lead)
	for range GridCells {
		days = append(days, entity.CalendarDay{
			DayAssignment: entity.DayAssignment{Date: cursor},
			InMonth:       cursor.Year == first.Year && cursor.Month == first.Month,
		})
		cursor = cursor.AddDays(1)
	}
	return days
}

// ResolveMonth builds the month grid and resolves every in-month cell.
// Padding cells are left unassigned.
func ResolveMonth(year int, month time.Month, start *civil.Date, shifts []entity.ShiftType) []entity.CalendarDay {
	days := MonthGrid(year, month)
	for i := range days {
		if !days[i].InMonth {
			continue
		}
		days[i].DayAssignment = Assign(days[i].Date, start, shifts)
	}
	return days
}
