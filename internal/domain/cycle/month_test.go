package cycle

import (
	"testing"
	"time"

	"github.com/diegoclair/shift-cycle-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name        string
		year        int
		month       time.Month
		wantFirst   string
		wantLast    string
		wantInMonth int
	}{
		{
			name:        "Should pad February 2024 starting on Thursday",
			year:        2024,
			month:       time.February,
			wantFirst:   "2024-01-28",
			wantLast:    "2024-03-09",
			wantInMonth: 29,
		},
		{
			name:        "Should start on the first when month begins on Sunday",
			year:        2024,
			month:       time.September,
			wantFirst:   "2024-09-01",
			wantLast:    "2024-10-12",
			wantInMonth: 30,
		},
		{
			name:        "Should normalize month 13 into next January",
			year:        2024,
			month:       13,
			wantFirst:   "2024-12-29",
			wantLast:    "2025-02-08",
			wantInMonth: 31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := MonthGrid(tt.year, tt.month)
			require.Len(t, grid, GridCells)

			assert.Equal(t, tt.wantFirst, grid[0].Date.String())
			assert.Equal(t, tt.wantLast, grid[GridCells-1].Date.String())
			assert.Equal(t, time.Sunday, grid[0].Date.In(time.UTC).Weekday())

			inMonth := 0
			for i, d := range grid {
				if d.InMonth {
					inMonth++
				}
				assert.False(t, d.Assigned)
				if i > 0 {
					assert.Equal(t, 1, d.Date.DaysSince(grid[i-1].Date))
				}
			}
			assert.Equal(t, tt.wantInMonth, inMonth)
		})
	}
}

func TestResolveMonth(t *testing.T) {
	start := date(2024, time.February, 1)
	shifts := []entity.ShiftType{day, night, rest}

	grid := ResolveMonth(2024, time.February, &start, shifts)
	require.Len(t, grid, GridCells)

	for _, cell := range grid {
		if !cell.InMonth {
			assert.False(t, cell.Assigned, cell.Date.String())
			continue
		}
		require.True(t, cell.Assigned, cell.Date.String())
		assert.Equal(t, shifts[(cell.Date.Day-1)%3], cell.Shift, cell.Date.String())
	}

	empty := ResolveMonth(2024, time.February, nil, shifts)
	for _, cell := range empty {
		assert.False(t, cell.Assigned)
	}
}
