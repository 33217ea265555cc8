package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/diegoclair/shift-cycle-bot/internal/domain"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShiftService(t *testing.T) *shiftService {
	t.Helper()

	store, _ := newTestStore(t)
	s := newShiftService(store, time.UTC, zerolog.Nop())

	var mu sync.Mutex
	next := 0
	s.newID = func() string {
		mu.Lock()
		defer mu.Unlock()
		next++
		return fmt.Sprintf("shift-%d", next)
	}
	return s
}

func Test_shiftService_Today(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	s := newShiftService(nil, loc, zerolog.Nop())
	s.now = func() time.Time {
		return time.Date(2024, time.March, 10, 23, 30, 0, 0, time.UTC)
	}

	assert.Equal(t, civil.Date{Year: 2024, Month: time.March, Day: 11}, s.Today())
}

func Test_shiftService_ResolveDayAssignment(t *testing.T) {
	ctx := context.Background()
	s := newTestShiftService(t)
	target := civil.Date{Year: 2024, Month: time.January, Day: 13}

	got, err := s.ResolveDayAssignment(ctx, target)
	require.NoError(t, err)
	assert.False(t, got.Assigned, "no start date means unassigned")
	assert.Equal(t, target, got.Date)

	require.NoError(t, s.SetCycleStart(ctx, civil.Date{Year: 2024, Month: time.January, Day: 10}))

	tests := []struct {
		name string
		date civil.Date
		want string
	}{
		{name: "Should start the cycle on the start date", date: civil.Date{Year: 2024, Month: time.January, Day: 10}, want: domain.ShiftDay},
		{name: "Should move to night the next day", date: civil.Date{Year: 2024, Month: time.January, Day: 11}, want: domain.ShiftNight},
		{name: "Should wrap after a full cycle", date: target, want: domain.ShiftDay},
		{name: "Should go backwards before the start date", date: civil.Date{Year: 2024, Month: time.January, Day: 9}, want: domain.ShiftRest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ResolveDayAssignment(ctx, tt.date)
			require.NoError(t, err)
			require.True(t, got.Assigned)
			assert.Equal(t, tt.want, got.Shift.ID)
		})
	}

	require.NoError(t, s.ClearCycleStart(ctx))
	got, err = s.ResolveDayAssignment(ctx, target)
	require.NoError(t, err)
	assert.False(t, got.Assigned)
}

func Test_shiftService_SetCycleStart_InvalidDate(t *testing.T) {
	s := newTestShiftService(t)

	err := s.SetCycleStart(context.Background(), civil.Date{Year: 2024, Month: time.April, Day: 31})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func Test_shiftService_MonthView(t *testing.T) {
	ctx := context.Background()
	s := newTestShiftService(t)
	require.NoError(t, s.SetCycleStart(ctx, civil.Date{Year: 2024, Month: time.February, Day: 1}))

	days, err := s.MonthView(ctx, 2024, time.February)
	require.NoError(t, err)
	require.Len(t, days, 42)

	defaults := entity.DefaultShifts()
	for _, d := range days {
		if !d.InMonth {
			assert.False(t, d.Assigned)
			continue
		}
		require.True(t, d.Assigned)
		assert.Equal(t, defaults[(d.Date.Day-1)%3], d.Shift)
	}
}

func colorPtr(c entity.Color) *entity.Color {
	return &c
}

func Test_shiftService_AddShift(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		label string
		color *entity.Color
		want  entity.ShiftType
	}{
		{
			name:  "Should use the given label and color",
			label: "  Training ",
			color: colorPtr(0xFFF44336),
			want:  entity.ShiftType{ID: "shift-1", Label: "Training", Color: 0xFFF44336},
		},
		{
			name:  "Should keep an explicit transparent color",
			label: "Hidden",
			color: colorPtr(0x00000000),
			want:  entity.ShiftType{ID: "shift-1", Label: "Hidden", Color: 0},
		},
		{
			name: "Should fall back to the new shift defaults",
			want: entity.ShiftType{ID: "shift-1", Label: domain.NewShiftLabel, Color: entity.Color(domain.NewShiftColor)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestShiftService(t)

			got, err := s.AddShift(ctx, tt.label, tt.color)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			shifts, err := s.store.ShiftList(ctx)
			require.NoError(t, err)
			require.Len(t, shifts, 4)
			assert.Equal(t, tt.want, shifts[3])
		})
	}
}

func Test_shiftService_AddShift_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := newTestShiftService(t)

	const n = 10
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddShift(ctx, fmt.Sprintf("extra %d", i), nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	shifts, err := s.store.ShiftList(ctx)
	require.NoError(t, err)
	assert.Len(t, shifts, 3+n, "no add may be lost")
}

func Test_shiftService_EditShift(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		edit    func(s *shiftService) error
		wantErr error
		check   func(t *testing.T, shifts []entity.ShiftType)
	}{
		{
			name: "Should rename a shift",
			edit: func(s *shiftService) error { return s.RenameShift(ctx, domain.ShiftNight, "Graveyard") },
			check: func(t *testing.T, shifts []entity.ShiftType) {
				assert.Equal(t, "Graveyard", shifts[1].Label)
				assert.Equal(t, entity.DefaultShifts()[1].Color, shifts[1].Color)
			},
		},
		{
			name:    "Should reject an empty label",
			edit:    func(s *shiftService) error { return s.RenameShift(ctx, domain.ShiftNight, "   ") },
			wantErr: domain.ErrInvalidShiftList,
		},
		{
			name: "Should reject a label that is too long",
			edit: func(s *shiftService) error {
				return s.RenameShift(ctx, domain.ShiftNight, strings.Repeat("a", domain.MaxLabelLength+1))
			},
			wantErr: domain.ErrInvalidShiftList,
		},
		{
			name: "Should recolor a shift",
			edit: func(s *shiftService) error { return s.RecolorShift(ctx, domain.ShiftRest, 0xFF000000) },
			check: func(t *testing.T, shifts []entity.ShiftType) {
				assert.Equal(t, entity.Color(0xFF000000), shifts[2].Color)
			},
		},
		{
			name:    "Should report unknown ids on rename",
			edit:    func(s *shiftService) error { return s.RenameShift(ctx, "ghost", "Boo") },
			wantErr: domain.ErrShiftNotFound,
		},
		{
			name:    "Should report unknown ids on recolor",
			edit:    func(s *shiftService) error { return s.RecolorShift(ctx, "ghost", 0xFF000000) },
			wantErr: domain.ErrShiftNotFound,
		},
		{
			name: "Should remove a shift and keep the order",
			edit: func(s *shiftService) error { return s.RemoveShift(ctx, domain.ShiftNight) },
			check: func(t *testing.T, shifts []entity.ShiftType) {
				require.Len(t, shifts, 2)
				assert.Equal(t, domain.ShiftDay, shifts[0].ID)
				assert.Equal(t, domain.ShiftRest, shifts[1].ID)
			},
		},
		{
			name:    "Should report unknown ids on remove",
			edit:    func(s *shiftService) error { return s.RemoveShift(ctx, "ghost") },
			wantErr: domain.ErrShiftNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestShiftService(t)

			err := tt.edit(s)
			shifts, listErr := s.store.ShiftList(ctx)
			require.NoError(t, listErr)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, entity.DefaultShifts(), shifts, "failed edits must not change the list")
				return
			}

			require.NoError(t, err)
			tt.check(t, shifts)
		})
	}
}

func Test_shiftService_RemoveLastShift(t *testing.T) {
	ctx := context.Background()
	s := newTestShiftService(t)
	require.NoError(t, s.SetCycleStart(ctx, civil.Date{Year: 2024, Month: time.January, Day: 1}))

	for _, shift := range entity.DefaultShifts() {
		require.NoError(t, s.RemoveShift(ctx, shift.ID))
	}

	shifts, err := s.store.ShiftList(ctx)
	require.NoError(t, err)
	assert.Empty(t, shifts, "an emptied list must not come back as defaults")

	got, err := s.ResolveDayAssignment(ctx, civil.Date{Year: 2024, Month: time.January, Day: 1})
	require.NoError(t, err)
	assert.False(t, got.Assigned)

	legend, err := s.Legend(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultShifts(), legend)
}

func Test_shiftService_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("Should restore the default shifts only", func(t *testing.T) {
		s := newTestShiftService(t)
		start := civil.Date{Year: 2024, Month: time.January, Day: 1}
		require.NoError(t, s.SetCycleStart(ctx, start))
		require.NoError(t, s.SetShifts(ctx, []entity.ShiftType{{ID: "x", Label: "X"}}))

		require.NoError(t, s.ResetShifts(ctx))

		cfg, err := s.Config(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultShifts(), cfg.Shifts)
		require.NotNil(t, cfg.StartDate)
		assert.Equal(t, start, *cfg.StartDate)
	})

	t.Run("Should clear everything in one change", func(t *testing.T) {
		s := newTestShiftService(t)
		require.NoError(t, s.SetCycleStart(ctx, civil.Date{Year: 2024, Month: time.January, Day: 1}))
		require.NoError(t, s.SetShifts(ctx, []entity.ShiftType{{ID: "x", Label: "X"}}))

		subCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		updates, err := s.SubscribeConfig(subCtx)
		require.NoError(t, err)
		receive(t, updates)

		require.NoError(t, s.ResetAll(ctx))

		cfg := receive(t, updates)
		assert.Nil(t, cfg.StartDate)
		assert.Equal(t, entity.DefaultShifts(), cfg.Shifts)
	})
}
