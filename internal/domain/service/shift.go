package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/diegoclair/shift-cycle-bot/internal/domain"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/contract"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/cycle"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type shiftService struct {
	store *ConfigStore
	loc   *time.Location
	log   zerolog.Logger

	now   func() time.Time
	newID func() string
}

func newShiftService(store *ConfigStore, loc *time.Location, log zerolog.Logger) *shiftService {
	return &shiftService{
		store: store,
		loc:   loc,
		log:   log.With().Str("component", "shift_service").Logger(),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

var _ contract.ShiftService = (*shiftService)(nil)

// Today returns the current calendar day in the configured location
func (s *shiftService) Today() civil.Date {
	return civil.DateOf(s.now().In(s.loc))
}

func (s *shiftService) ResolveDayAssignment(ctx context.Context, date civil.Date) (entity.DayAssignment, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return entity.DayAssignment{}, fmt.Errorf("failed to load cycle configuration: %w", err)
	}
	return cycle.Assign(date, cfg.StartDate, cfg.Shifts), nil
}

func (s *shiftService) MonthView(ctx context.Context, year int, month time.Month) ([]entity.CalendarDay, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cycle configuration: %w", err)
	}
	return cycle.ResolveMonth(year, month, cfg.StartDate, cfg.Shifts), nil
}

func (s *shiftService) Config(ctx context.Context) (entity.CycleConfig, error) {
	return s.store.Load(ctx)
}

func (s *shiftService) SubscribeConfig(ctx context.Context) (<-chan entity.CycleConfig, error) {
	return s.store.Subscribe(ctx)
}

// Legend lists the shifts to show next to a calendar. An empty cycle still
// shows the default shifts so the legend is never blank.
func (s *shiftService) Legend(ctx context.Context) ([]entity.ShiftType, error) {
	shifts, err := s.store.ShiftList(ctx)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return entity.DefaultShifts(), nil
	}
	return shifts, nil
}

func (s *shiftService) SetCycleStart(ctx context.Context, date civil.Date) error {
	if err := s.store.SetCycleStartDate(ctx, date); err != nil {
		return err
	}
	s.log.Info().Str("start_date", date.String()).Msg("cycle start date updated")
	return nil
}

func (s *shiftService) ClearCycleStart(ctx context.Context) error {
	if err := s.store.ClearCycleStartDate(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("cycle start date cleared")
	return nil
}

func (s *shiftService) SetShifts(ctx context.Context, shifts []entity.ShiftType) error {
	if err := s.store.SetShiftList(ctx, shifts); err != nil {
		return err
	}
	s.log.Info().Int("shifts", len(shifts)).Msg("shift list replaced")
	return nil
}

// AddShift appends a new shift with a fresh id. A blank label or a nil color
// falls back to the new-shift defaults.
func (s *shiftService) AddShift(ctx context.Context, label string, color *entity.Color) (entity.ShiftType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = domain.NewShiftLabel
	}

	shift := entity.ShiftType{ID: s.newID(), Label: label, Color: entity.Color(domain.NewShiftColor)}
	if color != nil {
		shift.Color = *color
	}

	err := s.store.ModifyShiftList(ctx, func(shifts []entity.ShiftType) ([]entity.ShiftType, error) {
		return append(shifts, shift), nil
	})
	if err != nil {
		return entity.ShiftType{}, err
	}

	s.log.Info().Str("shift_id", shift.ID).Str("label", shift.Label).Msg("shift added")
	return shift, nil
}

func (s *shiftService) RenameShift(ctx context.Context, id, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("%w: label cannot be empty", domain.ErrInvalidShiftList)
	}

	return s.updateShift(ctx, id, func(shift *entity.ShiftType) {
		shift.Label = label
	})
}

func (s *shiftService) RecolorShift(ctx context.Context, id string, color entity.Color) error {
	return s.updateShift(ctx, id, func(shift *entity.ShiftType) {
		shift.Color = color
	})
}

func (s *shiftService) updateShift(ctx context.Context, id string, update func(shift *entity.ShiftType)) error {
	return s.store.ModifyShiftList(ctx, func(shifts []entity.ShiftType) ([]entity.ShiftType, error) {
		idx := entity.IndexOfShift(shifts, id)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrShiftNotFound, id)
		}
		update(&shifts[idx])
		return shifts, nil
	})
}

// RemoveShift deletes a shift. Removing the last one leaves an empty cycle
// rather than restoring the defaults.
func (s *shiftService) RemoveShift(ctx context.Context, id string) error {
	err := s.store.ModifyShiftList(ctx, func(shifts []entity.ShiftType) ([]entity.ShiftType, error) {
		idx := entity.IndexOfShift(shifts, id)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrShiftNotFound, id)
		}
		return slices.Delete(shifts, idx, idx+1), nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("shift_id", id).Msg("shift removed")
	return nil
}

func (s *shiftService) ResetShifts(ctx context.Context) error {
	return s.SetShifts(ctx, entity.DefaultShifts())
}

// ResetAll clears the start date and restores the default shifts atomically
func (s *shiftService) ResetAll(ctx context.Context) error {
	if err := s.store.Replace(ctx, nil, entity.DefaultShifts()); err != nil {
		return err
	}
	s.log.Info().Msg("cycle configuration reset")
	return nil
}
