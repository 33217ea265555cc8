package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/civil"
	"github.com/diegoclair/shift-cycle-bot/internal/domain"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/contract"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/entity"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ConfigStore persists the cycle start date and the shift list and pushes
// every committed change to its subscribers.
//
// Writes are serialized: each one is applied to the backend and the new
// snapshot is published before the next write starts, so subscribers observe
// changes in commit order. Reads go straight to the backend.
type ConfigStore struct {
	dm       contract.DataManager
	loc      *time.Location
	validate *validator.Validate
	log      zerolog.Logger

	writeMu sync.Mutex

	subsMu sync.Mutex
	subs   map[chan entity.CycleConfig]struct{}
}

type shiftListRules struct {
	Shifts []entity.ShiftType `validate:"unique=ID,dive"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// only an empty or reserved tag name fails to register
	_ = v.RegisterValidation("shiftlabel", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) <= domain.MaxLabelLength
	})
	return v
}

// NewConfigStore creates a store on top of dm. loc is used to convert start
// dates written by older versions as epoch milliseconds.
func NewConfigStore(dm contract.DataManager, loc *time.Location, log zerolog.Logger) *ConfigStore {
	if loc == nil {
		loc = time.Local
	}
	return &ConfigStore{
		dm:       dm,
		loc:      loc,
		validate: newValidator(),
		log:      log.With().Str("component", "config_store").Logger(),
		subs:     make(map[chan entity.CycleConfig]struct{}),
	}
}

// CycleStartDate returns the persisted start date, or nil when none is set.
// A value that cannot be parsed is logged and treated as unset.
func (s *ConfigStore) CycleStartDate(ctx context.Context) (*civil.Date, error) {
	return s.readStartDate(ctx, s.dm.Settings())
}

// ShiftList returns the persisted shift list. A list that was never saved or
// cannot be decoded yields the default list.
func (s *ConfigStore) ShiftList(ctx context.Context) ([]entity.ShiftType, error) {
	return s.readShifts(ctx, s.dm.Settings())
}

// Load reads both settings into one snapshot
func (s *ConfigStore) Load(ctx context.Context) (entity.CycleConfig, error) {
	repo := s.dm.Settings()

	start, err := s.readStartDate(ctx, repo)
	if err != nil {
		return entity.CycleConfig{}, err
	}

	shifts, err := s.readShifts(ctx, repo)
	if err != nil {
		return entity.CycleConfig{}, err
	}

	return entity.CycleConfig{StartDate: start, Shifts: shifts}, nil
}

func (s *ConfigStore) readStartDate(ctx context.Context, repo contract.SettingsRepo) (*civil.Date, error) {
	raw, found, err := repo.Get(ctx, domain.KeyStartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read cycle start date: %w", err)
	}
	if !found {
		return nil, nil
	}

	date, err := entity.DecodeStartDate(raw, s.loc)
	if err != nil {
		s.log.Warn().Err(err).Str("raw", raw).Msg("ignoring unreadable cycle start date")
		return nil, nil
	}
	return &date, nil
}

func (s *ConfigStore) readShifts(ctx context.Context, repo contract.SettingsRepo) ([]entity.ShiftType, error) {
	raw, found, err := repo.Get(ctx, domain.KeyShiftsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to read shift list: %w", err)
	}
	if !found {
		return entity.DefaultShifts(), nil
	}

	shifts, err := entity.DecodeShiftsOrDefault(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("stored shift list is corrupt, using defaults")
	}
	return shifts, nil
}

// SetCycleStartDate persists date as the first day of the cycle
func (s *ConfigStore) SetCycleStartDate(ctx context.Context, date civil.Date) error {
	if !date.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidDate, date)
	}

	return s.write(ctx, func(dm contract.DataManager) error {
		if err := dm.Settings().Set(ctx, domain.KeyStartDate, entity.EncodeStartDate(date)); err != nil {
			return fmt.Errorf("failed to save cycle start date: %w", err)
		}
		return nil
	})
}

// ClearCycleStartDate removes the start date, leaving every day unassigned
func (s *ConfigStore) ClearCycleStartDate(ctx context.Context) error {
	return s.write(ctx, func(dm contract.DataManager) error {
		if err := dm.Settings().Delete(ctx, domain.KeyStartDate); err != nil {
			return fmt.Errorf("failed to clear cycle start date: %w", err)
		}
		return nil
	})
}

// SetShiftList replaces the whole shift list. An empty list is stored as such
// and is not replaced by the defaults.
func (s *ConfigStore) SetShiftList(ctx context.Context, shifts []entity.ShiftType) error {
	encoded, err := s.encodeShifts(shifts)
	if err != nil {
		return err
	}

	return s.write(ctx, func(dm contract.DataManager) error {
		return saveShifts(ctx, dm, encoded)
	})
}

// ModifyShiftList applies fn to the current list and saves the result.
// No other write can happen between the read and the save.
func (s *ConfigStore) ModifyShiftList(ctx context.Context, fn func(shifts []entity.ShiftType) ([]entity.ShiftType, error)) error {
	return s.write(ctx, func(dm contract.DataManager) error {
		current, err := s.readShifts(ctx, dm.Settings())
		if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		encoded, err := s.encodeShifts(next)
		if err != nil {
			return err
		}
		return saveShifts(ctx, dm, encoded)
	})
}

// Replace writes both settings in one transaction. A nil start clears the
// start date.
func (s *ConfigStore) Replace(ctx context.Context, start *civil.Date, shifts []entity.ShiftType) error {
	if start != nil && !start.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidDate, *start)
	}

	encoded, err := s.encodeShifts(shifts)
	if err != nil {
		return err
	}

	return s.write(ctx, func(dm contract.DataManager) error {
		return dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if start == nil {
				if err := tx.Settings().Delete(ctx, domain.KeyStartDate); err != nil {
					return fmt.Errorf("failed to clear cycle start date: %w", err)
				}
			} else {
				if err := tx.Settings().Set(ctx, domain.KeyStartDate, entity.EncodeStartDate(*start)); err != nil {
					return fmt.Errorf("failed to save cycle start date: %w", err)
				}
			}
			return saveShifts(ctx, tx, encoded)
		})
	})
}

func (s *ConfigStore) encodeShifts(shifts []entity.ShiftType) (string, error) {
	if err := s.validate.Struct(shiftListRules{Shifts: shifts}); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidShiftList, err)
	}
	return entity.EncodeShifts(shifts)
}

func saveShifts(ctx context.Context, dm contract.DataManager, encoded string) error {
	if err := dm.Settings().Set(ctx, domain.KeyShiftsConfig, encoded); err != nil {
		return fmt.Errorf("failed to save shift list: %w", err)
	}
	return nil
}

// write runs fn under the write lock and, when it succeeds, publishes the
// new snapshot before releasing the lock.
func (s *ConfigStore) write(ctx context.Context, fn func(dm contract.DataManager) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := fn(s.dm); err != nil {
		return err
	}

	// the write is committed; a cancelled caller must not stop the fan-out
	s.publish(context.WithoutCancel(ctx))
	return nil
}

func (s *ConfigStore) publish(ctx context.Context) {
	s.subsMu.Lock()
	n := len(s.subs)
	s.subsMu.Unlock()
	if n == 0 {
		return
	}

	cfg, err := s.Load(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to reload configuration after write")
		return
	}

	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for ch := range s.subs {
		offerLatest(ch, cfg.Clone())
	}
}

// Subscribe returns a channel that first receives the current configuration
// and then every committed change. Only the latest undelivered snapshot is
// kept for a slow reader. The channel is closed once ctx is done.
func (s *ConfigStore) Subscribe(ctx context.Context) (<-chan entity.CycleConfig, error) {
	// holding the write lock keeps a concurrent write from slipping in
	// between the initial load and the registration
	s.writeMu.Lock()
	cfg, err := s.Load(ctx)
	if err != nil {
		s.writeMu.Unlock()
		return nil, err
	}

	ch := make(chan entity.CycleConfig, 1)
	ch <- cfg

	s.subsMu.Lock()
	s.subs[ch] = struct{}{}
	s.subsMu.Unlock()
	s.writeMu.Unlock()

	go func() {
		<-ctx.Done()
		s.subsMu.Lock()
		delete(s.subs, ch)
		close(ch)
		s.subsMu.Unlock()
	}()

	return ch, nil
}

// WatchCycleStartDate streams the start date, emitting only when it changes
func (s *ConfigStore) WatchCycleStartDate(ctx context.Context) (<-chan *civil.Date, error) {
	return watch(ctx, s, func(cfg entity.CycleConfig) *civil.Date {
		return cfg.StartDate
	}, func(a, b *civil.Date) bool {
		if a == nil || b == nil {
			return a == b
		}
		return *a == *b
	})
}

// WatchShiftList streams the shift list, emitting only when it changes
func (s *ConfigStore) WatchShiftList(ctx context.Context) (<-chan []entity.ShiftType, error) {
	return watch(ctx, s, func(cfg entity.CycleConfig) []entity.ShiftType {
		return cfg.Shifts
	}, slices.Equal[[]entity.ShiftType])
}

func watch[T any](ctx context.Context, s *ConfigStore, pick func(entity.CycleConfig) T, equal func(a, b T) bool) (<-chan T, error) {
	in, err := s.Subscribe(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan T, 1)
	go func() {
		defer close(out)

		var last T
		first := true
		for cfg := range in {
			v := pick(cfg)
			if !first && equal(last, v) {
				continue
			}
			first = false
			last = v
			offerLatest(out, v)
		}
	}()

	return out, nil
}

// offerLatest delivers v without blocking. When the buffer is full the stale
// value is dropped in favour of v.
func offerLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- v:
	default:
	}
}
