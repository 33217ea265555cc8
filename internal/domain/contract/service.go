package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/entity"
)

// ShiftService is what presentation layers (the Slack handler, the announcer)
// use to read and change the shift cycle.
type ShiftService interface {
	Today() civil.Date
	ResolveDayAssignment(ctx context.Context, date civil.Date) (entity.DayAssignment, error)
	MonthView(ctx context.Context, year int, month time.Month) ([]entity.CalendarDay, error)
	Config(ctx context.Context) (entity.CycleConfig, error)
	SubscribeConfig(ctx context.Context) (<-chan entity.CycleConfig, error)
	Legend(ctx context.Context) ([]entity.ShiftType, error)

	SetCycleStart(ctx context.Context, date civil.Date) error
	ClearCycleStart(ctx context.Context) error
	SetShifts(ctx context.Context, shifts []entity.ShiftType) error
	AddShift(ctx context.Context, label string, color *entity.Color) (entity.ShiftType, error)
	RenameShift(ctx context.Context, id, label string) error
	RecolorShift(ctx context.Context, id string, color entity.Color) error
	RemoveShift(ctx context.Context, id string) error
	ResetShifts(ctx context.Context) error
	ResetAll(ctx context.Context) error
}
