package service

import (
	"github.com/diegoclair/shift-cycle-bot/internal/domain/contract"
	"github.com/rs/zerolog"
)

type Instance struct {
	Store     *ConfigStore
	Shift     contract.ShiftService
	Announcer *announcer
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, opts Options, log zerolog.Logger) (*Instance, error) {
	opts = opts.withDefaults()

	store := NewConfigStore(dm, opts.Location, log)
	shiftService := newShiftService(store, opts.Location, log)

	announcer, err := newAnnouncer(shiftService, slackClient, opts, log)
	if err != nil {
		return nil, err
	}

	return &Instance{
		Store:     store,
		Shift:     shiftService,
		Announcer: announcer,
	}, nil
}
