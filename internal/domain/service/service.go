package service

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultAnnounceSchedule posts the daily shift at 08:00
const DefaultAnnounceSchedule = "0 8 * * *"

// Options configures the services built by NewInstance
type Options struct {
	// Location decides which calendar day "today" is
	Location *time.Location

	// AnnounceChannelID is the Slack channel that receives the daily
	// announcement. Empty disables the announcer.
	AnnounceChannelID string

	// AnnounceSchedule is a standard five-field cron expression
	AnnounceSchedule string
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.AnnounceSchedule == "" {
		o.AnnounceSchedule = DefaultAnnounceSchedule
	}
	return o
}

func parseSchedule(spec string) (cron.Schedule, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid announce schedule %q: %w", spec, err)
	}
	return schedule, nil
}
