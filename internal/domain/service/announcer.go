package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/shift-cycle-bot/internal/domain"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/contract"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/cycle"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/entity"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// announcer posts the day's shift to a Slack channel on a cron schedule.
// It follows the configuration through a store subscription so a tick never
// has to hit the backend.
type announcer struct {
	service     contract.ShiftService
	slackClient contract.SlackClient
	channelID   string
	schedule    cron.Schedule
	cron        *cron.Cron
	log         zerolog.Logger

	mu     sync.RWMutex
	latest *entity.CycleConfig

	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func newAnnouncer(service contract.ShiftService, slackClient contract.SlackClient, opts Options, log zerolog.Logger) (*announcer, error) {
	opts = opts.withDefaults()

	schedule, err := parseSchedule(opts.AnnounceSchedule)
	if err != nil {
		return nil, err
	}

	return &announcer{
		service:     service,
		slackClient: slackClient,
		channelID:   opts.AnnounceChannelID,
		schedule:    schedule,
		cron:        cron.New(cron.WithLocation(opts.Location)),
		log:         log.With().Str("component", "announcer").Logger(),
	}, nil
}

// Start subscribes to configuration changes and starts the cron loop.
// It is a no-op when no announce channel is configured.
func (a *announcer) Start(ctx context.Context) error {
	if a.running {
		return nil
	}
	if a.channelID == "" {
		a.log.Info().Msg("no announce channel configured, announcer disabled")
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	updates, err := a.service.SubscribeConfig(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe to configuration: %w", err)
	}

	a.cancel = cancel
	a.done = make(chan struct{})
	a.running = true

	go a.follow(updates)

	a.cron.Schedule(a.schedule, cron.FuncJob(func() {
		if err := a.announce(ctx); err != nil {
			a.log.Error().Err(err).Str("channel_id", a.channelID).Msg("failed to post daily shift")
		}
	}))
	a.cron.Start()

	a.log.Info().
		Str("channel_id", a.channelID).
		Time("next", a.schedule.Next(time.Now())).
		Msg("announcer started")
	return nil
}

// Stop waits for a running announcement to finish, then drops the
// subscription.
func (a *announcer) Stop() {
	if !a.running {
		return
	}

	<-a.cron.Stop().Done()
	a.cancel()
	<-a.done
	a.running = false

	a.log.Info().Msg("announcer stopped")
}

func (a *announcer) follow(updates <-chan entity.CycleConfig) {
	defer close(a.done)

	for cfg := range updates {
		a.mu.Lock()
		a.latest = &cfg
		a.mu.Unlock()
	}
}

func (a *announcer) announce(ctx context.Context) error {
	a.mu.RLock()
	latest := a.latest
	a.mu.RUnlock()

	if latest == nil {
		a.log.Warn().Msg("no configuration received yet, skipping announcement")
		return nil
	}

	assignment := cycle.Assign(a.service.Today(), latest.StartDate, latest.Shifts)
	text := announcementText(assignment, *latest)

	_, _, err := a.slackClient.PostMessageContext(
		ctx,
		a.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	a.log.Debug().
		Str("date", assignment.Date.String()).
		Bool("assigned", assignment.Assigned).
		Msg("daily shift posted")
	return nil
}

func announcementText(a entity.DayAssignment, cfg entity.CycleConfig) string {
	const header = "📅 *Shift Reminder*\n\n"

	switch {
	case cfg.StartDate == nil:
		return header + "No cycle start date is set. Use `/shift start YYYY-MM-DD` to set one."
	case !a.Assigned:
		return header + "The shift list is empty. Use `/shift add LABEL` to add shifts."
	}

	weekday := domain.WeekdayNames[a.Date.In(time.UTC).Weekday()]
	return fmt.Sprintf("%sToday (%s, %s): *%s*", header, a.Date, weekday, a.Shift.Label)
}
