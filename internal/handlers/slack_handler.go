package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/diegoclair/shift-cycle-bot/internal/domain"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/contract"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/shift-cycle-bot/internal/domain/slack"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	shiftService  contract.ShiftService
	signingSecret string
	log           zerolog.Logger
}

func New(shiftService contract.ShiftService, signingSecret string, log zerolog.Logger) *SlackHandler {
	return &SlackHandler{
		shiftService:  shiftService,
		signingSecret: signingSecret,
		log:           log.With().Str("component", "slack_handler").Logger(),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		h.log.Warn().Err(err).Msg("rejecting request without valid Slack headers")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn().Err(err).Msg("rejecting request with bad Slack signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		if slackcmd.IsUsageError(err) {
			h.respondWithError(w, err.Error())
			return
		}
		h.log.Error().Err(err).Str("text", s.Text).Msg("failed to parse slash command")
		h.respondWithError(w, "Could not read that command, try `/shift help`")
		return
	}

	h.log.Debug().
		Str("user_id", s.UserID).
		Str("channel_id", s.ChannelID).
		Str("command", string(cmd.Type)).
		Str("text", cmd.Raw).
		Msg("handling slash command")

	response := h.handleCommand(r.Context(), cmd)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error().Err(err).Msg("failed to write slash command response")
	}
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdToday:
		return h.handleLookup(ctx, h.shiftService.Today())
	case slackcmd.CmdOn:
		return h.handleLookup(ctx, cmd.Date)
	case slackcmd.CmdMonth:
		return h.handleMonth(ctx, cmd)
	case slackcmd.CmdStart:
		return h.handleStart(ctx, cmd)
	case slackcmd.CmdList:
		return h.handleList(ctx)
	case slackcmd.CmdAdd:
		return h.handleAdd(ctx, cmd)
	case slackcmd.CmdRename:
		return h.handleRename(ctx, cmd)
	case slackcmd.CmdColor:
		return h.handleColor(ctx, cmd)
	case slackcmd.CmdRemove:
		return h.handleRemove(ctx, cmd)
	case slackcmd.CmdReset:
		return h.handleReset(ctx, cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleLookup(ctx context.Context, date civil.Date) *slack.Msg {
	assignment, err := h.shiftService.ResolveDayAssignment(ctx, date)
	if err != nil {
		return h.internalError("resolve shift", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         formatAssignment(assignment),
	}
}

func (h *SlackHandler) handleMonth(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	year, month := cmd.Year, cmd.Month
	if year == 0 {
		today := h.shiftService.Today()
		year, month = today.Year, today.Month
	}

	days, err := h.shiftService.MonthView(ctx, year, month)
	if err != nil {
		return h.internalError("load month", err)
	}

	var text strings.Builder
	text.WriteString(fmt.Sprintf("*%s %d*\n", month, year))
	for _, d := range days {
		if !d.InMonth {
			continue
		}
		weekday := domain.WeekdayNames[d.Date.In(time.UTC).Weekday()]
		label := "_unassigned_"
		if d.Assigned {
			label = d.Shift.Label
		}
		text.WriteString(fmt.Sprintf("`%02d %s` %s\n", d.Date.Day, weekday, label))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.TrimSuffix(text.String(), "\n"),
	}
}

func (h *SlackHandler) handleStart(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Action {
	case slackcmd.ActionSet:
		date := cmd.Date
		if date.IsZero() {
			date = h.shiftService.Today()
		}
		if err := h.shiftService.SetCycleStart(ctx, date); err != nil {
			return h.serviceError("set the cycle start date", err)
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ Cycle start date set to %s", date),
		}

	case slackcmd.ActionClear:
		if err := h.shiftService.ClearCycleStart(ctx); err != nil {
			return h.serviceError("clear the cycle start date", err)
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         "✅ Cycle start date cleared. Every day is unassigned until a new one is set.",
		}

	default:
		cfg, err := h.shiftService.Config(ctx)
		if err != nil {
			return h.internalError("load configuration", err)
		}
		text := "No cycle start date is set. Use `/shift start YYYY-MM-DD` to set one."
		if cfg.StartDate != nil {
			text = fmt.Sprintf("Cycle start date: *%s*", cfg.StartDate)
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         text,
		}
	}
}

func (h *SlackHandler) handleList(ctx context.Context) *slack.Msg {
	cfg, err := h.shiftService.Config(ctx)
	if err != nil {
		return h.internalError("load configuration", err)
	}

	var list strings.Builder
	if len(cfg.Shifts) == 0 {
		legend, err := h.shiftService.Legend(ctx)
		if err != nil {
			return h.internalError("load configuration", err)
		}

		list.WriteString("The shift list is empty, so every day is unassigned. Use `/shift add LABEL` to add shifts.\n\n")
		list.WriteString("*Default shifts* (`/shift reset` restores them):\n")
		for _, shift := range legend {
			list.WriteString(fmt.Sprintf("• %s %s\n", shift.Label, colorText(shift.Color)))
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         strings.TrimSuffix(list.String(), "\n"),
		}
	}

	list.WriteString("*Shift cycle:*\n")
	for i, shift := range cfg.Shifts {
		list.WriteString(fmt.Sprintf("%d. %s `%s` %s\n", i+1, shift.Label, shift.ID, colorText(shift.Color)))
	}
	if cfg.StartDate == nil {
		list.WriteString("\n_No cycle start date is set._")
	} else {
		list.WriteString(fmt.Sprintf("\nStarts on %s", cfg.StartDate))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleAdd(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	var color *entity.Color
	if cmd.HasColor {
		color = &cmd.Color
	}

	shift, err := h.shiftService.AddShift(ctx, cmd.Label, color)
	if err != nil {
		return h.serviceError("add the shift", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Added *%s* (`%s`) to the end of the cycle", shift.Label, shift.ID),
	}
}

func (h *SlackHandler) handleRename(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	if err := h.shiftService.RenameShift(ctx, cmd.ShiftID, cmd.Label); err != nil {
		return h.serviceError("rename the shift", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ `%s` is now called *%s*", cmd.ShiftID, cmd.Label),
	}
}

func (h *SlackHandler) handleColor(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	if err := h.shiftService.RecolorShift(ctx, cmd.ShiftID, cmd.Color); err != nil {
		return h.serviceError("change the color", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ `%s` is now %s", cmd.ShiftID, colorText(cmd.Color)),
	}
}

func (h *SlackHandler) handleRemove(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	if err := h.shiftService.RemoveShift(ctx, cmd.ShiftID); err != nil {
		return h.serviceError("remove the shift", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ `%s` was removed from the cycle", cmd.ShiftID),
	}
}

func (h *SlackHandler) handleReset(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	if cmd.Action == slackcmd.ActionAll {
		if err := h.shiftService.ResetAll(ctx); err != nil {
			return h.serviceError("reset the configuration", err)
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         "✅ Default shifts restored and cycle start date cleared",
		}
	}

	if err := h.shiftService.ResetShifts(ctx); err != nil {
		return h.serviceError("reset the shifts", err)
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ Default shifts restored",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func formatAssignment(a entity.DayAssignment) string {
	weekday := domain.WeekdayNames[a.Date.In(time.UTC).Weekday()]
	if !a.Assigned {
		return fmt.Sprintf("%s (%s): _unassigned_. Set a start date with `/shift start YYYY-MM-DD` and make sure the shift list is not empty.", a.Date, weekday)
	}
	return fmt.Sprintf("%s (%s): *%s*", a.Date, weekday, a.Shift.Label)
}

func colorText(c entity.Color) string {
	if name, ok := c.Name(); ok {
		return fmt.Sprintf("%s (%s)", c.Hex(), name)
	}
	return c.Hex()
}

// serviceError turns expected domain errors into user-facing messages and
// logs anything else
func (h *SlackHandler) serviceError(action string, err error) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrShiftNotFound):
		return h.createErrorResponse("Shift not found. Use `/shift list` to see the ids.")
	case errors.Is(err, domain.ErrInvalidShiftList), errors.Is(err, domain.ErrInvalidDate):
		return h.createErrorResponse(fmt.Sprintf("Could not %s: %v", action, err))
	}
	return h.internalError(action, err)
}

func (h *SlackHandler) internalError(action string, err error) *slack.Msg {
	h.log.Error().Err(err).Str("action", action).Msg("slash command failed")
	return h.createErrorResponse(fmt.Sprintf("Failed to %s, please try again", action))
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
