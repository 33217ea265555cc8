package slack

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/diegoclair/shift-cycle-bot/internal/domain"
	"github.com/diegoclair/shift-cycle-bot/internal/domain/entity"
)

type CommandType string

const (
	CmdToday  CommandType = "today"
	CmdOn     CommandType = "on"
	CmdMonth  CommandType = "month"
	CmdStart  CommandType = "start"
	CmdList   CommandType = "list"
	CmdAdd    CommandType = "add"
	CmdRename CommandType = "rename"
	CmdColor  CommandType = "color"
	CmdRemove CommandType = "remove"
	CmdReset  CommandType = "reset"
	CmdHelp   CommandType = "help"
)

// Sub-actions of start and reset
const (
	ActionSet    = "set"
	ActionClear  = "clear"
	ActionShow   = "show"
	ActionShifts = "shifts"
	ActionAll    = "all"
)

// Command is a parsed and validated /shift invocation. Only the fields
// relevant to Type are set.
type Command struct {
	Type CommandType
	Args []string
	Raw  string

	Action string
	Date   civil.Date

	// Year and Month are zero when month was given without an argument
	Year  int
	Month time.Month

	ShiftID  string
	Label    string
	Color    entity.Color
	HasColor bool
}

var (
	errUsage          = errors.New("usage")
	errUnknownCommand = errors.New("unknown command")
)

func usage(format string) error {
	return fmt.Errorf("%w: %s", errUsage, format)
}

// IsUsageError reports whether err came from a malformed command
func IsUsageError(err error) bool {
	return errors.Is(err, errUsage) || errors.Is(err, errUnknownCommand) ||
		errors.Is(err, domain.ErrInvalidDate) || errors.Is(err, domain.ErrInvalidColor)
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp, Raw: text}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	var err error
	switch strings.ToLower(parts[0]) {
	case "today", "now":
		cmd.Type = CmdToday
	case "on", "date":
		cmd.Type = CmdOn
		if len(cmd.Args) != 1 {
			return nil, usage("`/shift on YYYY-MM-DD`")
		}
		cmd.Date, err = ParseDate(cmd.Args[0])
	case "month", "cal":
		cmd.Type = CmdMonth
		err = parseMonth(cmd)
	case "start":
		cmd.Type = CmdStart
		err = parseStart(cmd)
	case "list", "ls":
		cmd.Type = CmdList
	case "add":
		cmd.Type = CmdAdd
		parseAdd(cmd)
	case "rename":
		cmd.Type = CmdRename
		if len(cmd.Args) < 2 {
			return nil, usage("`/shift rename ID LABEL`")
		}
		cmd.ShiftID = cmd.Args[0]
		cmd.Label = unquote(strings.Join(cmd.Args[1:], " "))
	case "color", "colour":
		cmd.Type = CmdColor
		if len(cmd.Args) != 2 {
			return nil, usage("`/shift color ID COLOR`")
		}
		cmd.ShiftID = cmd.Args[0]
		cmd.Color, err = entity.ParseColor(cmd.Args[1])
		cmd.HasColor = err == nil
	case "remove", "rm":
		cmd.Type = CmdRemove
		if len(cmd.Args) != 1 {
			return nil, usage("`/shift remove ID`")
		}
		cmd.ShiftID = cmd.Args[0]
	case "reset":
		cmd.Type = CmdReset
		err = parseReset(cmd)
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("%w %q, try `/shift help`", errUnknownCommand, parts[0])
	}

	if err != nil {
		return nil, err
	}
	return cmd, nil
}

// ParseDate reads a YYYY-MM-DD date and rejects days that do not exist
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil || !d.IsValid() {
		return civil.Date{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD", domain.ErrInvalidDate, s)
	}
	return d, nil
}

func parseMonth(cmd *Command) error {
	switch len(cmd.Args) {
	case 0:
		return nil
	case 1:
		t, err := time.Parse("2006-01", cmd.Args[0])
		if err != nil {
			return fmt.Errorf("%w: %q, expected YYYY-MM", domain.ErrInvalidDate, cmd.Args[0])
		}
		cmd.Year, cmd.Month = t.Year(), t.Month()
		return nil
	default:
		return usage("`/shift month [YYYY-MM]`")
	}
}

func parseStart(cmd *Command) error {
	if len(cmd.Args) == 0 {
		cmd.Action = ActionShow
		return nil
	}
	if len(cmd.Args) > 1 {
		return usage("`/shift start YYYY-MM-DD|clear|show`")
	}

	switch arg := strings.ToLower(cmd.Args[0]); arg {
	case ActionClear, ActionShow:
		cmd.Action = arg
		return nil
	case "today":
		// a zero Date asks the handler for the current day
		cmd.Action = ActionSet
		return nil
	}

	d, err := ParseDate(cmd.Args[0])
	if err != nil {
		return err
	}
	cmd.Action = ActionSet
	cmd.Date = d
	return nil
}

// parseAdd takes the last argument as the color when it parses as one and
// leaves a blank label for the service to default.
func parseAdd(cmd *Command) {
	args := cmd.Args
	if len(args) > 1 {
		if c, err := entity.ParseColor(args[len(args)-1]); err == nil {
			cmd.Color, cmd.HasColor = c, true
			args = args[:len(args)-1]
		}
	}
	cmd.Label = unquote(strings.Join(args, " "))
}

func parseReset(cmd *Command) error {
	switch len(cmd.Args) {
	case 0:
		cmd.Action = ActionShifts
		return nil
	case 1:
		if arg := strings.ToLower(cmd.Args[0]); arg == ActionAll || arg == ActionShifts {
			cmd.Action = arg
			return nil
		}
	}
	return usage("`/shift reset [all]`")
}

// unquote strips one pair of matching surrounding quotes
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

func GetHelpText() string {
	return `*Available Commands:*

*Look up:*
• ` + "`/shift today`" + ` - Show today's shift
• ` + "`/shift on YYYY-MM-DD`" + ` - Show the shift on a date
• ` + "`/shift month [YYYY-MM]`" + ` - Show a whole month (default: current month)

*Cycle:*
• ` + "`/shift start YYYY-MM-DD`" + ` - Set the first day of the cycle (` + "`today`" + ` works too)
• ` + "`/shift start show`" + ` - Show the cycle start date
• ` + "`/shift start clear`" + ` - Remove the start date, leaving every day unassigned

*Shifts:*
• ` + "`/shift list`" + ` - List shifts in cycle order with their ids
• ` + "`/shift add LABEL [COLOR]`" + ` - Append a shift (color last: ` + "`#FF9800`" + ` or a preset name)
• ` + "`/shift rename ID LABEL`" + ` - Rename a shift
• ` + "`/shift color ID COLOR`" + ` - Change a shift's color
• ` + "`/shift remove ID`" + ` - Remove a shift from the cycle
• ` + "`/shift reset`" + ` - Restore the default shifts
• ` + "`/shift reset all`" + ` - Restore the default shifts and clear the start date

*Preset colors:* ` + paletteNames()
}

func paletteNames() string {
	names := make([]string, 0, len(entity.Palette))
	for _, nc := range entity.Palette {
		names = append(names, nc.Name)
	}
	return strings.Join(names, ", ")
}
