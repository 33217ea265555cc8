package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// unixEpoch is day 0 of the persisted epoch-day encoding
var unixEpoch = civil.Date{Year: 1970, Month: time.January, Day: 1}

// legacyMillisThreshold separates epoch-day values from epoch-millisecond
// values written at local midnight by earlier versions. 10^8 days is far past
// any real calendar date, while 10^8 ms is about 1.16 days after the epoch.
// A millisecond value inside that window would decode as an epoch day; no
// real start date was ever stored there, so the ambiguity is accepted.
const legacyMillisThreshold = 100_000_000

// EpochDay returns the number of days between 1970-01-01 and d
func EpochDay(d civil.Date) int {
	return d.DaysSince(unixEpoch)
}

// DateFromEpochDay is the inverse of EpochDay
func DateFromEpochDay(n int) civil.Date {
	return unixEpoch.AddDays(n)
}

// EncodeStartDate renders a start date as a decimal epoch-day
func EncodeStartDate(d civil.Date) string {
	return strconv.Itoa(EpochDay(d))
}

// DecodeStartDate parses a persisted start date. Epoch-millisecond values are
// converted to the calendar day they fall on in loc.
func DecodeStartDate(raw string, loc *time.Location) (civil.Date, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return civil.Date{}, fmt.Errorf("failed to parse start date %q: %w", raw, err)
	}

	if v >= legacyMillisThreshold || v <= -legacyMillisThreshold {
		return civil.DateOf(time.UnixMilli(v).In(loc)), nil
	}
	return DateFromEpochDay(int(v)), nil
}

// EncodeShifts serializes the full list as a JSON array
func EncodeShifts(shifts []ShiftType) (string, error) {
	if shifts == nil {
		shifts = []ShiftType{}
	}
	b, err := json.Marshal(shifts)
	if err != nil {
		return "", fmt.Errorf("failed to marshal shifts: %w", err)
	}
	return string(b), nil
}

// DecodeShifts parses a JSON array of shifts. Unknown fields are ignored so
// data written by newer versions still loads.
func DecodeShifts(raw string) ([]ShiftType, error) {
	var shifts []ShiftType
	if err := json.Unmarshal([]byte(raw), &shifts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shifts: %w", err)
	}
	if shifts == nil {
		shifts = []ShiftType{}
	}
	return shifts, nil
}

// DecodeShiftsOrDefault never fails: anything that does not decode yields the
// default list. The decode error is returned for logging only.
func DecodeShiftsOrDefault(raw string) ([]ShiftType, error) {
	shifts, err := DecodeShifts(raw)
	if err != nil {
		return DefaultShifts(), err
	}
	return shifts, nil
}
