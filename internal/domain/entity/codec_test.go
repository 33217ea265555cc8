package entity

import (
	"strconv"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftsCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		shifts []ShiftType
	}{
		{
			name:   "Should keep default list order and fields",
			shifts: DefaultShifts(),
		},
		{
			name: "Should keep custom list with empty label",
			shifts: []ShiftType{
				{ID: "b", Label: "", Color: 0x00000000},
				{ID: "a", Label: "早班", Color: 0xFFFFFFFF},
			},
		},
		{
			name:   "Should keep empty list empty",
			shifts: []ShiftType{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := EncodeShifts(tt.shifts)
			require.NoError(t, err)

			decoded, err := DecodeShifts(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.shifts, decoded)
		})
	}
}

func TestEncodeShifts_FieldNames(t *testing.T) {
	raw, err := EncodeShifts([]ShiftType{{ID: "day", Label: "Day", Color: 0xFF2196F3}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"day","label":"Day","color":4280391411}]`, raw)

	raw, err = EncodeShifts(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestDecodeShifts_IgnoresUnknownFields(t *testing.T) {
	raw := `[{"id":"day","label":"Day","color":4280391411,"icon":"sun","order":1}]`

	shifts, err := DecodeShifts(raw)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, ShiftType{ID: "day", Label: "Day", Color: 0xFF2196F3}, shifts[0])
}

func TestDecodeShiftsOrDefault(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []ShiftType
		wantErr bool
	}{
		{name: "Should fall back on garbage", raw: "not json at all", want: DefaultShifts(), wantErr: true},
		{name: "Should fall back on wrong shape", raw: `{"id":"day"}`, want: DefaultShifts(), wantErr: true},
		{name: "Should fall back on incompatible field type", raw: `[{"id":"day","color":"blue"}]`, want: DefaultShifts(), wantErr: true},
		{name: "Should fall back on truncated data", raw: `[{"id":"day"`, want: DefaultShifts(), wantErr: true},
		{name: "Should treat null as empty", raw: "null", want: []ShiftType{}},
		{name: "Should keep saved empty list", raw: "[]", want: []ShiftType{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeShiftsOrDefault(tt.raw)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStartDateCodec(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	t.Run("Should encode epoch days", func(t *testing.T) {
		assert.Equal(t, "0", EncodeStartDate(civil.Date{Year: 1970, Month: time.January, Day: 1}))
		assert.Equal(t, "-1", EncodeStartDate(civil.Date{Year: 1969, Month: time.December, Day: 31}))
		assert.Equal(t, "19723", EncodeStartDate(civil.Date{Year: 2024, Month: time.January, Day: 1}))
	})

	t.Run("Should round trip across leap days", func(t *testing.T) {
		d := civil.Date{Year: 2024, Month: time.February, Day: 29}
		got, err := DecodeStartDate(EncodeStartDate(d), time.UTC)
		require.NoError(t, err)
		assert.Equal(t, d, got)
	})

	t.Run("Should read legacy local-midnight milliseconds", func(t *testing.T) {
		midnight := time.Date(2024, time.March, 10, 0, 0, 0, 0, shanghai)
		raw := strconv.FormatInt(midnight.UnixMilli(), 10)

		got, err := DecodeStartDate(raw, shanghai)
		require.NoError(t, err)
		assert.Equal(t, civil.Date{Year: 2024, Month: time.March, Day: 10}, got)
	})

	t.Run("Should split days and milliseconds at the threshold", func(t *testing.T) {
		got, err := DecodeStartDate(strconv.Itoa(legacyMillisThreshold-1), time.UTC)
		require.NoError(t, err)
		assert.Equal(t, DateFromEpochDay(legacyMillisThreshold-1), got)

		got, err = DecodeStartDate(strconv.Itoa(legacyMillisThreshold), time.UTC)
		require.NoError(t, err)
		assert.Equal(t, civil.Date{Year: 1970, Month: time.January, Day: 2}, got)

		got, err = DecodeStartDate(strconv.Itoa(-legacyMillisThreshold), time.UTC)
		require.NoError(t, err)
		assert.Equal(t, civil.Date{Year: 1969, Month: time.December, Day: 30}, got)
	})

	t.Run("Should reject non-numeric values", func(t *testing.T) {
		_, err := DecodeStartDate("2024-01-01", time.UTC)
		assert.Error(t, err)
	})
}
