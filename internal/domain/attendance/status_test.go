package attendance

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(s string) *string { return &s }

func TestComputeStatus_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     Status
	}{
		{
			name:    "late and early",
			checkIn: "10:20:00", checkOut: "16:30:00",
			want: Status{IsLateCheckIn: true, IsEarlyCheckOut: true, IsHalfDay: false, WorkingHours: "6h 10m"},
		},
		{
			name:    "short day",
			checkIn: "09:00:00", checkOut: "11:00:00",
			want: Status{IsLateCheckIn: false, IsEarlyCheckOut: true, IsHalfDay: true, WorkingHours: "2h 0m"},
		},
		{
			name:    "overnight wrap",
			checkIn: "23:00:00", checkOut: "02:00:00",
			want: Status{IsLateCheckIn: true, IsEarlyCheckOut: true, IsHalfDay: true, WorkingHours: "3h 0m"},
		},
		{
			name:    "exactly on grace boundaries",
			checkIn: "10:15:00", checkOut: "16:45:00",
			want: Status{IsLateCheckIn: false, IsEarlyCheckOut: false, IsHalfDay: false, WorkingHours: "6h 30m"},
		},
		{
			name:    "one second past grace",
			checkIn: "10:15:01", checkOut: "16:44:59",
			want: Status{IsLateCheckIn: true, IsEarlyCheckOut: true, IsHalfDay: false, WorkingHours: "6h 29m"},
		},
		{
			name:    "exactly half day",
			checkIn: "10:00:00", checkOut: "13:30:00",
			want: Status{IsHalfDay: false, IsEarlyCheckOut: true, WorkingHours: "3h 30m"},
		},
		{
			name:    "seconds are floored",
			checkIn: "10:00:00", checkOut: "13:29:59",
			want: Status{IsHalfDay: true, IsEarlyCheckOut: true, WorkingHours: "3h 29m"},
		},
		{
			name:    "same clock twice",
			checkIn: "12:00:00", checkOut: "12:00:00",
			want: Status{IsLateCheckIn: true, IsEarlyCheckOut: true, IsHalfDay: true, WorkingHours: "0h 0m"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeStatus(clock(tc.checkIn), clock(tc.checkOut))
			require.NotNil(t, got)
			assert.Equal(t, tc.want.IsLateCheckIn, got.IsLateCheckIn, "isLateCheckIn")
			assert.Equal(t, tc.want.IsEarlyCheckOut, got.IsEarlyCheckOut, "isEarlyCheckOut")
			assert.Equal(t, tc.want.IsHalfDay, got.IsHalfDay, "isHalfDay")
			assert.Equal(t, tc.want.WorkingHours, got.WorkingHours, "workingHours")
		})
	}
}

func TestComputeStatus_MissingInput(t *testing.T) {
	assert.Nil(t, ComputeStatus(nil, nil))
	assert.Nil(t, ComputeStatus(clock("10:00:00"), nil))
	assert.Nil(t, ComputeStatus(nil, clock("17:00:00")))
	assert.Nil(t, ComputeStatus(clock(""), clock("17:00:00")))
	assert.Nil(t, ComputeStatus(clock("10:00"), clock("17:00:00")))
}

func TestParseTimeOfDay(t *testing.T) {
	d, ok := ParseTimeOfDay("09:05:03")
	require.True(t, ok)
	assert.Equal(t, 9*time.Hour+5*time.Minute+3*time.Second, d)

	for _, s := range []string{"9:05:03", "24:00:00", "10:60:00", "10:15", " 10:15:00"} {
		_, ok := ParseTimeOfDay(s)
		assert.False(t, ok, s)
	}
	assert.Nil(t, ComputeStatus(clock("9:05:03"), clock("17:00:00")))
}

func TestComputeStatus_WorkedNeverNegative(t *testing.T) {
	for in := 0; in < 24*60; in += 37 {
		for out := 0; out < 24*60; out += 41 {
			checkIn := fmt.Sprintf("%02d:%02d:00", in/60, in%60)
			checkOut := fmt.Sprintf("%02d:%02d:00", out/60, out%60)

			got := ComputeStatus(&checkIn, &checkOut)
			require.NotNil(t, got)

			minutes := out - in
			if minutes < 0 {
				minutes += 24 * 60
			}
			assert.Equal(t, time.Duration(minutes)*time.Minute, got.Worked, "%s -> %s", checkIn, checkOut)
			assert.Equal(t, fmt.Sprintf("%dh %dm", minutes/60, minutes%60), got.WorkingHours)
		}
	}
}

func TestFormatWorkingHours(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatWorkingHours(59*time.Second))
	assert.Equal(t, "7h 0m", FormatWorkingHours(7*time.Hour))
	assert.Equal(t, "23h 59m", FormatWorkingHours(24*time.Hour-time.Second))
}

func TestDayAttendanceResponse_JSON(t *testing.T) {
	empty, err := json.Marshal(DayAttendanceResponse{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"checkIn":null,"checkOut":null}`, string(empty))

	resp := DayAttendanceResponse{
		CheckIn:  clock("10:20:00"),
		CheckOut: clock("16:30:00"),
		Status:   ComputeStatus(clock("10:20:00"), clock("16:30:00")),
	}
	full, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"checkIn": "10:20:00",
		"checkOut": "16:30:00",
		"isLateCheckIn": true,
		"isEarlyCheckOut": true,
		"isHalfDay": false,
		"workingHours": "6h 10m"
	}`, string(full))
}

func TestLedger_CloneIsDeep(t *testing.T) {
	l := Ledger{"E1": {"2024-05-01": {CheckIn: clock("10:00:00")}}}
	c := l.Clone()

	*c["E1"]["2024-05-01"].CheckIn = "11:00:00"
	c["E1"]["2024-05-02"] = Day{}

	assert.Equal(t, "10:00:00", *l["E1"]["2024-05-01"].CheckIn)
	assert.Len(t, l["E1"], 1)
}
