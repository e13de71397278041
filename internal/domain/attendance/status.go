package attendance

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

const (
	// TimeLayout is the stored check-in/out clock format.
	TimeLayout = "15:04:05"
	// DateLayout is the ledger date key format.
	DateLayout = time.DateOnly
)

// IST is the fixed zone check-in/out clocks are recorded in, whatever the host zone.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// Shift boundaries as offsets from midnight.
const (
	OfficialStart       = 10 * time.Hour
	OfficialEnd         = 17 * time.Hour
	LateCheckInAfter    = 10*time.Hour + 15*time.Minute
	EarlyCheckOutBefore = 16*time.Hour + 45*time.Minute
)

// HalfDayThreshold is half the official shift.
const HalfDayThreshold = (OfficialEnd - OfficialStart) / 2

type Status struct {
	IsLateCheckIn   bool          `json:"isLateCheckIn"`
	IsEarlyCheckOut bool          `json:"isEarlyCheckOut"`
	IsHalfDay       bool          `json:"isHalfDay"`
	WorkingHours    string        `json:"workingHours"`
	Worked          time.Duration `json:"-"`
}

// ComputeStatus derives lateness, early leave and half-day flags from a pair
// of clock values. It returns nil when either value is missing or malformed.
// A check-out clock earlier than the check-in clock is read as a shift that
// crossed midnight.
func ComputeStatus(checkIn, checkOut *string) *Status {
	if checkIn == nil || checkOut == nil {
		return nil
	}

	in, ok := ParseTimeOfDay(*checkIn)
	if !ok {
		return nil
	}
	out, ok := ParseTimeOfDay(*checkOut)
	if !ok {
		return nil
	}

	worked := out - in
	if worked < 0 {
		worked += 24 * time.Hour
	}

	return &Status{
		IsLateCheckIn:   in > LateCheckInAfter,
		IsEarlyCheckOut: out < EarlyCheckOutBefore,
		IsHalfDay:       worked < HalfDayThreshold,
		WorkingHours:    FormatWorkingHours(worked),
		Worked:          worked,
	}
}

// ParseTimeOfDay parses a zero-padded 24-hour "HH:MM:SS" into an offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, bool) {
	if !validator.IsValidTimeOfDay(s) {
		return 0, false
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, true
}

// FormatWorkingHours renders d as "<H>h <M>m", dropping seconds.
func FormatWorkingHours(d time.Duration) string {
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
