package attendance

import "context"

// AttendanceRepository is the attendance ledger. Keys are normalized employee
// IDs; check-in and check-out validate and mutate atomically.
type AttendanceRepository interface {
	// All returns a copy of the full ledger
	All(ctx context.Context) (Ledger, error)

	// Get returns the record for employee on date and whether it exists
	Get(ctx context.Context, employeeKey string, date string) (Day, bool, error)

	// CheckIn records at as the check-in clock for date.
	// Returns ErrAlreadyCheckedIn if a check-in is already stored.
	CheckIn(ctx context.Context, employeeKey string, date string, at string) error

	// CheckOut records at as the check-out clock for date.
	// Returns ErrCheckInRequired or ErrAlreadyCheckedOut when the state forbids it.
	CheckOut(ctx context.Context, employeeKey string, date string, at string) error
}
