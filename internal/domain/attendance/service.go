package attendance

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/sse"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the current IST time as today's check-in
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut records the current IST time as today's check-out
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	// GetAttendance returns one employee's day with derived status
	GetAttendance(ctx context.Context, empID string, date string) (DayAttendanceResponse, error)

	// ListAll returns the whole ledger
	ListAll(ctx context.Context) (Ledger, error)

	// Subscribe streams check-in/out events for an existing employee
	Subscribe(ctx context.Context, empID string) (<-chan sse.Event, func(), error)
}
