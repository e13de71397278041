package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/sse"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	hub *sse.Hub
	now func() time.Time
}

// NewAttendanceService wires the ledger and directory. now defaults to time.Now.
func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	hub *sse.Hub,
	now func() time.Time,
) attendance.AttendanceService {
	if now == nil {
		now = time.Now
	}
	if hub == nil {
		hub = sse.NewHub()
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		hub:                  hub,
		now:                  now,
	}
}

// clock returns the ledger date key and the IST clock value for the current
// instant. The date is taken in UTC while the clock is IST, so between 00:00
// and 05:30 IST the record is filed under the previous UTC day.
func (a *AttendanceServiceImpl) clock() (date string, at string) {
	now := a.now()
	return now.UTC().Format(attendance.DateLayout), now.In(attendance.IST).Format(attendance.TimeLayout)
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmpID)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	key := emp.Key()
	date, at := a.clock()

	if err := a.AttendanceRepository.CheckIn(ctx, key, date, at); err != nil {
		return attendance.CheckInResponse{}, err
	}

	slog.Info("Employee checked in", "employee_key", key, "date", date, "check_in", at)
	a.publish(key, attendance.EventCheckIn, date, at)

	return attendance.CheckInResponse{
		Message: fmt.Sprintf("✅ Checked in at %s (IST). You can check out later.", at),
		CheckIn: at,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmpID)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	key := emp.Key()
	date, at := a.clock()

	if err := a.AttendanceRepository.CheckOut(ctx, key, date, at); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	slog.Info("Employee checked out", "employee_key", key, "date", date, "check_out", at)
	a.publish(key, attendance.EventCheckOut, date, at)

	return attendance.CheckOutResponse{
		Message:  "Check-out successful",
		CheckOut: at,
	}, nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, empID string, date string) (attendance.DayAttendanceResponse, error) {
	day, found, err := a.AttendanceRepository.Get(ctx, employee.NormalizeID(empID), date)
	if err != nil {
		return attendance.DayAttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if !found {
		return attendance.DayAttendanceResponse{}, nil
	}

	return attendance.DayAttendanceResponse{
		CheckIn:  day.CheckIn,
		CheckOut: day.CheckOut,
		Status:   attendance.ComputeStatus(day.CheckIn, day.CheckOut),
	}, nil
}

// ListAll implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAll(ctx context.Context) (attendance.Ledger, error) {
	ledger, err := a.AttendanceRepository.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return ledger, nil
}

// Subscribe implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Subscribe(ctx context.Context, empID string) (<-chan sse.Event, func(), error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, empID)
	if err != nil {
		return nil, nil, err
	}

	events, cleanup := a.hub.Subscribe(emp.Key())
	return events, cleanup, nil
}

func (a *AttendanceServiceImpl) publish(key, event, date, at string) {
	a.hub.Publish(sse.Event{
		Topic: key,
		Event: event,
		Data: attendance.AttendanceEvent{
			EmpID: key,
			Date:  date,
			Time:  at,
		},
	})
}
