package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/snapshot"
)

type attendanceRepository struct {
	mu       sync.RWMutex
	ledger   attendance.Ledger
	notifier ChangeNotifier
}

// AttendanceStore is the in-memory attendance ledger; its snapshot is the
// persisted ledger document.
type AttendanceStore interface {
	attendance.AttendanceRepository
	snapshot.Source
}

// NewAttendanceRepository seeds the ledger with records loaded at startup.
func NewAttendanceRepository(seed attendance.Ledger, notifier ChangeNotifier) AttendanceStore {
	ledger := seed.Clone()
	return &attendanceRepository{
		ledger:   ledger,
		notifier: notifierOrNoop(notifier),
	}
}

// All implements attendance.AttendanceRepository.
func (r *attendanceRepository) All(ctx context.Context) (attendance.Ledger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.ledger.Clone(), nil
}

// Get implements attendance.AttendanceRepository.
func (r *attendanceRepository) Get(ctx context.Context, employeeKey string, date string) (attendance.Day, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day, ok := r.ledger[employeeKey][date]
	if !ok {
		return attendance.Day{}, false, nil
	}
	return day.Clone(), true, nil
}

// CheckIn implements attendance.AttendanceRepository.
func (r *attendanceRepository) CheckIn(ctx context.Context, employeeKey string, date string, at string) error {
	r.mu.Lock()
	days := r.ledger[employeeKey]
	if day, ok := days[date]; ok && day.CheckIn != nil {
		r.mu.Unlock()
		return attendance.ErrAlreadyCheckedIn
	}

	if days == nil {
		days = make(map[string]attendance.Day)
		r.ledger[employeeKey] = days
	}
	// A fresh record: any stale check-out on a day without check-in is dropped
	days[date] = attendance.Day{CheckIn: &at, CheckOut: nil}
	r.mu.Unlock()

	r.notifier.MarkDirty()
	return nil
}

// CheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) CheckOut(ctx context.Context, employeeKey string, date string, at string) error {
	r.mu.Lock()
	day, ok := r.ledger[employeeKey][date]
	if !ok || day.CheckIn == nil {
		r.mu.Unlock()
		return attendance.ErrCheckInRequired
	}
	if day.CheckOut != nil {
		r.mu.Unlock()
		return attendance.ErrAlreadyCheckedOut
	}

	day.CheckOut = &at
	r.ledger[employeeKey][date] = day
	r.mu.Unlock()

	r.notifier.MarkDirty()
	return nil
}

// Snapshot implements snapshot.Source.
func (r *attendanceRepository) Snapshot() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return snapshot.Marshal(r.ledger)
}
