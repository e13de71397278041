package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/snapshot"
)

type employeeRepository struct {
	mu        sync.RWMutex
	employees []employee.Employee
	notifier  ChangeNotifier
}

// EmployeeStore is the in-memory employee directory; its snapshot is the
// persisted employee list.
type EmployeeStore interface {
	employee.EmployeeRepository
	snapshot.Source
}

// NewEmployeeRepository seeds the directory with employees loaded at startup.
func NewEmployeeRepository(seed []employee.Employee, notifier ChangeNotifier) EmployeeStore {
	employees := make([]employee.Employee, len(seed))
	copy(employees, seed)
	return &employeeRepository{
		employees: employees,
		notifier:  notifierOrNoop(notifier),
	}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	key := employee.NormalizeID(id)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.Key() == key {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	key := newEmployee.Key()

	r.mu.Lock()
	for _, e := range r.employees {
		if e.Key() == key {
			r.mu.Unlock()
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
	}
	for _, e := range r.employees {
		if employee.SameName(e.Name, newEmployee.Name) {
			r.mu.Unlock()
			return employee.Employee{}, employee.ErrEmployeeNameExists
		}
	}
	r.employees = append(r.employees, newEmployee)
	r.mu.Unlock()

	r.notifier.MarkDirty()
	return newEmployee, nil
}

// Snapshot implements snapshot.Source.
func (r *employeeRepository) Snapshot() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Persist an empty directory as [] rather than null
	if r.employees == nil {
		return snapshot.Marshal([]employee.Employee{})
	}
	return snapshot.Marshal(r.employees)
}
