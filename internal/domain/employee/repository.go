package employee

import "context"

// EmployeeRepository is the employee directory.
type EmployeeRepository interface {
	// List returns every employee in insertion order
	List(ctx context.Context) ([]Employee, error)

	// GetByID finds an employee by case-insensitive ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// Create appends an employee after checking ID and name uniqueness atomically.
	// Returns ErrEmployeeIDExists or ErrEmployeeNameExists on conflict.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
}
