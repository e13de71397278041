package employee

import "context"

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// List returns all employees
	List(ctx context.Context) ([]Employee, error)

	// GetByID looks up an employee by ID, ignoring case
	GetByID(ctx context.Context, id string) (Employee, error)

	// Create validates and adds a new employee
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
}
