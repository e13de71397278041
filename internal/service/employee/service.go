package employee

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx)
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if validator.IsEmpty(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.EmployeeRepository.GetByID(ctx, id)
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		ID:   req.ID,
		Name: req.Name,
	})
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	slog.Info("Employee added", "employee_id", created.ID, "employee_key", created.Key())

	return employee.CreateEmployeeResponse{
		Message:  "Employee added successfully",
		Employee: created,
	}, nil
}
