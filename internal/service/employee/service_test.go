package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() employee.EmployeeService {
	repo := memory.NewEmployeeRepository([]employee.Employee{{ID: "E1", Name: "Asha Rao"}}, nil)
	return NewEmployeeService(repo)
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{ID: "  e2 ", Name: "  Vikram Singh "})
	require.NoError(t, err)
	assert.Equal(t, "Employee added successfully", resp.Message)
	assert.Equal(t, employee.Employee{ID: "  e2 ", Name: "Vikram Singh"}, resp.Employee)

	got, err := svc.GetByID(ctx, "E2")
	require.NoError(t, err)
	assert.Equal(t, "  e2 ", got.ID)
	assert.Equal(t, "E2", got.Key())

	got, err = svc.GetByID(ctx, "E2")
	require.NoError(t, err)
	assert.Equal(t, "e2", got.ID)
}

func TestEmployeeService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{ID: "  ", Name: ""})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	assert.Equal(t, map[string]string{"id": "id is required", "name": "name is required"}, verrs.ToMap())
}

func TestEmployeeService_CreateDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{ID: "e1", Name: "New Person"})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	_, err = svc.Create(ctx, employee.CreateEmployeeRequest{ID: "E3", Name: " asha RAO "})
	assert.ErrorIs(t, err, employee.ErrEmployeeNameExists)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEmployeeService_GetByIDBlank(t *testing.T) {
	_, err := newTestService().GetByID(context.Background(), " ")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
