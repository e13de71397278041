package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeIDExists   = errors.New("employee with this ID already exists")
	ErrEmployeeNameExists = errors.New("employee with this name already exists")
)
