package department

import "errors"

// Department domain errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrNameExists         = errors.New("department name already exists")
	ErrDepartmentNotEmpty = errors.New("cannot delete department with employees")
)
