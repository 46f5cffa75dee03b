// internal/app/features/employees/types.go
package employees

import "github.com/dalemusser/staffhub/internal/domain/models"

// createRequest is the POST /employees payload. Everything except
// isActive is required; isActive defaults to true.
type createRequest struct {
	FirstName  string  `json:"firstName" validate:"required,min=1,max=50" label:"First name"`
	LastName   string  `json:"lastName" validate:"required,min=1,max=50" label:"Last name"`
	Email      string  `json:"email" validate:"required,email" label:"Email"`
	Department string  `json:"department" validate:"required,min=1,max=100" label:"Department"`
	Position   string  `json:"position" validate:"required,min=1,max=100" label:"Position"`
	HireDate   string  `json:"hireDate" validate:"required,isodate" label:"Hire date"`
	Salary     float64 `json:"salary" validate:"required,gt=0" label:"Salary"`
	IsActive   *bool   `json:"isActive"`
}

// updateRequest is the PUT /employees/{id} payload: every field is
// optional, but at least one must be present. Absent fields are left
// untouched by the merge.
type updateRequest struct {
	FirstName  *string  `json:"firstName" validate:"omitnil,min=1,max=50" label:"First name"`
	LastName   *string  `json:"lastName" validate:"omitnil,min=1,max=50" label:"Last name"`
	Email      *string  `json:"email" validate:"omitnil,email" label:"Email"`
	Department *string  `json:"department" validate:"omitnil,min=1,max=100" label:"Department"`
	Position   *string  `json:"position" validate:"omitnil,min=1,max=100" label:"Position"`
	HireDate   *string  `json:"hireDate" validate:"omitnil,isodate" label:"Hire date"`
	Salary     *float64 `json:"salary" validate:"omitnil,gt=0" label:"Salary"`
	IsActive   *bool    `json:"isActive"`
}

func (u updateRequest) empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil &&
		u.Department == nil && u.Position == nil && u.HireDate == nil &&
		u.Salary == nil && u.IsActive == nil
}

// listResponse is the GET /employees envelope.
type listResponse struct {
	Employees   []models.Employee `json:"employees"`
	Pagination  paginationMeta    `json:"pagination"`
	Departments []string          `json:"departments"`
	Filters     filtersMeta       `json:"filters"`
}

type paginationMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// filtersMeta echoes the effective filter/sort values back to the
// client so it can render its controls truthfully.
type filtersMeta struct {
	Department string `json:"department"`
	Search     string `json:"search"`
	SortBy     string `json:"sortBy"`
	SortOrder  string `json:"sortOrder"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type validationErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}
