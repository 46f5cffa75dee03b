// internal/domain/models/employee.go
package models

import "time"

// Employee includes case/diacritic-insensitive fields for search.
// The _id is a UUID string assigned at create time and never changes.
type Employee struct {
	ID          string     `bson:"_id" json:"id"`
	FirstName   string     `bson:"first_name" json:"firstName"`
	FirstNameCI string     `bson:"first_name_ci" json:"-"` // ← always stored
	LastName    string     `bson:"last_name" json:"lastName"`
	LastNameCI  string     `bson:"last_name_ci" json:"-"` // ← always stored
	Email       string     `bson:"email" json:"email"`    // stored lowercased
	Department  string     `bson:"department" json:"department"`
	Position    string     `bson:"position" json:"position"`
	HireDate    string     `bson:"hire_date" json:"hireDate"` // ISO calendar date (YYYY-MM-DD)
	Salary      float64    `bson:"salary" json:"salary"`
	IsActive    bool       `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
	DeletedAt   *time.Time `bson:"deleted_at,omitempty" json:"deletedAt,omitempty"`
}
