package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/staffhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateEmployee creates an active test employee in the given
// department with a position and salary that only matter when a test
// asserts on them. Returns the created employee with its generated ID.
func (f *Fixtures) CreateEmployee(ctx context.Context, firstName, lastName, email, department string) models.Employee {
	f.t.Helper()
	return f.insert(ctx, models.Employee{
		ID:          uuid.NewString(),
		FirstName:   firstName,
		FirstNameCI: text.Fold(firstName),
		LastName:    lastName,
		LastNameCI:  text.Fold(lastName),
		Email:       email,
		Department:  department,
		Position:    "Specialist",
		HireDate:    "2022-03-15",
		Salary:      70000,
		IsActive:    true,
	})
}

// CreateEmployeeWithSalary creates an active test employee with an
// explicit salary, for stats assertions.
func (f *Fixtures) CreateEmployeeWithSalary(ctx context.Context, firstName, lastName, email, department string, salary float64) models.Employee {
	f.t.Helper()
	return f.insert(ctx, models.Employee{
		ID:          uuid.NewString(),
		FirstName:   firstName,
		FirstNameCI: text.Fold(firstName),
		LastName:    lastName,
		LastNameCI:  text.Fold(lastName),
		Email:       email,
		Department:  department,
		Position:    "Specialist",
		HireDate:    "2022-03-15",
		Salary:      salary,
		IsActive:    true,
	})
}

// CreateInactiveEmployee creates a soft-deleted test employee.
func (f *Fixtures) CreateInactiveEmployee(ctx context.Context, firstName, lastName, email, department string) models.Employee {
	f.t.Helper()
	deleted := time.Now().UTC().Add(-time.Hour)
	return f.insert(ctx, models.Employee{
		ID:          uuid.NewString(),
		FirstName:   firstName,
		FirstNameCI: text.Fold(firstName),
		LastName:    lastName,
		LastNameCI:  text.Fold(lastName),
		Email:       email,
		Department:  department,
		Position:    "Specialist",
		HireDate:    "2020-01-06",
		Salary:      65000,
		IsActive:    false,
		DeletedAt:   &deleted,
	})
}

func (f *Fixtures) insert(ctx context.Context, emp models.Employee) models.Employee {
	f.t.Helper()

	now := time.Now().UTC()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	_, err := f.db.Collection("employees").InsertOne(ctx, emp)
	if err != nil {
		f.t.Fatalf("failed to create test employee: %v", err)
	}
	return emp
}
