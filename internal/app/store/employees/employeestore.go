// internal/app/store/employees/employeestore.go
package employeestore

import (
	"context"
	"errors"
	"sort"

	"github.com/dalemusser/staffhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	// ErrNotFound means no employee document has the given id.
	ErrNotFound = errors.New("employee not found")

	// ErrDuplicateID means an insert collided on _id. With UUID ids
	// this is effectively unreachable, but create-if-absent semantics
	// demand it be distinguishable.
	ErrDuplicateID = errors.New("an employee with this id already exists")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("employees")}
}

// Insert persists a new employee with create-if-absent semantics:
// an _id collision is a conflict, never an overwrite.
func (s *Store) Insert(ctx context.Context, emp models.Employee) error {
	_, err := s.c.InsertOne(ctx, emp)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

// GetByID loads an employee by exact id. Soft-deleted records are
// returned too; filtering by active status is the caller's concern.
func (s *Store) GetByID(ctx context.Context, id string) (models.Employee, error) {
	var emp models.Employee
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&emp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Employee{}, ErrNotFound
		}
		return models.Employee{}, err
	}
	return emp, nil
}

// Replace writes back a full employee document keyed by id
// (insert-or-replace). Update and delete flows merge locally and call
// this; last write wins.
func (s *Store) Replace(ctx context.Context, emp models.Employee) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": emp.ID}, emp, opts)
	return err
}

// EmailInUse reports whether an *active* employee other than excludeID
// already has this email. Pass excludeID "" for create flows.
// Soft-deleted records never count; their email may be reused.
func (s *Store) EmailInUse(ctx context.Context, email, excludeID string) (bool, error) {
	filter := bson.M{"email": email, "is_active": true}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	err := s.c.FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Find returns employees matching the given filter with optional find
// options. The caller is responsible for building the filter and
// options (sorting, projection).
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Employee, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var emps []models.Employee
	if err := cur.All(ctx, &emps); err != nil {
		return nil, err
	}
	return emps, nil
}

// Count returns the number of employees matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// DistinctDepartments returns the lexicographically sorted set of
// departments across all active employees, ignoring any list filters.
// This feeds the filter-option facet.
func (s *Store) DistinctDepartments(ctx context.Context) ([]string, error) {
	vals, err := s.c.Distinct(ctx, "department", bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	depts := make([]string, 0, len(vals))
	for _, v := range vals {
		if d, ok := v.(string); ok {
			depts = append(depts, d)
		}
	}
	sort.Strings(depts)
	return depts, nil
}
