// internal/app/bootstrap/seed.go
package bootstrap

import (
	"context"
	"time"

	employeestore "github.com/dalemusser/staffhub/internal/app/store/employees"
	"github.com/dalemusser/staffhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// seedEmployee is one row of the demo data set, kept minimal so the
// table below stays readable.
type seedEmployee struct {
	FirstName  string
	LastName   string
	Email      string
	Department string
	Position   string
	HireDate   string
	Salary     float64
}

var sampleEmployees = []seedEmployee{
	{"John", "Smith", "john.smith@company.com", "Engineering", "Senior Software Engineer", "2021-03-15", 95000},
	{"Sarah", "Johnson", "sarah.johnson@company.com", "Engineering", "Tech Lead", "2019-06-01", 125000},
	{"Michael", "Williams", "michael.williams@company.com", "Sales", "Sales Manager", "2020-01-10", 85000},
	{"Emily", "Brown", "emily.brown@company.com", "HR", "HR Director", "2018-09-20", 110000},
	{"David", "Garcia", "david.garcia@company.com", "Finance", "Financial Analyst", "2022-02-14", 75000},
	{"Jennifer", "Martinez", "jennifer.martinez@company.com", "Engineering", "DevOps Engineer", "2021-08-01", 90000},
	{"Robert", "Anderson", "robert.anderson@company.com", "Sales", "Account Executive", "2023-01-15", 70000},
	{"Lisa", "Taylor", "lisa.taylor@company.com", "Marketing", "Marketing Manager", "2020-05-10", 88000},
	{"James", "Thomas", "james.thomas@company.com", "Engineering", "Junior Developer", "2023-06-01", 65000},
	{"Amanda", "Jackson", "amanda.jackson@company.com", "Finance", "Controller", "2017-11-01", 130000},
}

// SeedDemoData inserts the sample employee set when the collection is
// empty. A non-empty collection is left untouched so a restart never
// duplicates or clobbers real data.
func SeedDemoData(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := employeestore.New(db)

	n, err := store.Count(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info("seed skipped: employees collection not empty", zap.Int64("count", n))
		return nil
	}

	now := time.Now().UTC()
	for _, s := range sampleEmployees {
		emp := models.Employee{
			ID:          uuid.NewString(),
			FirstName:   s.FirstName,
			FirstNameCI: text.Fold(s.FirstName),
			LastName:    s.LastName,
			LastNameCI:  text.Fold(s.LastName),
			Email:       s.Email,
			Department:  s.Department,
			Position:    s.Position,
			HireDate:    s.HireDate,
			Salary:      s.Salary,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := store.Insert(ctx, emp); err != nil {
			return err
		}
	}

	logger.Info("seeded sample employees", zap.Int("count", len(sampleEmployees)))
	return nil
}
