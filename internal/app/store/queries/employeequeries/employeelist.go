// Package employeequeries provides the read-side queries for employee
// listings and department statistics.
package employeequeries

import (
	"context"
	"regexp"
	"strings"

	employeestore "github.com/dalemusser/staffhub/internal/app/store/employees"
	"github.com/dalemusser/staffhub/internal/app/system/paging"
	"github.com/dalemusser/staffhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sortFields is the allow-list of client sort keys mapped to their
// stored field names. Anything else falls back to lastName.
var sortFields = map[string]string{
	"firstName":  "first_name",
	"lastName":   "last_name",
	"email":      "email",
	"department": "department",
	"position":   "position",
	"hireDate":   "hire_date",
	"salary":     "salary",
}

const defaultSortField = "lastName"

// ListFilter defines the filter, sort, and page options for listing
// employees. Zero-value Department/Search mean "no filter".
type ListFilter struct {
	Department string
	Search     string
	SortBy     string
	SortOrder  string
	Page       paging.Params
}

// ListResult contains the requested page plus the metadata computed
// over the full filtered set.
type ListResult struct {
	Employees   []models.Employee
	Total       int
	Pages       int
	Departments []string // facet: all active departments, sorted

	// Effective sort values after allow-list fallback, echoed to the
	// client so it can render the active controls truthfully.
	SortBy    string
	SortOrder string
}

// List runs the employee listing query: active records only, optional
// exact department match, optional case/diacritic-insensitive substring
// search over names and email, store-side sort, then in-memory page
// slicing. The whole matching set is fetched and totals are computed
// from it — a deliberate simplicity tradeoff that holds up only at
// directory scale.
func List(ctx context.Context, db *mongo.Database, f ListFilter) (ListResult, error) {
	var result ListResult

	sortBy, sortField := resolveSort(f.SortBy)
	order := 1
	sortOrder := "asc"
	if strings.EqualFold(f.SortOrder, "desc") {
		order = -1
		sortOrder = "desc"
	}

	filter := bson.M{"is_active": true}
	if f.Department != "" {
		filter["department"] = f.Department
	}
	if q := text.Fold(f.Search); q != "" {
		sub := primitive.Regex{Pattern: regexp.QuoteMeta(q)}
		filter["$or"] = []bson.M{
			{"first_name_ci": sub},
			{"last_name_ci": sub},
			{"email": sub},
		}
	}

	store := employeestore.New(db)

	find := options.Find().SetSort(bson.D{{Key: sortField, Value: order}})
	all, err := store.Find(ctx, filter, find)
	if err != nil {
		return result, err
	}

	p := f.Page.Clamp()
	result.Employees = paging.Window(all, p)
	result.Total = len(all)
	result.Pages = paging.Pages(len(all), p.Limit)
	result.SortBy = sortBy
	result.SortOrder = sortOrder

	// The facet ignores the current filters on purpose: it populates
	// the department dropdown, which must always show every option.
	result.Departments, err = store.DistinctDepartments(ctx)
	if err != nil {
		return result, err
	}
	return result, nil
}

// resolveSort maps the client sort key through the allow-list,
// returning both the effective client-facing key and the stored field.
func resolveSort(sortBy string) (key, field string) {
	if f, ok := sortFields[sortBy]; ok {
		return sortBy, f
	}
	return defaultSortField, sortFields[defaultSortField]
}
