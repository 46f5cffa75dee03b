package employeequeries_test

import (
	"testing"

	"github.com/dalemusser/staffhub/internal/app/store/queries/employeequeries"
	"github.com/dalemusser/staffhub/internal/app/system/paging"
	"github.com/dalemusser/staffhub/internal/testutil"
)

func TestList_DefaultsAndSoftDeleteFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	fixtures.CreateEmployee(ctx, "Ada", "Byron", "ada@example.com", "Engineering")
	fixtures.CreateEmployee(ctx, "Mary", "Shelley", "mary@example.com", "Marketing")
	fixtures.CreateInactiveEmployee(ctx, "Gone", "Person", "gone@example.com", "HR")

	res, err := employeequeries.List(ctx, db, employeequeries.ListFilter{
		Page: paging.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if res.Total != 2 {
		t.Errorf("total: got %d, want 2", res.Total)
	}
	if len(res.Employees) != 2 {
		t.Errorf("employees: got %d, want 2", len(res.Employees))
	}
	// Default sort is lastName ascending.
	if res.SortBy != "lastName" || res.SortOrder != "asc" {
		t.Errorf("effective sort: got %q/%q", res.SortBy, res.SortOrder)
	}
	if res.Employees[0].LastName != "Byron" {
		t.Errorf("first row: got %q, want Byron", res.Employees[0].LastName)
	}
}

func TestList_DepartmentFilterAndFacet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	fixtures.CreateEmployee(ctx, "A", "One", "a@example.com", "Engineering")
	fixtures.CreateEmployee(ctx, "B", "Two", "b@example.com", "Engineering")
	fixtures.CreateEmployee(ctx, "C", "Three", "c@example.com", "Sales")

	res, err := employeequeries.List(ctx, db, employeequeries.ListFilter{
		Department: "Engineering",
		Page:       paging.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if res.Total != 2 {
		t.Errorf("filtered total: got %d, want 2", res.Total)
	}
	for _, e := range res.Employees {
		if e.Department != "Engineering" {
			t.Errorf("unexpected department %q in filtered list", e.Department)
		}
	}

	// Facet ignores the active filter: both departments still listed.
	want := []string{"Engineering", "Sales"}
	if len(res.Departments) != len(want) {
		t.Fatalf("facet: got %v, want %v", res.Departments, want)
	}
	for i, d := range want {
		if res.Departments[i] != d {
			t.Errorf("facet[%d]: got %q, want %q", i, res.Departments[i], d)
		}
	}
}

func TestList_SearchIsCaseAndAccentInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	fixtures.CreateEmployee(ctx, "José", "García", "jose.garcia@example.com", "Finance")
	fixtures.CreateEmployee(ctx, "Mary", "Shelley", "mary@example.com", "Marketing")

	cases := []struct {
		name   string
		search string
		want   int
	}{
		{"uppercase against lowercase email", "JOSE", 1},
		{"unaccented against accented name", "garcia", 1},
		{"substring of last name", "shel", 1},
		{"no match", "zzz", 0},
		{"blank search matches all", "", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := employeequeries.List(ctx, db, employeequeries.ListFilter{
				Search: tc.search,
				Page:   paging.Params{Page: 1, Limit: 10},
			})
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if res.Total != tc.want {
				t.Errorf("search %q: got %d matches, want %d", tc.search, res.Total, tc.want)
			}
		})
	}
}

func TestList_PaginationWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	lastNames := []string{"Abbott", "Baker", "Chen", "Diaz", "Evans"}
	for i, ln := range lastNames {
		fixtures.CreateEmployee(ctx, "Emp", ln, ln+string(rune('a'+i))+"@example.com", "Engineering")
	}

	res, err := employeequeries.List(ctx, db, employeequeries.ListFilter{
		Page: paging.Params{Page: 2, Limit: 2},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if res.Total != 5 || res.Pages != 3 {
		t.Errorf("totals: got total=%d pages=%d, want 5/3", res.Total, res.Pages)
	}
	if len(res.Employees) != 2 {
		t.Fatalf("page size: got %d rows", len(res.Employees))
	}
	if res.Employees[0].LastName != "Chen" || res.Employees[1].LastName != "Diaz" {
		t.Errorf("page 2: got %q, %q; want Chen, Diaz",
			res.Employees[0].LastName, res.Employees[1].LastName)
	}

	// A page past the end is empty, never an error.
	res, err = employeequeries.List(ctx, db, employeequeries.ListFilter{
		Page: paging.Params{Page: 9, Limit: 2},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(res.Employees) != 0 {
		t.Errorf("past-the-end page: got %d rows", len(res.Employees))
	}
	if res.Total != 5 {
		t.Errorf("totals still cover the full set: got %d", res.Total)
	}
}

func TestList_SortAllowList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	fixtures.CreateEmployeeWithSalary(ctx, "Low", "Pay", "low@example.com", "Sales", 50000)
	fixtures.CreateEmployeeWithSalary(ctx, "High", "Earner", "high@example.com", "Sales", 150000)

	res, err := employeequeries.List(ctx, db, employeequeries.ListFilter{
		SortBy:    "salary",
		SortOrder: "desc",
		Page:      paging.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if res.SortBy != "salary" || res.SortOrder != "desc" {
		t.Errorf("effective sort: got %q/%q", res.SortBy, res.SortOrder)
	}
	if res.Employees[0].Salary != 150000 {
		t.Errorf("descending salary: got %v first", res.Employees[0].Salary)
	}

	// Unknown keys and junk orders fall back rather than erroring.
	res, err = employeequeries.List(ctx, db, employeequeries.ListFilter{
		SortBy:    "__proto__",
		SortOrder: "sideways",
		Page:      paging.Params{Page: 1, Limit: 10},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if res.SortBy != "lastName" || res.SortOrder != "asc" {
		t.Errorf("fallback sort: got %q/%q", res.SortBy, res.SortOrder)
	}
}
