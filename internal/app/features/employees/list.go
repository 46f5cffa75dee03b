// internal/app/features/employees/list.go
package employees

import (
	"context"
	"net/http"

	"github.com/dalemusser/staffhub/internal/app/store/queries/employeequeries"
	"github.com/dalemusser/staffhub/internal/app/system/httpjson"
	"github.com/dalemusser/staffhub/internal/app/system/paging"
	"github.com/dalemusser/staffhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList handles GET /employees: a filtered, searched, sorted,
// paginated listing of active employees plus the department facet.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f := employeequeries.ListFilter{
		Department: query.Get(r, "department"),
		Search:     query.Get(r, "search"),
		SortBy:     query.Get(r, "sortBy"),
		SortOrder:  query.Get(r, "sortOrder"),
		Page:       paging.Parse(r),
	}

	res, err := employeequeries.List(ctx, h.DB, f)
	if err != nil {
		h.serverError(w, "list employees", err)
		return
	}

	httpjson.Write(w, http.StatusOK, listResponse{
		Employees: res.Employees,
		Pagination: paginationMeta{
			Page:  f.Page.Page,
			Limit: f.Page.Limit,
			Total: res.Total,
			Pages: res.Pages,
		},
		Departments: res.Departments,
		Filters: filtersMeta{
			Department: f.Department,
			Search:     f.Search,
			SortBy:     res.SortBy,
			SortOrder:  res.SortOrder,
		},
	})
}
