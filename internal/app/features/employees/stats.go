// internal/app/features/employees/stats.go
package employees

import (
	"context"
	"net/http"

	"github.com/dalemusser/staffhub/internal/app/store/queries/employeequeries"
	"github.com/dalemusser/staffhub/internal/app/system/httpjson"
	"github.com/dalemusser/staffhub/internal/app/system/timeouts"
)

// ServeDepartmentStats handles GET /employees/stats/departments:
// per-department headcount and average salary over active employees.
func (h *Handler) ServeDepartmentStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := employeequeries.DepartmentStats(ctx, h.DB)
	if err != nil {
		h.serverError(w, "department stats", err)
		return
	}

	httpjson.Write(w, http.StatusOK, stats)
}
