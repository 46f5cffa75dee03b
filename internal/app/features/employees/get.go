// internal/app/features/employees/get.go
package employees

import (
	"context"
	"errors"
	"net/http"

	employeestore "github.com/dalemusser/staffhub/internal/app/store/employees"
	"github.com/dalemusser/staffhub/internal/app/system/httpjson"
	"github.com/dalemusser/staffhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ServeGet handles GET /employees/{id}. Lookup is by exact id and does
// not filter on active status, so soft-deleted records stay reachable
// for audit purposes.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "id")

	emp, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeestore.ErrNotFound) {
			h.notFound(w)
			return
		}
		h.serverError(w, "get employee", err)
		return
	}

	httpjson.Write(w, http.StatusOK, emp)
}
