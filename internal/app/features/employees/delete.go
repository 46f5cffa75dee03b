// internal/app/features/employees/delete.go
package employees

import (
	"context"
	"errors"
	"net/http"
	"time"

	employeestore "github.com/dalemusser/staffhub/internal/app/store/employees"
	"github.com/dalemusser/staffhub/internal/app/system/httpjson"
	"github.com/dalemusser/staffhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleDelete handles DELETE /employees/{id} as a soft delete: the
// record stays in the collection with isActive false and deletedAt
// stamped. Deleting an already soft-deleted employee is idempotent at
// the HTTP level; it re-stamps deletedAt and answers 204 again.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id := chi.URLParam(r, "id")

	emp, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeestore.ErrNotFound) {
			h.notFound(w)
			return
		}
		h.serverError(w, "delete employee: load", err)
		return
	}

	now := time.Now().UTC()
	emp.IsActive = false
	emp.DeletedAt = &now
	emp.UpdatedAt = now

	if err := h.Store.Replace(ctx, emp); err != nil {
		h.serverError(w, "delete employee", err)
		return
	}

	httpjson.NoContent(w)
}
