// internal/app/features/employees/update.go
package employees

import (
	"context"
	"errors"
	"net/http"
	"time"

	employeestore "github.com/dalemusser/staffhub/internal/app/store/employees"
	"github.com/dalemusser/staffhub/internal/app/system/httpjson"
	"github.com/dalemusser/staffhub/internal/app/system/inputval"
	"github.com/dalemusser/staffhub/internal/app/system/normalize"
	"github.com/dalemusser/staffhub/internal/app/system/timeouts"
	"github.com/dalemusser/staffhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
)

// HandleUpdate handles PUT /employees/{id} as a partial update: only
// the fields present in the payload change. The email conflict check
// runs only when the email actually changes, and excludes the record
// being updated so saving an unchanged email never conflicts.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id := chi.URLParam(r, "id")

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.validationFailed(w, []string{"Request body must be valid JSON with known fields only."})
		return
	}
	if req.empty() {
		h.validationFailed(w, []string{"At least one field must be provided."})
		return
	}

	normalizeUpdate(&req)

	if res := inputval.Validate(req); res.HasErrors() {
		h.validationFailed(w, res.Messages())
		return
	}

	emp, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeestore.ErrNotFound) {
			h.notFound(w)
			return
		}
		h.serverError(w, "update employee: load", err)
		return
	}

	if req.Email != nil && *req.Email != emp.Email {
		inUse, err := h.Store.EmailInUse(ctx, *req.Email, emp.ID)
		if err != nil {
			h.serverError(w, "update employee: email lookup", err)
			return
		}
		if inUse {
			h.emailConflict(w)
			return
		}
	}

	applyUpdate(&emp, req)
	emp.UpdatedAt = time.Now().UTC()

	if err := h.Store.Replace(ctx, emp); err != nil {
		h.serverError(w, "update employee", err)
		return
	}

	httpjson.Write(w, http.StatusOK, emp)
}

func normalizeUpdate(req *updateRequest) {
	if req.FirstName != nil {
		*req.FirstName = normalize.Text(*req.FirstName)
	}
	if req.LastName != nil {
		*req.LastName = normalize.Text(*req.LastName)
	}
	if req.Email != nil {
		*req.Email = normalize.Email(*req.Email)
	}
	if req.Department != nil {
		*req.Department = normalize.Text(*req.Department)
	}
	if req.Position != nil {
		*req.Position = normalize.Text(*req.Position)
	}
	if req.HireDate != nil {
		*req.HireDate = normalize.Date(*req.HireDate)
	}
}

func applyUpdate(emp *models.Employee, req updateRequest) {
	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
		emp.FirstNameCI = text.Fold(*req.FirstName)
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
		emp.LastNameCI = text.Fold(*req.LastName)
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.HireDate != nil {
		emp.HireDate = *req.HireDate
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
}
