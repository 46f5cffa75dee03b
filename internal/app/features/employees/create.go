// internal/app/features/employees/create.go
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
	"github.com/google/uuid"
)

// HandleCreate handles POST /employees. The payload is decoded
// strictly, normalized, validated, checked for an email conflict among
// active records, then inserted with a fresh UUID id.
//
// The email check and the insert are two operations, not one, so two
// concurrent creates with the same email can both pass the check. At
// directory scale and with human-driven writes this window is accepted;
// the email index stays non-unique because soft-deleted records may
// legitimately share an address with a live one.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		h.validationFailed(w, []string{"Request body must be valid JSON with known fields only."})
		return
	}

	req.FirstName = normalize.Text(req.FirstName)
	req.LastName = normalize.Text(req.LastName)
	req.Email = normalize.Email(req.Email)
	req.Department = normalize.Text(req.Department)
	req.Position = normalize.Text(req.Position)
	req.HireDate = normalize.Date(req.HireDate)

	if res := inputval.Validate(req); res.HasErrors() {
		h.validationFailed(w, res.Messages())
		return
	}

	inUse, err := h.Store.EmailInUse(ctx, req.Email, "")
	if err != nil {
		h.serverError(w, "create employee: email lookup", err)
		return
	}
	if inUse {
		h.emailConflict(w)
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now().UTC()
	emp := models.Employee{
		ID:          uuid.NewString(),
		FirstName:   req.FirstName,
		FirstNameCI: text.Fold(req.FirstName),
		LastName:    req.LastName,
		LastNameCI:  text.Fold(req.LastName),
		Email:       req.Email,
		Department:  req.Department,
		Position:    req.Position,
		HireDate:    req.HireDate,
		Salary:      req.Salary,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.Store.Insert(ctx, emp); err != nil {
		if errors.Is(err, employeestore.ErrDuplicateID) {
			httpjson.Write(w, http.StatusConflict, errorResponse{Error: err.Error()})
			return
		}
		h.serverError(w, "create employee", err)
		return
	}

	httpjson.Write(w, http.StatusCreated, emp)
}
