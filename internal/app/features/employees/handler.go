// internal/app/features/employees/handler.go
package employees

import (
	"net/http"

	employeestore "github.com/dalemusser/staffhub/internal/app/store/employees"
	"github.com/dalemusser/staffhub/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the employee API.
type Handler struct {
	DB    *mongo.Database
	Store *employeestore.Store
	Log   *zap.Logger

	// Dev widens 500 responses with the underlying error message.
	// Outside dev mode the detail stays in the logs.
	Dev bool
}

// NewHandler constructs an employees Handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger, dev bool) *Handler {
	return &Handler{
		DB:    db,
		Store: employeestore.New(db),
		Log:   logger,
		Dev:   dev,
	}
}

// serverError logs a store failure and answers with the generic 500
// envelope, including the detail only in dev mode.
func (h *Handler) serverError(w http.ResponseWriter, msg string, err error) {
	h.Log.Error(msg, zap.Error(err))
	body := errorResponse{Error: "Database operation failed"}
	if h.Dev {
		body.Message = err.Error()
	} else {
		body.Message = "Internal server error"
	}
	httpjson.Write(w, http.StatusInternalServerError, body)
}

func (h *Handler) notFound(w http.ResponseWriter) {
	httpjson.Write(w, http.StatusNotFound, errorResponse{Error: "Employee not found"})
}

func (h *Handler) emailConflict(w http.ResponseWriter) {
	httpjson.Write(w, http.StatusConflict, errorResponse{Error: "Employee with this email already exists"})
}

func (h *Handler) validationFailed(w http.ResponseWriter, details []string) {
	httpjson.Write(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "Validation failed",
		Details: details,
	})
}
