// Package httperr maps application and persistence failures to HTTP
// responses. Controllers handle the errors they specifically anticipate
// (missing fields, a not-found dependency) by constructing an *Error with
// the right status; anything else falls through to Respond, which
// classifies GORM's translated errors and keeps internal detail out of
// responses unless the app runs in a development environment.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/tienda/config"
	"github.com/shashiranjanraj/tienda/pkg/logger"
	"github.com/shashiranjanraj/tienda/pkg/response"
)

// FieldError is one per-field message in a validation-family response.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// Error is an HTTP-mappable application error.
type Error struct {
	Status  int
	Message string
	Fields  []FieldError
	Err     error // wrapped cause, never serialized outside dev mode
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound builds a 404 error.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// MissingFields builds the 400 error for the required-field fast path.
func MissingFields(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// BadRequest builds a generic 400 error.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Conflict builds a 409 error.
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

// Validation builds a 400 error carrying one message per offending field,
// sorted by field name so responses are deterministic.
func Validation(errs map[string]string) *Error {
	fields := make([]FieldError, 0, len(errs))
	for campo, mensaje := range errs {
		fields = append(fields, FieldError{Campo: campo, Mensaje: mensaje})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Campo < fields[j].Campo })

	return &Error{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Fields:  fields,
	}
}

// isEngineFailure reports whether err originates from the storage engine
// itself rather than from data submitted by the client.
func isEngineFailure(err error) bool {
	return errors.Is(err, gorm.ErrInvalidDB) ||
		errors.Is(err, gorm.ErrInvalidTransaction) ||
		errors.Is(err, gorm.ErrUnsupportedDriver) ||
		errors.Is(err, gorm.ErrNotImplemented)
}

type errorBody struct {
	Error    string       `json:"error"`
	Detalles []FieldError `json:"detalles,omitempty"`
	Mensaje  string       `json:"mensaje,omitempty"`
}

// Respond writes the HTTP response for err. Classification order:
// explicit *Error first, then GORM's translated persistence errors,
// then the uncategorized fallback (err.status semantics live in *Error).
func Respond(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.WithCtx(r.Context())

	var he *Error
	switch {
	case errors.As(err, &he):
		// status chosen by the controller/service; fall through to write

	case errors.Is(err, gorm.ErrRecordNotFound):
		he = NotFound("Record not found")

	case errors.Is(err, gorm.ErrDuplicatedKey):
		he = Conflict("Duplicate value violates a unique constraint")

	case errors.Is(err, gorm.ErrForeignKeyViolated):
		he = &Error{
			Status:  http.StatusBadRequest,
			Message: "Invalid reference to another record",
		}

	case isEngineFailure(err):
		he = &Error{
			Status:  http.StatusInternalServerError,
			Message: "A database error has occurred",
			Err:     err,
		}

	default:
		log.Error("unhandled error", "error", err, "method", r.Method, "path", r.URL.Path)

		body := errorBody{Error: "Internal server error"}
		if config.DevMode() {
			body.Mensaje = err.Error()
		}
		response.JSON(w, http.StatusInternalServerError, body)
		return
	}

	if he.Status >= http.StatusInternalServerError {
		log.Error("request failed", "error", he, "method", r.Method, "path", r.URL.Path)
	}

	response.JSON(w, he.Status, errorBody{Error: he.Message, Detalles: he.Fields})
}
