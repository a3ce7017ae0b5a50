package response

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

// Response is the envelope every catalog endpoint answers with. Data is
// always present and is null on failures.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Errors  []string    `json:"errors,omitempty"`
	Error   string      `json:"error,omitempty"`
}

var debug atomic.Bool

// SetDebug controls whether internal error detail reaches clients.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, errors []string) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Errors:  errors,
	})
}

// BadRequest is used for malformed bodies and missing required fields.
func BadRequest(w http.ResponseWriter, message string, errors []string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, http.StatusBadRequest, message, errors)
}

// ValidationError reports itemized field validation failures.
func ValidationError(w http.ResponseWriter, errors []string) {
	Error(w, http.StatusUnprocessableEntity, "Validation failed", errors)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
}

// InternalServerError hides err from the client unless debug is enabled.
func InternalServerError(w http.ResponseWriter, message string, err error) {
	if message == "" {
		message = "Internal server error"
	}
	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil && debug.Load() {
		resp.Error = err.Error()
	}
	JSON(w, http.StatusInternalServerError, resp)
}
