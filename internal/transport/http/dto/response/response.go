package response

import (
	"errors"
	"net/http"
	"strings"

	"villa_cms/internal/storage"
)

type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func ErrorResponseWithDetails(err, details string) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Error:   err,
		Details: details,
	}
}

// FromError maps an error of the storage taxonomy to an HTTP status and
// envelope. Anything outside the taxonomy is reported as an internal error
// without details.
func FromError(err error) (int, ErrorResponse) {
	var ve *storage.ValidationError

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ErrorResponseWithDetails("validation_failed", strings.Join(ve.Errors, "; "))
	case errors.Is(err, storage.ErrValidation):
		return http.StatusBadRequest, ErrorResponseWithDetails("validation_failed", err.Error())
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, ErrorResponseWithDetails("not_found", err.Error())
	case errors.Is(err, storage.ErrPrecondition):
		return http.StatusConflict, ErrorResponseWithDetails("precondition_failed", err.Error())
	case errors.Is(err, storage.ErrStorage):
		return http.StatusServiceUnavailable, ErrorResponseWithDetails("storage_unavailable", "Storage is temporarily unavailable")
	}

	return http.StatusInternalServerError, ErrorResponseWithDetails("internal_error", "Internal server error")
}
