package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrIncorrectLoginDetails:   http.StatusUnprocessableEntity,
	service.ErrUnauthenticated:         http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotNoteOwner:            http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrHashingPassword:         http.StatusInternalServerError,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrNoteNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	ErrInvalidJSONBody:     http.StatusBadRequest,
	ErrUnknownOperation:    http.StatusBadRequest,
	ErrMissingRefreshToken: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError serialises err into the standard error envelope.
//
// Validation failures carry the full violation list; every other error maps
// to a bare {message, status} pair. Internal faults never leak their cause:
// the message collapses to the generic status text.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	response := models.ErrorResponse{
		Message: err.Error(),
		Status:  status,
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		response.Message = "validation failed"
		response.Errors = validationErr.Violations
	}

	if status == http.StatusInternalServerError {
		response.Message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, response, status)
}
