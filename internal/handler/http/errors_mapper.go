package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/hoteldesk/internal/service"
	"github.com/MKhiriev/hoteldesk/internal/store"
	"github.com/MKhiriev/hoteldesk/internal/utils"
	"github.com/MKhiriev/hoteldesk/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrEmptyUpdate:             http.StatusBadRequest,

	store.ErrUserAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrHotelNotFound:     http.StatusNotFound,
	store.ErrHotelNotSaved:     http.StatusInternalServerError,

	// Transient infrastructure failure is kept apart from application
	// errors so callers and load balancers can react to it.
	store.ErrStoreUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// reasonFromError reduces err to a short stable reason string safe to expose
// to the caller. Unmapped errors collapse to a generic message so driver
// text never leaks into a response body.
func reasonFromError(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return "internal server error"
}

// writeError sends the uniform JSON error envelope for err.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: reasonFromError(err)}, statusFromError(err))
}
