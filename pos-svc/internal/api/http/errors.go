package httpapi

import (
	"encoding/json"
	"net/http"

	"restopos/pos-svc/internal/domain"

	log "github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func statusFor(err error) int {
	switch domain.Kind(err) {
	case domain.ErrValidation:
		return http.StatusBadRequest
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrInsufficientStock:
		return http.StatusUnprocessableEntity
	case domain.ErrConflict, domain.ErrAlreadyClosed, domain.ErrAlreadyCancelled:
		return http.StatusConflict
	case domain.ErrNoActiveShift:
		return http.StatusPreconditionFailed
	case domain.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err with its category so terminals can tell a stock
// problem from a missing shift. Internal details stay in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.WithError(err).WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("request failed")
		message = domain.ErrInternal.Error()
	}
	writeJSON(w, status, errorResponse{Error: message, Code: domain.Code(err)})
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message, Code: domain.Code(domain.ErrValidation)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warn("failed to encode response")
	}
}
