package handler

import (
	"net/http"

	"github.com/kryva/kryva/internal/failure"
)

// StatusForKind maps a classified provider failure to an HTTP status.
func StatusForKind(k failure.Kind) int {
	switch k {
	case failure.KindRequiresRecentLogin:
		return http.StatusUnauthorized
	case failure.KindPermissionDenied, failure.KindOperationNotAllowed:
		return http.StatusForbidden
	case failure.KindEmailInUse:
		return http.StatusConflict
	case failure.KindInvalidEmail:
		return http.StatusBadRequest
	case failure.KindNetwork:
		return http.StatusServiceUnavailable
	case failure.KindQuotaExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
