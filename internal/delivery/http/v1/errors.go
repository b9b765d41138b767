package v1

import (
	"errors"
	"net/http"

	"shopfront/internal/domain"
	"shopfront/pkg/logger"
	"shopfront/pkg/utils"
)

// writeFetchError maps a use case error onto a status code. Upstream
// failures of any kind collapse into one message per resource.
func writeFetchError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := http.StatusBadGateway
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		status, message = http.StatusNotFound, "Product not found"
	case errors.Is(err, domain.ErrEmptyCity):
		status, message = http.StatusBadRequest, "City is required"
	case errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound:
		status = http.StatusNotFound
	}

	logger.WithContext(r.Context()).Warn().Err(err).Int("status", status).Msg("Upstream fetch failed")
	utils.WriteError(w, status, message)
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := domain.SessionIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "No session")
	}
	return id, ok
}
