package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"shopadmin/internal/apiclient"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError translates a backend failure into a gateway response. Auth
// failures pass through as 401 so the frontend can redirect to login;
// everything else keeps the human-readable message.
func writeError(w http.ResponseWriter, err error) {
	msg := apiclient.Message(err)

	status := http.StatusBadGateway
	switch {
	case apiclient.IsAuthError(err):
		status = http.StatusUnauthorized
	case isNetworkError(err):
		status = http.StatusGatewayTimeout
	}

	var httpErr *apiclient.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
		status = http.StatusNotFound
	}

	writeJSON(w, status, map[string]string{"error": msg})
}

func isNetworkError(err error) bool {
	var netErr *apiclient.NetworkError
	return errors.As(err, &netErr)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return false
	}
	return true
}
