package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// HTTPError is a non-2xx response from the backend. The raw body is kept so
// Message can extract whatever the service chose to say.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// NetworkError means the request never reached the server or no response
// was received, as opposed to an HTTP error response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

const networkErrorMessage = "Network error: Unable to connect to the server"

// Message converts any error from this package into the human-readable
// string shown next to a retry control. For HTTP errors the extraction
// priority is: string body, then a "message" field, then the joined values
// of an "errors" object, then a canned per-status message.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if msg := messageFromBody(httpErr.Body); msg != "" {
			return msg
		}
		return statusMessage(httpErr.StatusCode)
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return networkErrorMessage
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An unexpected error occurred"
}

func messageFromBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	switch trimmed[0] {
	case '{':
		var payload struct {
			Message string                     `json:"message"`
			Errors  map[string]json.RawMessage `json:"errors"`
		}
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return ""
		}
		if payload.Message != "" {
			return payload.Message
		}
		if len(payload.Errors) > 0 {
			return joinErrorValues(payload.Errors)
		}
		return ""
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
		return ""
	case '[':
		return ""
	default:
		// Not JSON; some services send plain text.
		return string(trimmed)
	}
}

func joinErrorValues(errs map[string]json.RawMessage) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		var s string
		if err := json.Unmarshal(errs[k], &s); err == nil {
			parts = append(parts, s)
			continue
		}
		parts = append(parts, string(errs[k]))
	}
	return strings.Join(parts, ", ")
}

func statusMessage(status int) string {
	switch status {
	case 400:
		return "Bad request: The server cannot process the request"
	case 401:
		return "Unauthorized: Please log in to access this resource"
	case 403:
		return "Forbidden: You don't have permission to access this resource"
	case 404:
		return "Not found: The requested resource does not exist"
	case 500:
		return "Internal server error: Please try again later"
	default:
		return fmt.Sprintf("Server error (%d)", status)
	}
}

// IsAuthError reports whether err is a 401 or 403 response. Consumers use
// this to schedule their sign-in redirect (with the usual guard against
// redirecting when already on the sign-in route).
func IsAuthError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 401 || httpErr.StatusCode == 403
	}
	return false
}
