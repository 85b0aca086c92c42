package apiclient

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageStringBody(t *testing.T) {
	err := &HTTPError{StatusCode: 400, Body: []byte(`"Product name already exists"`)}
	assert.Equal(t, "Product name already exists", Message(err))
}

func TestMessageField(t *testing.T) {
	err := &HTTPError{StatusCode: 404, Body: []byte(`{"message": "Not found"}`)}
	assert.Equal(t, "Not found", Message(err))
}

func TestMessageErrorsObjectJoined(t *testing.T) {
	err := &HTTPError{StatusCode: 400, Body: []byte(`{"errors": {"name": "Name is required", "basePrice": "Price must be positive"}}`)}
	// Values join in key order.
	assert.Equal(t, "Price must be positive, Name is required", Message(err))
}

func TestMessagePlainTextBody(t *testing.T) {
	err := &HTTPError{StatusCode: 502, Body: []byte("upstream connect error")}
	assert.Equal(t, "upstream connect error", Message(err))
}

func TestMessageCannedStatuses(t *testing.T) {
	cases := map[int]string{
		400: "Bad request: The server cannot process the request",
		401: "Unauthorized: Please log in to access this resource",
		403: "Forbidden: You don't have permission to access this resource",
		404: "Not found: The requested resource does not exist",
		500: "Internal server error: Please try again later",
	}
	for status, want := range cases {
		assert.Equal(t, want, Message(&HTTPError{StatusCode: status}))
	}
	assert.Equal(t, "Server error (503)", Message(&HTTPError{StatusCode: 503}))
}

func TestMessageEmptyJSONObjectFallsThrough(t *testing.T) {
	err := &HTTPError{StatusCode: 500, Body: []byte(`{}`)}
	assert.Equal(t, "Internal server error: Please try again later", Message(err))
}

func TestMessageNetworkError(t *testing.T) {
	err := &NetworkError{Err: errors.New("dial tcp: connection refused")}
	assert.Equal(t, "Network error: Unable to connect to the server", Message(err))
}

func TestMessageWrappedErrors(t *testing.T) {
	inner := &HTTPError{StatusCode: 404, Body: []byte(`{"message": "gone"}`)}
	assert.Equal(t, "gone", Message(fmt.Errorf("load products: %w", inner)))
}

func TestMessagePassthrough(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "boom", Message(errors.New("boom")))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(&HTTPError{StatusCode: 401}))
	assert.True(t, IsAuthError(&HTTPError{StatusCode: 403}))
	assert.False(t, IsAuthError(&HTTPError{StatusCode: 404}))
	assert.False(t, IsAuthError(&NetworkError{Err: errors.New("down")}))
	assert.False(t, IsAuthError(nil))
}
