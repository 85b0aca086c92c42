package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSendsJSONHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	_, err := c.Get(context.Background(), "/products", nil)
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestDoExtraHeaders(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	_, err := c.Get(context.Background(), "/users", &RequestOptions{
		Headers: map[string]string{"Authorization": "Bearer tok-123"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", auth)
}

func TestDoReturnsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [1,2,3]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	body, err := c.Get(context.Background(), "/anything", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": [1,2,3]}`, string(body))
}

func TestDoHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "no such product"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	_, err := c.Get(context.Background(), "/products/xyz", nil)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "no such product", Message(err))
}

func TestDoNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, 0)
	_, err := c.Get(context.Background(), "/products", nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "Network error: Unable to connect to the server", Message(err))
}

func TestDoEncodesPayload(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &received)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	_, err := c.Post(context.Background(), "/orders/1/status", map[string]string{"status": "SHIPPED"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "SHIPPED", received["status"])
}

func TestDecodeInto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "p1", "name": "Shirt"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	var out struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, c.DecodeInto(context.Background(), http.MethodGet, "/products/p1", nil, nil, &out))
	assert.Equal(t, "Shirt", out.Name)
}

func TestPrepareBodyMirrorsThumbnail(t *testing.T) {
	body, err := PrepareBody(map[string]any{
		"name":         "Shirt",
		"thumbnailUrl": "www.example.com/shirt.png",
	}, false)
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(body, &fields))
	assert.Equal(t, "https://www.example.com/shirt.png", fields["thumbnailUrl"])
	assert.Equal(t, "https://www.example.com/shirt.png", fields["thumbnail_url"])
}

func TestPrepareBodyRequireImagePlaceholder(t *testing.T) {
	body, err := PrepareBody(map[string]any{"name": "Shirt"}, true)
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(body, &fields))
	assert.Equal(t, PlaceholderImage, fields["thumbnail_url"])
}

func TestPrepareBodyLeavesNonObjectsAlone(t *testing.T) {
	body, err := PrepareBody([]string{"a", "b"}, true)
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(body))
}

func TestPrepareBodyNoImageFieldsUnchanged(t *testing.T) {
	body, err := PrepareBody(map[string]any{"name": "Shirt", "basePrice": 10}, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Shirt", "basePrice": 10}`, string(body))
}
