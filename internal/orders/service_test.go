package orders

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/internal/apiclient"
)

func TestListSendsZeroBasedPage(t *testing.T) {
	var gotPath, gotPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPage = r.URL.Query().Get("page")
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	svc := NewService(apiclient.New(srv.URL, 0), "/order-service")
	_, err := svc.List(context.Background(), 4, 100)
	require.NoError(t, err)

	assert.Equal(t, "/order-service/orders", gotPath)
	assert.Equal(t, "3", gotPage)
}

func TestSetStatusPatchesBody(t *testing.T) {
	var gotMethod, gotPath string
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &body)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := NewService(apiclient.New(srv.URL, 0), "/order-service")
	require.NoError(t, svc.SetStatus(context.Background(), "o1", "SHIPPED"))

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/order-service/orders/o1/status", gotPath)
	assert.Equal(t, map[string]string{"status": "SHIPPED"}, body)
}

func TestSetPaymentStatusPatchesBody(t *testing.T) {
	var gotPath string
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &body)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := NewService(apiclient.New(srv.URL, 0), "/order-service")
	require.NoError(t, svc.SetPaymentStatus(context.Background(), "o1", "PAID"))

	assert.Equal(t, "/order-service/orders/o1/payment-status", gotPath)
	assert.Equal(t, map[string]string{"paymentStatus": "PAID"}, body)
}

func TestDisplayStatus(t *testing.T) {
	cases := map[string]string{
		"PENDING":    "Processing",
		"PROCESSING": "Processing",
		"processing": "Processing",
		"SHIPPED":    "Shipped",
		"DELIVERED":  "Delivered",
		"COMPLETED":  "Delivered",
		"CANCELLED":  "Canceled",
		"CANCELED":   "Canceled",
		"":           "Processing",
		"REFUNDED":   "Refunded",
	}
	for status, want := range cases {
		assert.Equal(t, want, DisplayStatus(status), "status %q", status)
	}
}

func TestPaymentMethod(t *testing.T) {
	assert.Equal(t, "Banking", Order{PaymentStatus: "PAID"}.PaymentMethod())
	assert.Equal(t, "COD", Order{PaymentStatus: "PENDING"}.PaymentMethod())
	assert.Equal(t, "COD", Order{}.PaymentMethod())
}

func TestItemCount(t *testing.T) {
	o := Order{OrderDetails: []OrderDetail{{Quantity: 2}, {Quantity: 3}}}
	assert.Equal(t, 5, o.ItemCount())
	assert.Equal(t, 0, Order{}.ItemCount())
}

func TestIsPending(t *testing.T) {
	assert.True(t, Order{Status: "PENDING"}.IsPending())
	assert.True(t, Order{Status: "processing"}.IsPending())
	assert.False(t, Order{Status: "SHIPPED"}.IsPending())
}
