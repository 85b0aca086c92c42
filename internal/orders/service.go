package orders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"shopadmin/internal/apiclient"
)

// Service talks to the order service.
type Service struct {
	client *apiclient.Client
	prefix string
}

func NewService(client *apiclient.Client, prefix string) *Service {
	return &Service{client: client, prefix: prefix}
}

// List fetches one page of orders (backend pages are 0-based); raw body
// for normalization by the caller.
func (s *Service) List(ctx context.Context, page, size int) ([]byte, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page-1))
	q.Set("size", strconv.Itoa(size))
	return s.client.Get(ctx, s.prefix+"/orders?"+q.Encode(), nil)
}

// Get fetches one order.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	var wrapped struct {
		Data *Order `json:"data"`
	}
	path := s.prefix + "/orders/" + url.PathEscape(id)
	if err := s.client.DecodeInto(ctx, http.MethodGet, path, nil, nil, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Data == nil {
		return nil, fmt.Errorf("order detail response had no data")
	}
	return wrapped.Data, nil
}

// ByUser fetches all orders placed by one user; raw body for
// normalization by the caller.
func (s *Service) ByUser(ctx context.Context, userID string) ([]byte, error) {
	return s.client.Get(ctx, s.prefix+"/orders/user/"+url.PathEscape(userID), nil)
}

// SetStatus transitions an order's fulfilment status.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	path := s.prefix + "/orders/" + url.PathEscape(id) + "/status"
	_, err := s.client.Patch(ctx, path, map[string]string{"status": status}, nil)
	return err
}

// SetPaymentStatus transitions an order's payment status.
func (s *Service) SetPaymentStatus(ctx context.Context, id, paymentStatus string) error {
	path := s.prefix + "/orders/" + url.PathEscape(id) + "/payment-status"
	_, err := s.client.Patch(ctx, path, map[string]string{"paymentStatus": paymentStatus}, nil)
	return err
}
