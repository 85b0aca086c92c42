package inventory

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"shopadmin/internal/apiclient"
)

// Service talks to the inventory service.
type Service struct {
	client *apiclient.Client
	prefix string
}

func NewService(client *apiclient.Client, prefix string) *Service {
	return &Service{client: client, prefix: prefix}
}

// List fetches one page of stock records (backend pages are 0-based); raw
// body for normalization by the caller.
func (s *Service) List(ctx context.Context, page, size int) ([]byte, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page-1))
	q.Set("size", strconv.Itoa(size))
	return s.client.Get(ctx, s.prefix+"/inventory?"+q.Encode(), nil)
}

// Get fetches one stock record.
func (s *Service) Get(ctx context.Context, id int64) (*Item, error) {
	var item Item
	path := fmt.Sprintf("%s/inventory/%d", s.prefix, id)
	if err := s.client.DecodeInto(ctx, http.MethodGet, path, nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ByProduct fetches the stock records for one product across warehouses;
// raw body for normalization by the caller.
func (s *Service) ByProduct(ctx context.Context, productID string) ([]byte, error) {
	return s.client.Get(ctx, s.prefix+"/inventory/product/"+url.PathEscape(productID), nil)
}

// SetQuantity adjusts one record's on-hand quantity. Consumers follow a
// successful adjustment with a full list reload rather than patching the
// local copy.
func (s *Service) SetQuantity(ctx context.Context, id int64, quantity int) error {
	path := fmt.Sprintf("%s/inventory/%d/quantity", s.prefix, id)
	_, err := s.client.Patch(ctx, path, map[string]int{"quantity": quantity}, nil)
	return err
}
