package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"shopadmin/internal/apiclient"
	"shopadmin/internal/envelope"
)

// Service talks to the product service. The product list endpoint counts
// pages from 0, the category endpoint from 1; both quirks belong to the
// backend and are preserved here.
type Service struct {
	client *apiclient.Client
	prefix string
}

func NewService(client *apiclient.Client, prefix string) *Service {
	return &Service{client: client, prefix: prefix}
}

// List fetches one page of products. page is 1-based here and converted to
// the backend's 0-based convention; the raw body is returned for envelope
// normalization by the caller.
func (s *Service) List(ctx context.Context, page, size int) ([]byte, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page-1))
	q.Set("size", strconv.Itoa(size))
	return s.client.Get(ctx, s.prefix+"/product?"+q.Encode(), nil)
}

// SearchByName queries the backend's relative-name search.
func (s *Service) SearchByName(ctx context.Context, name string) ([]byte, error) {
	return s.client.Get(ctx, s.prefix+"/product/search?name="+url.QueryEscape(name), nil)
}

// ByCategory fetches the products of one category.
func (s *Service) ByCategory(ctx context.Context, categoryID int64) ([]byte, error) {
	return s.client.Get(ctx, fmt.Sprintf("%s/category/%d/products", s.prefix, categoryID), nil)
}

// Get fetches one product by ID. Detail responses arrive wrapped in a
// {statusCode, message, data} envelope.
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.getDetail(ctx, s.prefix+"/product/"+url.PathEscape(id))
}

// GetBySlug fetches one product by its URL slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	return s.getDetail(ctx, s.prefix+"/product/slug/"+url.PathEscape(slug))
}

func (s *Service) getDetail(ctx context.Context, path string) (*Product, error) {
	var wrapped struct {
		Data *Product `json:"data"`
	}
	if err := s.client.DecodeInto(ctx, http.MethodGet, path, nil, nil, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Data == nil {
		return nil, fmt.Errorf("product detail response had no data")
	}
	return wrapped.Data, nil
}

// Create adds a product. Product creation requires an image, so the
// placeholder is substituted when none is supplied.
func (s *Service) Create(ctx context.Context, p *Product) error {
	opts := &apiclient.RequestOptions{RequireImage: true}
	_, err := s.client.Post(ctx, s.prefix+"/product", p, opts)
	return err
}

// Update replaces a product.
func (s *Service) Update(ctx context.Context, id string, p *Product) error {
	_, err := s.client.Put(ctx, s.prefix+"/product/"+url.PathEscape(id), p, nil)
	return err
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.client.Delete(ctx, s.prefix+"/product/"+url.PathEscape(id), nil)
	return err
}

// ListCategories fetches one page of categories, normalized in place since
// the category endpoint has a single known shape ({data: {metadata,
// result}}). Unlike the product list, its page parameter is 1-based.
func (s *Service) ListCategories(ctx context.Context, page, size int) ([]Category, envelope.PageInfo, error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	body, err := s.client.Get(ctx, s.prefix+"/category?"+q.Encode(), nil)
	if err != nil {
		return nil, envelope.PageInfo{}, err
	}
	prev := envelope.PageInfo{Page: page, PageSize: size, TotalPages: 1}
	res := envelope.Normalize[Category](body, prev)
	return res.Items, res.PageInfo, nil
}

// GetCategory fetches one category.
func (s *Service) GetCategory(ctx context.Context, id int64) (*Category, error) {
	var cat Category
	path := fmt.Sprintf("%s/category/%d", s.prefix, id)
	if err := s.client.DecodeInto(ctx, http.MethodGet, path, nil, nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// CreateCategory adds a category.
func (s *Service) CreateCategory(ctx context.Context, c *Category) error {
	_, err := s.client.Post(ctx, s.prefix+"/category", c, nil)
	return err
}

// UpdateCategory replaces a category.
func (s *Service) UpdateCategory(ctx context.Context, id int64, c *Category) error {
	_, err := s.client.Put(ctx, fmt.Sprintf("%s/category/%d", s.prefix, id), c, nil)
	return err
}

// DeleteCategory removes a category.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	_, err := s.client.Delete(ctx, fmt.Sprintf("%s/category/%d", s.prefix, id), nil)
	return err
}
