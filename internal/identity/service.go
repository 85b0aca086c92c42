package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"shopadmin/internal/apiclient"
	"shopadmin/internal/envelope"
)

// TokenProvider supplies the bearer token for identity-service calls.
// Credentials are injected at construction, never embedded in the binary.
type TokenProvider func(ctx context.Context) (string, error)

// StaticToken wraps a token read from configuration.
func StaticToken(token string) TokenProvider {
	return func(context.Context) (string, error) {
		if token == "" {
			return "", fmt.Errorf("identity token not configured")
		}
		return token, nil
	}
}

// Service talks to the identity service's user endpoints.
type Service struct {
	client *apiclient.Client
	prefix string
	token  TokenProvider
}

func NewService(client *apiclient.Client, prefix string, token TokenProvider) *Service {
	return &Service{client: client, prefix: prefix, token: token}
}

func (s *Service) authOpts(ctx context.Context) (*apiclient.RequestOptions, error) {
	tok, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	return &apiclient.RequestOptions{
		Headers: map[string]string{"Authorization": "Bearer " + tok},
	}, nil
}

// List fetches one page of users (backend pages are 0-based); raw body for
// normalization by the caller.
func (s *Service) List(ctx context.Context, page, size int) ([]byte, error) {
	opts, err := s.authOpts(ctx)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page-1))
	q.Set("size", strconv.Itoa(size))
	return s.client.Get(ctx, s.prefix+"/identity/users?"+q.Encode(), opts)
}

// Get fetches one user; detail responses wrap the record in "data".
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	opts, err := s.authOpts(ctx)
	if err != nil {
		return nil, err
	}
	var wrapped struct {
		Data *User `json:"data"`
	}
	path := s.prefix + "/identity/users/" + url.PathEscape(id)
	if err := s.client.DecodeInto(ctx, http.MethodGet, path, nil, opts, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Data == nil {
		return nil, fmt.Errorf("user detail response had no data")
	}
	return wrapped.Data, nil
}

// Create adds a user.
func (s *Service) Create(ctx context.Context, u *User) error {
	opts, err := s.authOpts(ctx)
	if err != nil {
		return err
	}
	_, err = s.client.Post(ctx, s.prefix+"/identity/users", u, opts)
	return err
}

// Update replaces a user.
func (s *Service) Update(ctx context.Context, id string, u *User) error {
	opts, err := s.authOpts(ctx)
	if err != nil {
		return err
	}
	_, err = s.client.Put(ctx, s.prefix+"/identity/users/"+url.PathEscape(id), u, opts)
	return err
}

// Delete removes a user.
func (s *Service) Delete(ctx context.Context, id string) error {
	opts, err := s.authOpts(ctx)
	if err != nil {
		return err
	}
	_, err = s.client.Delete(ctx, s.prefix+"/identity/users/"+url.PathEscape(id), opts)
	return err
}

// NormalizeUsers handles the identity service's own list shape, a
// top-level {code, result} object that none of the shared envelope probes
// cover. Pagination is always derived from the payload length because the
// endpoint reports none.
func NormalizeUsers(body []byte, prev envelope.PageInfo) envelope.Result[User] {
	res := envelope.Result[User]{Items: []User{}, PageInfo: prev, Kind: envelope.KindUnrecognized}

	var wrapped struct {
		Code   int             `json:"code"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil || !envelope.IsArray(wrapped.Result) {
		return res
	}

	res.Items = envelope.DecodeItems[User](wrapped.Result)
	res.Kind = envelope.KindEnveloped
	pi := prev
	pi.TotalItems = len(res.Items)
	pi.TotalPages = envelope.DerivePages(len(res.Items), prev.PageSize)
	res.PageInfo = pi
	return res
}
