// Package list implements the generic paginated-list state controller
// shared by every resource page: it drives fetch-on-change, owns the
// canonical items and pagination state, applies the in-memory search
// filter, and reconciles deletions.
package list

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"shopadmin/internal/apiclient"
	"shopadmin/internal/envelope"
)

// Phase is the controller's lifecycle state. There is no re-entry into
// PhaseIdle once the first load has started; unloading a consumer simply
// discards the controller.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseErrored
)

// EmptyPolicy decides what a recognized-but-empty page means for a given
// resource. The inconsistency between resources is deliberate and mirrors
// how each backend's page behaves in production; do not unify.
type EmptyPolicy int

const (
	// EmptyNeutral: zero items render as a neutral "nothing here" state.
	EmptyNeutral EmptyPolicy = iota
	// EmptyErrorFirstPage: zero items on page 1 is an error; on a later
	// page the controller steps back one page and reloads.
	EmptyErrorFirstPage
	// EmptyErrorAlways: zero items is an error on every page and the
	// previously shown items stay in place.
	EmptyErrorAlways
)

const unrecognizedFormatMessage = "Invalid API response format"

// NormalizeFunc converts one raw response body into the canonical shape.
type NormalizeFunc[T any] func(body []byte, prev envelope.PageInfo) envelope.Result[T]

// Config parameterizes a Controller for one resource type.
type Config[T any] struct {
	// Name tags log lines, e.g. "products".
	Name string

	// Fetch loads one page (1-based) from the backend and returns the raw
	// body for normalization.
	Fetch func(ctx context.Context, page, size int) ([]byte, error)

	// Delete removes one item by ID. Nil when the resource has no delete
	// operation (orders).
	Delete func(ctx context.Context, id string) error

	// ID extracts the identity used for delete reconciliation.
	ID func(item T) string

	// SearchFields returns the strings matched case-insensitively against
	// the search term.
	SearchFields func(item T) []string

	// RawSearchFields returns strings matched by exact substring, keeping
	// the original case (the customer phone lookup works this way).
	RawSearchFields func(item T) []string

	// Status returns the display status used by the status filter.
	Status func(item T) string

	// CreatedAt returns the item's RFC 3339 creation time for date-range
	// filtering; empty string disables date matching for the item.
	CreatedAt func(item T) string

	// Normalize overrides the shared envelope normalizer; the identity
	// service's top-level {code, result} shape needs this.
	Normalize NormalizeFunc[T]

	// PageSize is the initial page size.
	PageSize int

	// EmptyPolicy and its messages; see the constants above.
	EmptyPolicy   EmptyPolicy
	EmptyMessage  string
	NoMoreMessage string

	// UnrecognizedIsError makes an envelope that matches no known shape an
	// error instead of an empty page.
	UnrecognizedIsError bool

	// GuardStale tags each load with a sequence number and drops responses
	// superseded by a newer load. Off by default: the historical behavior
	// is that the last response to resolve wins.
	GuardStale bool
}

// Controller owns one resource's list state. Methods are safe for
// concurrent use; state is replaced wholesale after each successful load.
type Controller[T any] struct {
	cfg Config[T]

	mu       sync.Mutex
	items    []T
	pageInfo envelope.PageInfo
	phase    Phase
	errMsg   string
	filter   FilterState
	seq      uint64
}

// New creates a controller in PhaseIdle with default pagination state.
func New[T any](cfg Config[T]) *Controller[T] {
	size := cfg.PageSize
	if size <= 0 {
		size = 10
	}
	if cfg.Normalize == nil {
		cfg.Normalize = envelope.Normalize[T]
	}
	return &Controller[T]{
		cfg: cfg,
		pageInfo: envelope.PageInfo{
			Page:       1,
			PageSize:   size,
			TotalPages: 1,
		},
	}
}

// Load fetches the current page and replaces items and pageInfo. On
// failure the previous items stay visible and only the error message
// changes. Load never retries by itself; retry is an explicit consumer
// action that calls Load again.
func (c *Controller[T]) Load(ctx context.Context) {
	for c.loadOnce(ctx) {
	}
}

// loadOnce runs a single fetch cycle and reports whether the empty-page
// step-back policy requires another pass.
func (c *Controller[T]) loadOnce(ctx context.Context) bool {
	c.mu.Lock()
	c.phase = PhaseLoading
	c.errMsg = ""
	c.seq++
	seq := c.seq
	page := c.pageInfo.Page
	size := c.pageInfo.PageSize
	prev := c.pageInfo
	c.mu.Unlock()

	body, err := c.cfg.Fetch(ctx, page, size)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfg.GuardStale && seq != c.seq {
		// A newer load was issued while this one was in flight.
		log.Debug().Str("resource", c.cfg.Name).Uint64("seq", seq).Msg("dropping stale list response")
		return false
	}

	if err != nil {
		c.phase = PhaseErrored
		c.errMsg = apiclient.Message(err)
		log.Error().Str("resource", c.cfg.Name).Int("page", page).Err(err).Msg("list fetch failed")
		return false
	}

	res := c.cfg.Normalize(body, prev)

	if res.Kind == envelope.KindUnrecognized && c.cfg.UnrecognizedIsError {
		c.phase = PhaseErrored
		c.errMsg = unrecognizedFormatMessage
		log.Warn().Str("resource", c.cfg.Name).Int("page", page).Msg("list response matched no known envelope shape")
		return false
	}

	if len(res.Items) == 0 {
		return c.applyEmpty(res, page)
	}

	c.items = res.Items
	c.pageInfo = res.PageInfo
	c.phase = PhaseLoaded
	log.Debug().
		Str("resource", c.cfg.Name).
		Str("shape", res.Kind.String()).
		Int("page", c.pageInfo.Page).
		Int("items", len(res.Items)).
		Msg("list page loaded")
	return false
}

func (c *Controller[T]) applyEmpty(res envelope.Result[T], page int) bool {
	switch c.cfg.EmptyPolicy {
	case EmptyErrorAlways:
		// Keep the previously shown rows and pagination untouched.
		c.phase = PhaseErrored
		c.errMsg = c.cfg.EmptyMessage
		return false

	case EmptyErrorFirstPage:
		if page <= 1 {
			c.items = res.Items
			c.pageInfo = res.PageInfo
			c.pageInfo.Page = 1
			c.phase = PhaseErrored
			c.errMsg = c.cfg.EmptyMessage
			return false
		}
		// Ran past the end: step back one page and reload it.
		c.items = res.Items
		c.pageInfo = res.PageInfo
		c.pageInfo.Page = page - 1
		c.errMsg = c.cfg.NoMoreMessage
		return true

	default:
		c.items = res.Items
		c.pageInfo = res.PageInfo
		c.phase = PhaseLoaded
		return false
	}
}

// NextPage advances one page and reloads. It is a no-op at the last known
// page; the report is whether a fetch was issued.
func (c *Controller[T]) NextPage(ctx context.Context) bool {
	c.mu.Lock()
	if c.pageInfo.Page >= c.pageInfo.TotalPages {
		c.mu.Unlock()
		return false
	}
	c.pageInfo.Page++
	c.mu.Unlock()
	c.Load(ctx)
	return true
}

// PrevPage goes back one page and reloads; a no-op on page 1.
func (c *Controller[T]) PrevPage(ctx context.Context) bool {
	c.mu.Lock()
	if c.pageInfo.Page <= 1 {
		c.mu.Unlock()
		return false
	}
	c.pageInfo.Page--
	c.mu.Unlock()
	c.Load(ctx)
	return true
}

// SetPage positions the controller on a page before the next Load. Values
// below 1 clamp to 1.
func (c *Controller[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.pageInfo.Page = page
	c.mu.Unlock()
}

// SetPageSize replaces the page size; takes effect on the next Load.
func (c *Controller[T]) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	c.mu.Lock()
	c.pageInfo.PageSize = size
	c.mu.Unlock()
}

// Remove deletes one item on the backend and, only after the backend
// confirms, splices it out of the local list without a refetch. A failed
// delete leaves the items exactly as they were and records the error.
func (c *Controller[T]) Remove(ctx context.Context, id string) error {
	if c.cfg.Delete == nil {
		return &UnsupportedError{Resource: c.cfg.Name, Op: "delete"}
	}

	if err := c.cfg.Delete(ctx, id); err != nil {
		c.mu.Lock()
		c.errMsg = apiclient.Message(err)
		c.mu.Unlock()
		log.Error().Str("resource", c.cfg.Name).Str("id", id).Err(err).Msg("delete failed")
		return err
	}

	c.mu.Lock()
	kept := c.items[:0:0]
	for _, item := range c.items {
		if c.cfg.ID(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.mu.Unlock()
	return nil
}

// SetSearch replaces the search term applied by Filtered.
func (c *Controller[T]) SetSearch(term string) {
	c.mu.Lock()
	c.filter.SearchTerm = term
	c.mu.Unlock()
}

// SetStatusFilter replaces the status filter; "" and "all" disable it.
func (c *Controller[T]) SetStatusFilter(status string) {
	c.mu.Lock()
	c.filter.Status = status
	c.mu.Unlock()
}

// SetDateRange replaces the date-range filter ("today", "week", "month";
// "" and "all" disable it).
func (c *Controller[T]) SetDateRange(dateRange string) {
	c.mu.Lock()
	c.filter.DateRange = dateRange
	c.mu.Unlock()
}

// Filtered returns the current page's items with the search, status and
// date filters applied. The match runs only over the loaded page, never
// the full remote collection, and never mutates the underlying items.
func (c *Controller[T]) Filtered() []T {
	c.mu.Lock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	f := c.filter
	c.mu.Unlock()

	return Apply(items, f, Matcher[T]{
		Fields:    c.cfg.SearchFields,
		RawFields: c.cfg.RawSearchFields,
		Status:    c.cfg.Status,
		CreatedAt: c.cfg.CreatedAt,
	})
}

// Items returns a copy of the current page's items, unfiltered.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

// PageInfo returns the current pagination descriptor.
func (c *Controller[T]) PageInfo() envelope.PageInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageInfo
}

// Phase returns the current lifecycle phase.
func (c *Controller[T]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Loading reports whether a load is in flight.
func (c *Controller[T]) Loading() bool { return c.Phase() == PhaseLoading }

// Err returns the current error message, empty when none.
func (c *Controller[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Filter returns the current filter state.
func (c *Controller[T]) Filter() FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// UnsupportedError marks an operation a resource does not expose.
type UnsupportedError struct {
	Resource string
	Op       string
}

func (e *UnsupportedError) Error() string {
	return e.Resource + " does not support " + e.Op
}
