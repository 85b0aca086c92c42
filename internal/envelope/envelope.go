// Package envelope reconciles the inconsistent response shapes returned by
// the backend services into one canonical {items, pageInfo} structure.
//
// Different services wrap list payloads differently: the product service
// sometimes returns a Spring-style page object, the order service wraps the
// array in a "data" field, the category endpoint nests it under
// "data.result", and a few endpoints return a bare array. No shape is
// authoritative; each recognized shape is probed in a fixed priority order
// and anything else degrades to an empty result rather than an error.
package envelope

import (
	"bytes"
	"encoding/json"
)

// PageInfo is the canonical pagination descriptor. Page is 1-based.
type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Kind identifies which envelope shape matched during normalization.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindSpringPage
	KindEnveloped
	KindBareArray
)

func (k Kind) String() string {
	switch k {
	case KindSpringPage:
		return "spring_page"
	case KindEnveloped:
		return "enveloped"
	case KindBareArray:
		return "bare_array"
	default:
		return "unrecognized"
	}
}

// Result is the outcome of normalizing one response body.
type Result[T any] struct {
	Items    []T
	PageInfo PageInfo
	Kind     Kind
}

type metaProbe struct {
	Page       *int `json:"page"`
	PageSize   *int `json:"pageSize"`
	TotalPages *int `json:"totalPages"`
	TotalItems *int `json:"totalItems"`
}

type pageableProbe struct {
	PageNumber *int `json:"pageNumber"`
	PageSize   *int `json:"pageSize"`
}

type bodyProbe struct {
	Content       json.RawMessage `json:"content"`
	Data          json.RawMessage `json:"data"`
	Metadata      *metaProbe      `json:"metadata"`
	Pageable      *pageableProbe  `json:"pageable"`
	TotalPages    *int            `json:"totalPages"`
	TotalElements *int            `json:"totalElements"`
}

type dataProbe struct {
	Content  json.RawMessage `json:"content"`
	Items    json.RawMessage `json:"items"`
	Result   json.RawMessage `json:"result"`
	Metadata *metaProbe      `json:"metadata"`
}

// Normalize converts a raw response body into the canonical shape. It is a
// pure function over its inputs and never fails: inputs matching none of the
// recognized shapes yield an empty item list with Kind set to
// KindUnrecognized and prev carried through as the pageInfo base.
//
// Detection order, first match wins (the order reflects which backend
// services were integrated first and is load-bearing for real responses that
// satisfy more than one shape):
//
//  1. Spring page object: a top-level "content" array. Pagination comes
//     from pageable.pageNumber+1, pageable.pageSize, totalPages and
//     totalElements, each individually defaulted when absent.
//  2. Enveloped object: a top-level "data" field holding the array itself or
//     nesting it under content, items or result. Pagination merges from
//     "metadata" or "data.metadata", otherwise it is derived from the
//     payload length.
//  3. Bare array: the body is the item array; pagination is derived.
func Normalize[T any](body []byte, prev PageInfo) Result[T] {
	res := Result[T]{Items: []T{}, PageInfo: prev, Kind: KindUnrecognized}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return res
	}

	if trimmed[0] == '{' {
		var p bodyProbe
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return res
		}

		if IsArray(p.Content) {
			res.Items = DecodeItems[T](p.Content)
			res.Kind = KindSpringPage
			res.PageInfo = springPageInfo(p, len(res.Items))
			return res
		}

		if present(p.Data) {
			// Presence of the data field is the match; an empty or
			// unrecognizable interior still counts as an enveloped
			// response with zero items.
			items := envelopedItems[T](p.Data)
			res.Items = items
			res.Kind = KindEnveloped
			res.PageInfo = envelopedPageInfo(p, len(items), prev)
			return res
		}

		return res
	}

	if trimmed[0] == '[' {
		res.Items = DecodeItems[T](trimmed)
		res.Kind = KindBareArray
		pi := prev
		pi.TotalItems = len(res.Items)
		pi.TotalPages = DerivePages(len(res.Items), prev.PageSize)
		res.PageInfo = pi
		return res
	}

	return res
}

func envelopedItems[T any](data json.RawMessage) []T {
	if IsArray(data) {
		return DecodeItems[T](data)
	}
	var d dataProbe
	if err := json.Unmarshal(data, &d); err != nil {
		return []T{}
	}
	switch {
	case IsArray(d.Content):
		return DecodeItems[T](d.Content)
	case IsArray(d.Items):
		return DecodeItems[T](d.Items)
	case IsArray(d.Result):
		return DecodeItems[T](d.Result)
	}
	return []T{}
}

func springPageInfo(p bodyProbe, itemCount int) PageInfo {
	pi := PageInfo{Page: 1, PageSize: 10, TotalPages: 1, TotalItems: itemCount}
	if p.Pageable != nil {
		if p.Pageable.PageNumber != nil {
			pi.Page = *p.Pageable.PageNumber + 1
		}
		if p.Pageable.PageSize != nil && *p.Pageable.PageSize > 0 {
			pi.PageSize = *p.Pageable.PageSize
		}
	}
	if p.TotalPages != nil && *p.TotalPages > 0 {
		pi.TotalPages = *p.TotalPages
	}
	if p.TotalElements != nil && *p.TotalElements > 0 {
		pi.TotalItems = *p.TotalElements
	}
	return pi
}

func envelopedPageInfo(p bodyProbe, itemCount int, prev PageInfo) PageInfo {
	pi := prev
	meta := p.Metadata
	if meta == nil {
		var d dataProbe
		if json.Unmarshal(p.Data, &d) == nil {
			meta = d.Metadata
		}
	}
	if meta != nil {
		if meta.Page != nil && *meta.Page > 0 {
			pi.Page = *meta.Page
		}
		if meta.PageSize != nil && *meta.PageSize > 0 {
			pi.PageSize = *meta.PageSize
		}
		pi.TotalPages = 1
		if meta.TotalPages != nil && *meta.TotalPages > 0 {
			pi.TotalPages = *meta.TotalPages
		}
		pi.TotalItems = itemCount
		if meta.TotalItems != nil && *meta.TotalItems > 0 {
			pi.TotalItems = *meta.TotalItems
		}
		return pi
	}
	pi.TotalItems = itemCount
	pi.TotalPages = DerivePages(itemCount, prev.PageSize)
	return pi
}

// DecodeItems unmarshals a JSON array leniently. A whole-array decode is
// attempted first; if any element conflicts with T the array is re-walked
// element by element and undecodable elements are skipped, so one malformed
// record cannot blank out a page.
func DecodeItems[T any](raw json.RawMessage) []T {
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		if items == nil {
			items = []T{}
		}
		return items
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return []T{}
	}
	items = make([]T, 0, len(elems))
	for _, e := range elems {
		var v T
		if err := json.Unmarshal(e, &v); err == nil {
			items = append(items, v)
		}
	}
	return items
}

// DerivePages computes totalPages as ceil(n / size) for endpoints that do
// not report pagination metadata themselves.
func DerivePages(n, size int) int {
	if size <= 0 {
		size = 1
	}
	return (n + size - 1) / size
}

// IsArray reports whether raw is a JSON array.
func IsArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

func present(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && !bytes.Equal(t, []byte("null"))
}
