package apiclient

import (
	"net/url"
	"strings"
)

// PlaceholderImage is substituted when a create operation requires an image
// and none was supplied.
const PlaceholderImage = "https://placehold.co/400x400/EFEFEF/999999?text=No+Image"

// FormatImageURL coerces an image URL to an absolute form. Backend records
// frequently carry schemeless values ("www.example.com/shirt.png"); those
// get an https:// prefix. Empty input stays empty.
func FormatImageURL(raw string) string {
	if raw == "" {
		return ""
	}
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && u.Host != "" {
		return raw
	}
	if strings.HasPrefix(raw, "www.") {
		return "https://" + raw
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// ValidImageURL returns a usable image URL, falling back to the placeholder
// for empty or blank input.
func ValidImageURL(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return PlaceholderImage
	}
	return FormatImageURL(raw)
}
