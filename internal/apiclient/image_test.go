package apiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatImageURL(t *testing.T) {
	cases := map[string]string{
		"":                                 "",
		"https://cdn.example.com/a.png":    "https://cdn.example.com/a.png",
		"http://cdn.example.com/a.png":     "http://cdn.example.com/a.png",
		"www.example.com/shirt.png":        "https://www.example.com/shirt.png",
		"cdn.example.com/images/shirt.png": "https://cdn.example.com/images/shirt.png",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatImageURL(in), "input %q", in)
	}
}

func TestValidImageURL(t *testing.T) {
	assert.Equal(t, PlaceholderImage, ValidImageURL(""))
	assert.Equal(t, PlaceholderImage, ValidImageURL("   "))
	assert.Equal(t, "https://www.example.com/a.png", ValidImageURL("www.example.com/a.png"))
}
