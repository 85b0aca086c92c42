package list

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name    string
	Email   string
	Phone   string
	Status  string
	Created string
}

var personMatcher = Matcher[person]{
	Fields:    func(p person) []string { return []string{p.Name, p.Email} },
	RawFields: func(p person) []string { return []string{p.Phone} },
	Status:    func(p person) string { return p.Status },
	CreatedAt: func(p person) string { return p.Created },
}

func TestApplySearchCaseInsensitive(t *testing.T) {
	people := []person{
		{Name: "Alice ABC"},
		{Name: "bob abc"},
		{Name: "Carol"},
	}

	got := Apply(people, FilterState{SearchTerm: "ABC"}, personMatcher)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice ABC", got[0].Name)
	assert.Equal(t, "bob abc", got[1].Name)
}

func TestApplySearchORAcrossFields(t *testing.T) {
	people := []person{
		{Name: "Alice", Email: "alice@shop.test"},
		{Name: "Bob", Email: "hit@shop.test"},
		{Name: "hit person", Email: "c@shop.test"},
	}

	got := Apply(people, FilterState{SearchTerm: "hit"}, personMatcher)
	assert.Len(t, got, 2)
}

func TestApplyRawFieldsKeepCase(t *testing.T) {
	people := []person{
		{Name: "Alice", Phone: "+84901234567"},
		{Name: "Bob", Phone: "+84987654321"},
	}

	got := Apply(people, FilterState{SearchTerm: "90123"}, personMatcher)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].Name)
}

func TestApplyStatusANDSearch(t *testing.T) {
	people := []person{
		{Name: "shirt one", Status: "In Stock"},
		{Name: "shirt two", Status: "Out of Stock"},
		{Name: "pants", Status: "In Stock"},
	}

	got := Apply(people, FilterState{SearchTerm: "shirt", Status: "In Stock"}, personMatcher)
	require.Len(t, got, 1)
	assert.Equal(t, "shirt one", got[0].Name)
}

func TestApplyStatusAllDisables(t *testing.T) {
	people := []person{
		{Name: "a", Status: "In Stock"},
		{Name: "b", Status: "Out of Stock"},
	}

	assert.Len(t, Apply(people, FilterState{Status: "all"}, personMatcher), 2)
	assert.Len(t, Apply(people, FilterState{Status: ""}, personMatcher), 2)
	assert.Len(t, Apply(people, FilterState{Status: "Out of Stock"}, personMatcher), 1)
}

func TestApplyDateRanges(t *testing.T) {
	now := time.Now()
	people := []person{
		{Name: "today", Created: now.Format(time.RFC3339)},
		{Name: "three days", Created: now.AddDate(0, 0, -3).Format(time.RFC3339)},
		{Name: "two weeks", Created: now.AddDate(0, 0, -14).Format(time.RFC3339)},
		{Name: "two months", Created: now.AddDate(0, 0, -60).Format(time.RFC3339)},
	}

	assert.Len(t, Apply(people, FilterState{DateRange: "today"}, personMatcher), 1)
	assert.Len(t, Apply(people, FilterState{DateRange: "week"}, personMatcher), 2)
	assert.Len(t, Apply(people, FilterState{DateRange: "month"}, personMatcher), 3)
	assert.Len(t, Apply(people, FilterState{DateRange: "all"}, personMatcher), 4)
	assert.Len(t, Apply(people, FilterState{DateRange: ""}, personMatcher), 4)
}

func TestApplyUnparsableDatePasses(t *testing.T) {
	people := []person{
		{Name: "bad date", Created: "yesterday-ish"},
		{Name: "no date"},
	}

	assert.Len(t, Apply(people, FilterState{DateRange: "today"}, personMatcher), 2)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	people := []person{{Name: "a"}, {Name: "b"}}
	_ = Apply(people, FilterState{SearchTerm: "a"}, personMatcher)
	assert.Equal(t, "a", people[0].Name)
	assert.Equal(t, "b", people[1].Name)
}

func TestApplyNilMatchersNeutral(t *testing.T) {
	people := []person{{Name: "a"}, {Name: "b"}}
	got := Apply(people, FilterState{Status: "x", DateRange: "today"}, Matcher[person]{})
	assert.Len(t, got, 2)
}
