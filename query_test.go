package hubgrab

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryValues(t *testing.T) {
	type sample struct {
		State   *string  `json:"state,omitempty"`
		Number  *uint64  `json:"number,omitempty"`
		Labels  []string `json:"labels,omitempty"`
		Flag    *bool    `json:"flag,omitempty"`
		Ignored *string  `json:"ignored,omitempty"`
	}

	state := "open"
	number := uint64(1234)
	flag := true

	values, err := queryValues(&sample{
		State:  &state,
		Number: &number,
		Labels: []string{"help wanted", "good first issue"},
		Flag:   &flag,
	})
	require.NoError(t, err)

	want := url.Values{
		"state":  {"open"},
		"number": {"1234"},
		"labels": {"help wanted,good first issue"},
		"flag":   {"true"},
	}
	assert.Equal(t, want, values)
}

func TestQueryValuesOmitsUnset(t *testing.T) {
	type sample struct {
		A *string  `json:"a,omitempty"`
		B *int     `json:"b,omitempty"`
		C []string `json:"c,omitempty"`
	}

	values, err := queryValues(&sample{})
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestQueryValuesIdempotent(t *testing.T) {
	type sample struct {
		State *string `json:"state,omitempty"`
		Page  *int    `json:"page,omitempty"`
	}

	state := "closed"
	page := 3
	q := &sample{State: &state, Page: &page}

	first, err := queryValues(q)
	require.NoError(t, err)
	second, err := queryValues(q)
	require.NoError(t, err)

	assert.Equal(t, first.Encode(), second.Encode())
}

func TestQueryValuesRejectsNested(t *testing.T) {
	type inner struct {
		X int `json:"x"`
	}
	type sample struct {
		Nested *inner `json:"nested,omitempty"`
	}

	_, err := queryValues(&sample{Nested: &inner{X: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested")
}
