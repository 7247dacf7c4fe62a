// Package params defines the closed parameter vocabularies accepted by
// the list endpoints: states, sort keys, sort directions and the
// three-way value filters GitHub overloads onto single parameters.
//
// Each variant has exactly one wire representation. Decoding an
// unknown string fails instead of silently defaulting, so invalid
// values never travel further than the call that produced them.
package params

import (
	"encoding/json"
	"fmt"
)

// State filters a listing by open/closed state.
type State string

const (
	// StateOpen selects only open items
	StateOpen State = "open"
	// StateClosed selects only closed items
	StateClosed State = "closed"
	// StateAll selects items regardless of state
	StateAll State = "all"
)

// UnmarshalJSON rejects strings outside the declared set.
func (s *State) UnmarshalJSON(data []byte) error {
	raw, err := decodeString(data)
	if err != nil {
		return err
	}
	switch State(raw) {
	case StateOpen, StateClosed, StateAll:
		*s = State(raw)
		return nil
	}
	return fmt.Errorf("params: unknown state %q", raw)
}

// Direction orders sorted results.
type Direction string

const (
	// Ascending sorts smallest first
	Ascending Direction = "asc"
	// Descending sorts largest first
	Descending Direction = "desc"
)

// UnmarshalJSON rejects strings outside the declared set.
func (d *Direction) UnmarshalJSON(data []byte) error {
	raw, err := decodeString(data)
	if err != nil {
		return err
	}
	switch Direction(raw) {
	case Ascending, Descending:
		*d = Direction(raw)
		return nil
	}
	return fmt.Errorf("params: unknown direction %q", raw)
}

// IssueSort is the sort key accepted by the issue list endpoint.
type IssueSort string

const (
	// IssueSortCreated sorts by creation time
	IssueSortCreated IssueSort = "created"
	// IssueSortUpdated sorts by last update time
	IssueSortUpdated IssueSort = "updated"
	// IssueSortComments sorts by comment count
	IssueSortComments IssueSort = "comments"
)

// UnmarshalJSON rejects strings outside the declared set.
func (s *IssueSort) UnmarshalJSON(data []byte) error {
	raw, err := decodeString(data)
	if err != nil {
		return err
	}
	switch IssueSort(raw) {
	case IssueSortCreated, IssueSortUpdated, IssueSortComments:
		*s = IssueSort(raw)
		return nil
	}
	return fmt.Errorf("params: unknown issue sort %q", raw)
}

// PullSort is the sort key accepted by the pull request list endpoint.
type PullSort string

const (
	// PullSortCreated sorts by creation time
	PullSortCreated PullSort = "created"
	// PullSortUpdated sorts by last update time
	PullSortUpdated PullSort = "updated"
	// PullSortPopularity sorts by comment count
	PullSortPopularity PullSort = "popularity"
	// PullSortLongRunning sorts by age, restricted to pulls updated in
	// the last month
	PullSortLongRunning PullSort = "long-running"
)

// UnmarshalJSON rejects strings outside the declared set.
func (s *PullSort) UnmarshalJSON(data []byte) error {
	raw, err := decodeString(data)
	if err != nil {
		return err
	}
	switch PullSort(raw) {
	case PullSortCreated, PullSortUpdated, PullSortPopularity, PullSortLongRunning:
		*s = PullSort(raw)
		return nil
	}
	return fmt.Errorf("params: unknown pull sort %q", raw)
}

func decodeString(data []byte) (string, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", err
	}
	return raw, nil
}
