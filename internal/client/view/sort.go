// Package view holds the generic collection logic shared by the list
// screens: group-scoped sorting, filter normalization, and the
// fetch-then-render Collection controller.
package view

import (
	"fmt"
	"sort"
	"strings"
)

// Direction is a sort direction. A group toggles strictly between the two
// once a key has been chosen; there is no "unsorted" state after the first
// activation.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortState is the sort choice of one independent group.
// The zero value means "not sorted yet".
type SortState struct {
	Key       string
	Direction Direction
}

// Engine keeps one SortState per group id so that several tables on one
// screen never share sort state. It is owned by a single screen and is
// never persisted.
type Engine struct {
	groups map[string]SortState
}

func NewEngine() *Engine {
	return &Engine{groups: make(map[string]SortState)}
}

// Toggle activates sorting by key for the given group. Choosing a new key
// starts ascending; choosing the current key flips the direction.
func (e *Engine) Toggle(group, key string) {
	st := e.groups[group]
	if st.Key == key && st.Direction == Ascending {
		st.Direction = Descending
	} else {
		st = SortState{Key: key, Direction: Ascending}
	}
	e.groups[group] = st
}

// State reports the group's current sort state and whether a key has been
// chosen for it.
func (e *Engine) State(group string) (SortState, bool) {
	st, ok := e.groups[group]
	return st, ok && st.Key != ""
}

// ValueFunc extracts the named attribute from a row. Returning nil means
// the attribute is missing and compares as the empty string.
type ValueFunc[T any] func(row T, key string) any

// Apply returns a new ordered copy of rows per the group's sort state.
// The input is never mutated and ties keep their original relative order.
// If the group has no sort state yet, a plain copy is returned.
func Apply[T any](e *Engine, group string, rows []T, value ValueFunc[T]) []T {
	out := make([]T, len(rows))
	copy(out, rows)

	st, ok := e.State(group)
	if !ok {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(value(out[i], st.Key), value(out[j], st.Key))
		if st.Direction == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// compare orders two attribute values: numerically when both sides are
// numbers, otherwise case-insensitively as strings with nil → "".
func compare(a, b any) int {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(strings.ToLower(toString(a)), strings.ToLower(toString(b)))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
