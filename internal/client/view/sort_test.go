package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type row struct {
	Name   string
	Email  string
	Rating int
}

func rowValue(r row, key string) any {
	switch key {
	case "name":
		return r.Name
	case "email":
		return r.Email
	case "rating":
		return r.Rating
	default:
		return nil
	}
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestApply_NoStateKeepsOrder(t *testing.T) {
	e := NewEngine()
	rows := []row{{Name: "b"}, {Name: "a"}}

	got := Apply(e, "users", rows, rowValue)
	require.Equal(t, []string{"b", "a"}, names(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	e := NewEngine()
	e.Toggle("users", "name")
	rows := []row{{Name: "b"}, {Name: "a"}}

	got := Apply(e, "users", rows, rowValue)
	require.Equal(t, []string{"a", "b"}, names(got))
	require.Equal(t, []string{"b", "a"}, names(rows))
}

func TestApply_CaseInsensitiveAscendingThenDescending(t *testing.T) {
	e := NewEngine()
	rows := []row{{Name: "banana"}, {Name: "Apple"}, {Name: "cherry"}}

	e.Toggle("users", "name")
	require.Equal(t, []string{"Apple", "banana", "cherry"}, names(Apply(e, "users", rows, rowValue)))

	e.Toggle("users", "name")
	require.Equal(t, []string{"cherry", "banana", "Apple"}, names(Apply(e, "users", rows, rowValue)))

	// Third toggle cycles back to ascending.
	e.Toggle("users", "name")
	require.Equal(t, []string{"Apple", "banana", "cherry"}, names(Apply(e, "users", rows, rowValue)))
}

func TestToggle_SwitchingKeyResetsToAscending(t *testing.T) {
	e := NewEngine()
	e.Toggle("users", "name")
	e.Toggle("users", "name")

	st, ok := e.State("users")
	require.True(t, ok)
	require.Equal(t, Descending, st.Direction)

	e.Toggle("users", "email")
	st, ok = e.State("users")
	require.True(t, ok)
	require.Equal(t, SortState{Key: "email", Direction: Ascending}, st)
}

func TestApply_NumericComparesByValue(t *testing.T) {
	e := NewEngine()
	e.Toggle("ratings", "rating")
	rows := []row{
		{Name: "ten", Rating: 10},
		{Name: "two", Rating: 2},
		{Name: "nine", Rating: 9},
	}

	// Lexicographically "10" < "2" < "9"; numeric order differs.
	got := Apply(e, "ratings", rows, rowValue)
	require.Equal(t, []string{"two", "nine", "ten"}, names(got))
}

func TestApply_MissingValueSortsAsEmptyString(t *testing.T) {
	e := NewEngine()
	e.Toggle("users", "missing")
	rows := []row{{Name: "b"}, {Name: "a"}}

	// Every value is nil → "", so the stable sort keeps the input order.
	got := Apply(e, "users", rows, rowValue)
	require.Equal(t, []string{"b", "a"}, names(got))
}

func TestApply_StableOnTies(t *testing.T) {
	e := NewEngine()
	e.Toggle("ratings", "rating")
	rows := []row{
		{Name: "first", Rating: 3},
		{Name: "second", Rating: 3},
		{Name: "third", Rating: 1},
	}

	got := Apply(e, "ratings", rows, rowValue)
	require.Equal(t, []string{"third", "first", "second"}, names(got))
}

func TestGroups_Independent(t *testing.T) {
	e := NewEngine()
	e.Toggle("storeA", "rating")
	e.Toggle("storeB", "name")
	e.Toggle("storeB", "name")

	stA, ok := e.State("storeA")
	require.True(t, ok)
	require.Equal(t, SortState{Key: "rating", Direction: Ascending}, stA)

	stB, ok := e.State("storeB")
	require.True(t, ok)
	require.Equal(t, SortState{Key: "name", Direction: Descending}, stB)

	_, ok = e.State("storeC")
	require.False(t, ok)
}
