package view

import "strings"

// FilterSet tracks the raw filter fields a screen collects from the user.
// Values stay exactly as entered until Normalize turns them into query
// parameters.
type FilterSet struct {
	fields map[string]string
}

// NewFilterSet tracks the given field names, all starting empty.
func NewFilterSet(names ...string) *FilterSet {
	fields := make(map[string]string, len(names))
	for _, n := range names {
		fields[n] = ""
	}
	return &FilterSet{fields: fields}
}

// Set records a raw value for a tracked field. Unknown fields are ignored.
func (f *FilterSet) Set(name, value string) {
	if _, ok := f.fields[name]; ok {
		f.fields[name] = value
	}
}

// Get returns the raw value of a tracked field.
func (f *FilterSet) Get(name string) string {
	return f.fields[name]
}

// Names lists the tracked field names.
func (f *FilterSet) Names() []string {
	names := make([]string, 0, len(f.fields))
	for n := range f.fields {
		names = append(names, n)
	}
	return names
}

// Clear resets every tracked field to the empty string. It does not fetch;
// the caller re-applies the cleared state to load an unfiltered collection.
func (f *FilterSet) Clear() {
	for n := range f.fields {
		f.fields[n] = ""
	}
}

// Normalize returns the tracked fields as clean query parameters.
func (f *FilterSet) Normalize() map[string]string {
	return Normalize(f.fields)
}

// Normalize drops fields whose trimmed value is empty and upper-cases the
// role field, which the API stores as an enum-like string. Other values are
// passed through untouched.
func Normalize(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for name, value := range raw {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if name == "role" {
			value = strings.ToUpper(value)
		}
		out[name] = value
	}
	return out
}
