package core

import (
	"strconv"
	"strings"
)

// FilterKind tags the filter variant. The zero value means "no filter".
type FilterKind string

const (
	FilterAll       FilterKind = ""
	FilterPriority  FilterKind = "priority"
	FilterCompleted FilterKind = "completed"
	FilterActive    FilterKind = "active"
	FilterCategory  FilterKind = "category"
)

// Filter selects a subset of items for display. Internally it is a tagged
// (kind, value) pair; the key:value string form exists only at the chat
// boundary, where the reasoning service speaks strings.
type Filter struct {
	Kind  FilterKind
	Value string
}

// ParseFilter reads the key:value string form. Empty input and the bare
// word "all" mean no filter. An unrecognized key also resolves to no
// filter: a malformed filter must never hide the whole list.
func ParseFilter(s string) Filter {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return Filter{}
	}
	key, value, _ := strings.Cut(s, ":")
	return NewFilter(key, value)
}

// NewFilter builds a filter from the (type, value) pair used by the
// reasoning service's set_filter vocabulary. Unknown types fail open.
func NewFilter(kind, value string) Filter {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "priority":
		return Filter{Kind: FilterPriority, Value: strings.ToLower(value)}
	case "completed":
		return Filter{Kind: FilterCompleted, Value: strings.ToLower(value)}
	case "active":
		// value is ignored: active is shorthand for completed:false
		return Filter{Kind: FilterActive}
	case "category":
		return Filter{Kind: FilterCategory, Value: value}
	}
	return Filter{}
}

// None reports whether the filter selects everything.
func (f Filter) None() bool { return f.Kind == FilterAll }

// String renders the canonical key:value form.
func (f Filter) String() string {
	switch f.Kind {
	case FilterPriority:
		return "priority:" + f.Value
	case FilterCompleted:
		return "completed:" + f.Value
	case FilterActive:
		return "active"
	case FilterCategory:
		return "category:" + f.Value
	}
	return "all"
}

// Describe renders a human label for headers, e.g. "High Priority".
func (f Filter) Describe() string {
	switch f.Kind {
	case FilterPriority:
		return upperFirst(f.Value) + " Priority"
	case FilterCompleted:
		if f.Value == "true" {
			return "Completed Tasks"
		}
		return "Active Tasks"
	case FilterActive:
		return "Active Tasks"
	case FilterCategory:
		return "Category: " + f.Value
	}
	return "All Tasks"
}

// Apply returns the matching items in their original order. The input
// slice is never modified.
func (f Filter) Apply(items []Item) []Item {
	var keep func(Item) bool
	switch f.Kind {
	case FilterPriority:
		keep = func(it Item) bool { return it.Priority == Priority(f.Value) }
	case FilterCompleted:
		keep = func(it Item) bool { return strconv.FormatBool(it.Completed) == f.Value }
	case FilterActive:
		keep = func(it Item) bool { return !it.Completed }
	case FilterCategory:
		keep = func(it Item) bool { return strings.EqualFold(it.Category, f.Value) }
	default:
		return items
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
