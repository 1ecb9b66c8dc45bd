package core

import (
	"slices"
	"time"
)

// Store is the aggregate state: items in insertion order (the order doubles
// as the positional addressing scheme), the active display filter and a
// transient message from the last operation. A Store is a value; every
// transition returns a new one and never touches the receiver's slice.
type Store struct {
	Items   []Item
	Filter  Filter
	Message string
}

// NewStore returns an empty store.
func NewStore() Store { return Store{} }

// SeedStore returns a store pre-filled with a few sample items, so a first
// session has something to talk about.
func SeedStore() Store {
	s := NewStore()
	seed := []struct {
		title    string
		priority Priority
		category string
		done     bool
	}{
		{"Buy groceries", PriorityMedium, "Home", false},
		{"Finish quarterly report", PriorityHigh, "Work", false},
		{"Call the dentist", PriorityLow, "Home", false},
		{"Water the plants", PriorityLow, "Home", true},
	}
	for _, sd := range seed {
		it, err := NewItem(sd.title, sd.priority, sd.category)
		if err != nil {
			continue
		}
		if sd.done {
			now := time.Now()
			it.Completed = true
			it.CompletedAt = &now
		}
		s = s.Append(it)
	}
	return s
}

// Append returns a store with the item added at the end.
func (s Store) Append(it Item) Store {
	items := make([]Item, 0, len(s.Items)+1)
	items = append(items, s.Items...)
	items = append(items, it)
	s.Items = items
	return s
}

// Replace returns a store with the identified item passed through mutate.
// When the id is absent the store comes back unchanged; callers that need
// to tell the two apart should Find first.
func (s Store) Replace(id string, mutate func(Item) Item) Store {
	idx := slices.IndexFunc(s.Items, func(it Item) bool { return it.ID == id })
	if idx < 0 {
		return s
	}
	items := slices.Clone(s.Items)
	items[idx] = mutate(items[idx])
	s.Items = items
	return s
}

// Remove returns a store without the identified item.
func (s Store) Remove(id string) Store {
	idx := slices.IndexFunc(s.Items, func(it Item) bool { return it.ID == id })
	if idx < 0 {
		return s
	}
	items := make([]Item, 0, len(s.Items)-1)
	items = append(items, s.Items[:idx]...)
	items = append(items, s.Items[idx+1:]...)
	s.Items = items
	return s
}

// Find looks an item up by id.
func (s Store) Find(id string) (Item, bool) {
	idx := slices.IndexFunc(s.Items, func(it Item) bool { return it.ID == id })
	if idx < 0 {
		return Item{}, false
	}
	return s.Items[idx], true
}

// Visible applies the active filter, preserving store order.
func (s Store) Visible() []Item {
	return s.Filter.Apply(s.Items)
}

// Stats summarizes a sequence of items for headers and status lines.
type Stats struct {
	Total              int
	Active             int
	Completed          int
	HighPriorityActive int
}

// ComputeStats counts items by completion state.
func ComputeStats(items []Item) Stats {
	var st Stats
	st.Total = len(items)
	for _, it := range items {
		if it.Completed {
			st.Completed++
			continue
		}
		st.Active++
		if it.Priority == PriorityHigh {
			st.HighPriorityActive++
		}
	}
	return st
}
