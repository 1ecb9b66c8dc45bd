package core

import (
	"strconv"
	"strings"
)

// Resolve maps a loose textual reference to one item. The steps run in a
// fixed order and the first hit wins:
//
//  1. a 1-based position within the current list ("2")
//  2. the keywords "last" / "last task"
//  3. the keywords "first" / "first task"
//  4. the first item whose title contains the reference, case-insensitively
//
// Positional addressing runs first, so an item titled "42" can be shadowed
// by position 42. That mirrors how the list is presented to the user and is
// intentional.
func Resolve(items []Item, identifier string) (Item, bool) {
	norm := strings.ToLower(strings.TrimSpace(identifier))
	if norm == "" {
		return Item{}, false
	}

	if n, err := strconv.Atoi(norm); err == nil && n >= 1 && n <= len(items) {
		return items[n-1], true
	}

	switch norm {
	case "last", "last task":
		if len(items) == 0 {
			return Item{}, false
		}
		return items[len(items)-1], true
	case "first", "first task":
		if len(items) == 0 {
			return Item{}, false
		}
		return items[0], true
	}

	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), norm) {
			return it, true
		}
	}
	return Item{}, false
}
