// Package core is the deterministic engine behind prata: the item model,
// the pure store transitions, identifier resolution and the display filter
// language. Everything here is a synchronous function from one immutable
// snapshot to the next; the chat layer on top only decides which actions to
// apply.
package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority ranks an item for display and stats.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority maps loose input to a Priority, defaulting to medium.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

// Item is the domain model for a todo entry.
type Item struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ErrEmptyTitle is returned when an item title is empty after trimming.
var ErrEmptyTitle = errors.New("title is empty")

// NewItem builds a fresh item. The title is trimmed and must be non-empty;
// an empty priority defaults to medium. IDs are never reused.
func NewItem(title string, priority Priority, category string) (Item, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Item{}, ErrEmptyTitle
	}
	if priority == "" {
		priority = PriorityMedium
	}
	return Item{
		ID:        uuid.NewString(),
		Title:     title,
		Priority:  priority,
		Category:  strings.TrimSpace(category),
		CreatedAt: time.Now(),
	}, nil
}
