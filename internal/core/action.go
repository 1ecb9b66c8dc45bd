package core

import (
	"fmt"
	"time"
)

// ActionKind names a state transition. The values double as the tool names
// the reasoning service emits.
type ActionKind string

const (
	ActionAdd        ActionKind = "add_task"
	ActionComplete   ActionKind = "complete_task"
	ActionUncomplete ActionKind = "uncomplete_task"
	ActionDelete     ActionKind = "delete_task"
	ActionSetFilter  ActionKind = "set_filter"
)

// Action is one structured request against the store. Only the fields for
// the given kind are read; the rest stay empty.
type Action struct {
	Kind        ActionKind
	Title       string
	Priority    string
	Category    string
	Identifier  string
	FilterType  string
	FilterValue string
}

// Result carries the outcome of a single transition. Summary is what
// changed, phrased for the batch transcript. Message is a user-facing note
// for misses and redundant transitions; those are normal outcomes, not
// errors, and leave the items untouched.
type Result struct {
	Store   Store
	Summary string
	Message string
}

// Apply runs one transition. Errors are reserved for validation failures
// (an empty title); everything else either changes the store and yields a
// summary, or reports a message and leaves it as it was. Unknown kinds
// fail open: unchanged store, no summary, no error.
func Apply(s Store, a Action) (Result, error) {
	switch a.Kind {
	case ActionAdd:
		it, err := NewItem(a.Title, ParsePriority(a.Priority), a.Category)
		if err != nil {
			return Result{Store: s}, err
		}
		next := s.Append(it)
		next.Message = ""
		return Result{Store: next, Summary: fmt.Sprintf("Added %q", it.Title)}, nil

	case ActionComplete:
		it, found := Resolve(s.Items, a.Identifier)
		if !found {
			return miss(s, a.Identifier), nil
		}
		if it.Completed {
			return note(s, fmt.Sprintf("%q is already complete", it.Title)), nil
		}
		next := s.Replace(it.ID, func(it Item) Item {
			now := time.Now()
			it.Completed = true
			it.CompletedAt = &now
			return it
		})
		next.Message = ""
		return Result{Store: next, Summary: fmt.Sprintf("Completed %q", it.Title)}, nil

	case ActionUncomplete:
		it, found := Resolve(s.Items, a.Identifier)
		if !found {
			return miss(s, a.Identifier), nil
		}
		if !it.Completed {
			return note(s, fmt.Sprintf("%q is already active", it.Title)), nil
		}
		next := s.Replace(it.ID, func(it Item) Item {
			it.Completed = false
			it.CompletedAt = nil
			return it
		})
		next.Message = ""
		return Result{Store: next, Summary: fmt.Sprintf("Marked %q as active", it.Title)}, nil

	case ActionDelete:
		it, found := Resolve(s.Items, a.Identifier)
		if !found {
			return miss(s, a.Identifier), nil
		}
		next := s.Remove(it.ID)
		next.Message = ""
		return Result{Store: next, Summary: fmt.Sprintf("Deleted %q", it.Title)}, nil

	case ActionSetFilter:
		f := NewFilter(a.FilterType, a.FilterValue)
		next := s
		next.Filter = f
		next.Message = ""
		if f.None() {
			return Result{Store: next, Summary: "Showing all tasks"}, nil
		}
		return Result{Store: next, Summary: "Filtering by " + string(f.Kind)}, nil
	}

	return Result{Store: s}, nil
}

func miss(s Store, identifier string) Result {
	msg := fmt.Sprintf("Couldn't find a task matching %q", identifier)
	s.Message = msg
	return Result{Store: s, Message: msg}
}

func note(s Store, msg string) Result {
	s.Message = msg
	return Result{Store: s, Message: msg}
}
