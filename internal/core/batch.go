package core

import "strings"

// ApplyBatch folds an ordered batch of actions over the store: each action
// sees the effects of the one before it, and a miss never aborts the rest.
// The returned transcript joins every summary with ". " plus a closing
// period; when no action produced a summary it is empty and the caller
// supplies its own acknowledgment. A validation error stops the batch and
// returns the store as of the last good action.
func ApplyBatch(s Store, actions []Action) (Store, string, error) {
	var summaries []string
	cur := s
	for _, a := range actions {
		res, err := Apply(cur, a)
		if err != nil {
			return cur, joinSummaries(summaries), err
		}
		cur = res.Store
		if res.Summary != "" {
			summaries = append(summaries, res.Summary)
		}
	}
	return cur, joinSummaries(summaries), nil
}

func joinSummaries(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return strings.Join(ss, ". ") + "."
}
