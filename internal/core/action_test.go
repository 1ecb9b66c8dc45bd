package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAdd(t *testing.T) {
	res, err := Apply(NewStore(), Action{Kind: ActionAdd, Title: " buy milk ", Priority: "high", Category: "Home"})
	require.NoError(t, err)
	assert.Equal(t, `Added "buy milk"`, res.Summary)
	assert.Empty(t, res.Message)
	require.Len(t, res.Store.Items, 1)
	assert.Equal(t, PriorityHigh, res.Store.Items[0].Priority)
	assert.Equal(t, "Home", res.Store.Items[0].Category)
}

func TestApplyAddEmptyTitleIsValidationError(t *testing.T) {
	s := storeOf(t, "existing")
	res, err := Apply(s, Action{Kind: ActionAdd, Title: "   "})
	require.ErrorIs(t, err, ErrEmptyTitle)
	assert.Equal(t, s.Items, res.Store.Items)
}

func TestApplyComplete(t *testing.T) {
	s := storeOf(t, "buy milk", "walk dog")
	res, err := Apply(s, Action{Kind: ActionComplete, Identifier: "walk"})
	require.NoError(t, err)
	assert.Equal(t, `Completed "walk dog"`, res.Summary)

	it := res.Store.Items[1]
	assert.True(t, it.Completed)
	require.NotNil(t, it.CompletedAt)
	assert.False(t, s.Items[1].Completed, "input snapshot changed")
}

func TestApplyCompleteIdempotent(t *testing.T) {
	s := storeOf(t, "buy milk")
	first, err := Apply(s, Action{Kind: ActionComplete, Identifier: "1"})
	require.NoError(t, err)

	second, err := Apply(first.Store, Action{Kind: ActionComplete, Identifier: "1"})
	require.NoError(t, err)
	assert.Empty(t, second.Summary)
	assert.Equal(t, `"buy milk" is already complete`, second.Message)
	assert.Equal(t, first.Store.Items, second.Store.Items)
	assert.Equal(t, first.Store.Items[0].CompletedAt, second.Store.Items[0].CompletedAt)
}

func TestApplyCompleteNotFound(t *testing.T) {
	s := storeOf(t, "buy milk")
	res, err := Apply(s, Action{Kind: ActionComplete, Identifier: "9"})
	require.NoError(t, err)
	assert.Empty(t, res.Summary)
	assert.Equal(t, `Couldn't find a task matching "9"`, res.Message)
	assert.Equal(t, res.Message, res.Store.Message)
	assert.Equal(t, s.Items, res.Store.Items)
}

func TestCompleteThenUncompleteRoundTrip(t *testing.T) {
	s := storeOf(t, "buy milk")
	before := s.Items[0]

	completed, err := Apply(s, Action{Kind: ActionComplete, Identifier: "buy"})
	require.NoError(t, err)

	res, err := Apply(completed.Store, Action{Kind: ActionUncomplete, Identifier: "buy"})
	require.NoError(t, err)
	assert.Equal(t, `Marked "buy milk" as active`, res.Summary)
	assert.Equal(t, before, res.Store.Items[0])
}

func TestApplyUncompleteAlreadyActive(t *testing.T) {
	s := storeOf(t, "buy milk")
	res, err := Apply(s, Action{Kind: ActionUncomplete, Identifier: "1"})
	require.NoError(t, err)
	assert.Empty(t, res.Summary)
	assert.Equal(t, `"buy milk" is already active`, res.Message)
	assert.Equal(t, s.Items, res.Store.Items)
}

func TestApplyDelete(t *testing.T) {
	s := storeOf(t, "one", "two")
	res, err := Apply(s, Action{Kind: ActionDelete, Identifier: "first"})
	require.NoError(t, err)
	assert.Equal(t, `Deleted "one"`, res.Summary)
	require.Len(t, res.Store.Items, 1)
	assert.Equal(t, "two", res.Store.Items[0].Title)
}

func TestApplyDeleteNotFound(t *testing.T) {
	s := storeOf(t, "one", "two")
	res, err := Apply(s, Action{Kind: ActionDelete, Identifier: "9"})
	require.NoError(t, err)
	assert.Empty(t, res.Summary)
	assert.Equal(t, `Couldn't find a task matching "9"`, res.Message)
	assert.Equal(t, s.Items, res.Store.Items)
}

func TestApplySetFilter(t *testing.T) {
	s := storeOf(t, "one")

	res, err := Apply(s, Action{Kind: ActionSetFilter, FilterType: "priority", FilterValue: "high"})
	require.NoError(t, err)
	assert.Equal(t, "Filtering by priority", res.Summary)
	assert.Equal(t, Filter{Kind: FilterPriority, Value: "high"}, res.Store.Filter)

	res, err = Apply(res.Store, Action{Kind: ActionSetFilter, FilterType: "all"})
	require.NoError(t, err)
	assert.Equal(t, "Showing all tasks", res.Summary)
	assert.True(t, res.Store.Filter.None())
}

func TestApplyUnknownKindFailsOpen(t *testing.T) {
	s := storeOf(t, "one")
	res, err := Apply(s, Action{Kind: "reticulate_splines"})
	require.NoError(t, err)
	assert.Empty(t, res.Summary)
	assert.Empty(t, res.Message)
	assert.Equal(t, s.Items, res.Store.Items)
}

func TestApplyClearsStaleMessage(t *testing.T) {
	s := storeOf(t, "one")
	s.Message = "old news"

	res, err := Apply(s, Action{Kind: ActionComplete, Identifier: "1"})
	require.NoError(t, err)
	assert.Empty(t, res.Store.Message)
}
