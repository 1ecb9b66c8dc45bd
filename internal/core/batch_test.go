package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBatchScenario(t *testing.T) {
	actions := []Action{
		{Kind: ActionAdd, Title: "buy milk", Priority: "medium"},
		{Kind: ActionAdd, Title: "walk dog", Priority: "high"},
		{Kind: ActionComplete, Identifier: "1"},
	}

	final, summary, err := ApplyBatch(NewStore(), actions)
	require.NoError(t, err)
	assert.Equal(t, `Added "buy milk". Added "walk dog". Completed "buy milk".`, summary)

	require.Len(t, final.Items, 2)
	assert.True(t, final.Items[0].Completed)
	assert.Equal(t, "buy milk", final.Items[0].Title)
	assert.False(t, final.Items[1].Completed)
}

func TestApplyBatchMissDoesNotAbort(t *testing.T) {
	s := storeOf(t, "one", "two")
	actions := []Action{
		{Kind: ActionDelete, Identifier: "9"},
		{Kind: ActionComplete, Identifier: "2"},
	}

	final, summary, err := ApplyBatch(s, actions)
	require.NoError(t, err)
	assert.Equal(t, `Completed "two".`, summary)
	require.Len(t, final.Items, 2)
	assert.True(t, final.Items[1].Completed)
}

func TestApplyBatchThreadsStoreThroughActions(t *testing.T) {
	// the second action addresses the item the first one just added
	actions := []Action{
		{Kind: ActionAdd, Title: "fresh"},
		{Kind: ActionComplete, Identifier: "last"},
	}
	final, _, err := ApplyBatch(NewStore(), actions)
	require.NoError(t, err)
	require.Len(t, final.Items, 1)
	assert.True(t, final.Items[0].Completed)
}

func TestApplyBatchEmptySummary(t *testing.T) {
	s := storeOf(t, "one")
	final, summary, err := ApplyBatch(s, []Action{{Kind: ActionDelete, Identifier: "none such"}})
	require.NoError(t, err)
	assert.Empty(t, summary)
	assert.Equal(t, s.Items, final.Items)

	_, summary, err = ApplyBatch(s, nil)
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestApplyBatchStopsOnValidationError(t *testing.T) {
	actions := []Action{
		{Kind: ActionAdd, Title: "good"},
		{Kind: ActionAdd, Title: "  "},
		{Kind: ActionAdd, Title: "never reached"},
	}
	final, summary, err := ApplyBatch(NewStore(), actions)
	require.ErrorIs(t, err, ErrEmptyTitle)
	assert.Equal(t, `Added "good".`, summary)
	require.Len(t, final.Items, 1)
}
