package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, title string, priority Priority, category string) Item {
	t.Helper()
	it, err := NewItem(title, priority, category)
	require.NoError(t, err)
	return it
}

func storeOf(t *testing.T, titles ...string) Store {
	t.Helper()
	s := NewStore()
	for _, title := range titles {
		s = s.Append(mustItem(t, title, "", ""))
	}
	return s
}

func TestAppendDoesNotMutateReceiver(t *testing.T) {
	before := storeOf(t, "one", "two")
	after := before.Append(mustItem(t, "three", "", ""))

	assert.Len(t, before.Items, 2)
	require.Len(t, after.Items, 3)
	assert.Equal(t, "three", after.Items[2].Title)
}

func TestReplaceUnknownIDIsNoOp(t *testing.T) {
	s := storeOf(t, "one", "two")
	next := s.Replace("nope", func(it Item) Item {
		it.Title = "mutated"
		return it
	})
	assert.Equal(t, s.Items, next.Items)
}

func TestReplaceCopiesBeforeMutating(t *testing.T) {
	s := storeOf(t, "one", "two")
	next := s.Replace(s.Items[1].ID, func(it Item) Item {
		it.Completed = true
		return it
	})

	assert.False(t, s.Items[1].Completed, "receiver changed")
	assert.True(t, next.Items[1].Completed)
	assert.Equal(t, s.Items[1].ID, next.Items[1].ID)
}

func TestRemove(t *testing.T) {
	s := storeOf(t, "one", "two", "three")
	next := s.Remove(s.Items[1].ID)

	require.Len(t, next.Items, 2)
	assert.Equal(t, "one", next.Items[0].Title)
	assert.Equal(t, "three", next.Items[1].Title)
	assert.Len(t, s.Items, 3)

	same := s.Remove("nope")
	assert.Equal(t, s.Items, same.Items)
}

func TestVisibleAppliesFilter(t *testing.T) {
	s := storeOf(t, "one", "two")
	s = s.Replace(s.Items[0].ID, func(it Item) Item {
		it.Completed = true
		return it
	})
	s.Filter = Filter{Kind: FilterActive}

	visible := s.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "two", visible[0].Title)
}

func TestComputeStats(t *testing.T) {
	s := NewStore()
	s = s.Append(mustItem(t, "a", PriorityHigh, ""))
	s = s.Append(mustItem(t, "b", PriorityHigh, ""))
	s = s.Append(mustItem(t, "c", PriorityLow, ""))
	s = s.Replace(s.Items[1].ID, func(it Item) Item {
		it.Completed = true
		return it
	})

	st := ComputeStats(s.Items)
	assert.Equal(t, Stats{Total: 3, Active: 2, Completed: 1, HighPriorityActive: 1}, st)
}

func TestSeedStoreInvariants(t *testing.T) {
	s := SeedStore()
	require.NotEmpty(t, s.Items)
	for _, it := range s.Items {
		assert.NotEmpty(t, it.ID)
		assert.NotEmpty(t, it.Title)
		assert.Equal(t, it.Completed, it.CompletedAt != nil,
			"completed_at must be present exactly when completed: %s", it.Title)
	}
}
