package blocks

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderPlan_AssignsPositionIndexes(t *testing.T) {
	plan, err := reorderPlan([]string{"b1", "b2", "b3"}, []string{"b3", "b1", "b2"})
	require.NoError(t, err)

	assert.Equal(t, []orderAssignment{
		{ID: "b3", SortIndex: 0},
		{ID: "b1", SortIndex: 1},
		{ID: "b2", SortIndex: 2},
	}, plan)
}

func TestReorderPlan_MismatchYieldsNoPlan(t *testing.T) {
	current := []string{"b1", "b2", "b3"}

	tests := []struct {
		name     string
		proposed []string
	}{
		{"missing id", []string{"b1", "b2"}},
		{"extra id", []string{"b1", "b2", "b3", "b4"}},
		{"foreign id", []string{"b1", "b2", "x9"}},
		{"duplicate id", []string{"b1", "b2", "b2"}},
		{"empty submission", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := reorderPlan(current, tt.proposed)
			assert.Nil(t, plan)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestReorderPlan_AppliedThenSortedReadsBack(t *testing.T) {
	list := []Block{
		{ID: "b1", SortIndex: 0},
		{ID: "b2", SortIndex: 1},
		{ID: "b3", SortIndex: 2},
	}

	plan, err := reorderPlan([]string{"b1", "b2", "b3"}, []string{"b3", "b1", "b2"})
	require.NoError(t, err)

	indexes := make(map[string]int, len(plan))
	for _, a := range plan {
		indexes[a.ID] = a.SortIndex
	}
	for i := range list {
		list[i].SortIndex = indexes[list[i].ID]
	}

	sort.Slice(list, func(i, j int) bool { return list[i].SortIndex < list[j].SortIndex })

	got := []string{list[0].ID, list[1].ID, list[2].ID}
	assert.Equal(t, []string{"b3", "b1", "b2"}, got)
}

func TestReorderPlan_SingleBlockAndIdentity(t *testing.T) {
	plan, err := reorderPlan([]string{"only"}, []string{"only"})
	require.NoError(t, err)
	assert.Equal(t, []orderAssignment{{ID: "only", SortIndex: 0}}, plan)

	// identity submission is a legal no-op reorder
	plan, err = reorderPlan([]string{"b1", "b2"}, []string{"b1", "b2"})
	require.NoError(t, err)
	assert.Equal(t, 0, plan[0].SortIndex)
	assert.Equal(t, 1, plan[1].SortIndex)
}
