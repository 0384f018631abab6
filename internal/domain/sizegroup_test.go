package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/aryanadla/twinTrim/internal/model"
)

func TestGroupBySize_PrunesSingletons(t *testing.T) {
	candidates := []m.Candidate{
		{Path: "a", Size: 10, Index: 0},
		{Path: "b", Size: 20, Index: 1},
		{Path: "c", Size: 10, Index: 2},
		{Path: "d", Size: 30, Index: 3},
	}

	buckets := GroupBySize(candidates)

	require.Len(t, buckets, 1)
	require.Len(t, buckets[0], 2)
	assert.Equal(t, m.Path("a"), buckets[0][0].Path)
	assert.Equal(t, m.Path("c"), buckets[0][1].Path)
}

func TestGroupBySize_BucketsKeepFirstSeenOrder(t *testing.T) {
	candidates := []m.Candidate{
		{Path: "a", Size: 20, Index: 0},
		{Path: "b", Size: 10, Index: 1},
		{Path: "c", Size: 20, Index: 2},
		{Path: "d", Size: 10, Index: 3},
	}

	buckets := GroupBySize(candidates)

	require.Len(t, buckets, 2)
	assert.Equal(t, uint64(20), buckets[0][0].Size)
	assert.Equal(t, uint64(10), buckets[1][0].Size)
}

func TestGroupBySize_Empty(t *testing.T) {
	assert.Empty(t, GroupBySize(nil))
}
