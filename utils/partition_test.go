package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Remainder spread over the leading buckets
		pm := NewPartitionMap(4, 10)
		assert.Equal(t, [][2]int{{0, 3}, {3, 6}, {6, 8}, {8, 10}}, pm.Partitions)
		for k := 0; k < 10; k++ {
			bn, min, max := pm.GetBucket(k)
			assert.True(t, min <= k && k < max)
			kMin, kMax := pm.GetBucketRange(bn)
			assert.Equal(t, [2]int{min, max}, [2]int{kMin, kMax})
		}
		bn, _, _ := pm.GetBucket(10)
		assert.Equal(t, -1, bn)
	}
	{ // More threads than work
		pm := NewPartitionMap(8, 3)
		assert.Equal(t, 3, pm.ParallelDegree)
		assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, pm.Partitions)
	}
	{
		pm := NewPartitionMap(4, 0)
		assert.Equal(t, 1, pm.ParallelDegree)
		assert.Equal(t, [][2]int{{0, 0}}, pm.Partitions)
	}
}

func TestMathHelpers(t *testing.T) {
	assert.Equal(t, 1024., POW(2, 10))
	assert.Equal(t, 0.25, POW(2, -2))
	assert.Equal(t, 1., POW(3, 0))
	assert.InDelta(t, 1048576., POW(2, 20), 1.e-6)
	assert.False(t, IsFinite(math.NaN()))
	assert.True(t, IsFinite(1, 2, 3))
	assert.False(t, IsFinite(1, math.Inf(1)))
}
