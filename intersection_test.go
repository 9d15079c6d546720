package fst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankier/fst"
	"github.com/frankier/fst/stream"
)

func TestIntersection(t *testing.T) {
	tests := []struct {
		name     string
		streams  []stream.Stream[uint64]
		wantKeys []string
	}{
		{
			name: "disjoint sets share nothing",
			streams: []stream.Stream[uint64]{
				newSet("a", "b", "c"),
				newSet("x", "y", "z"),
			},
			wantKeys: nil,
		},
		{
			name: "overlapping sets keep shared keys",
			streams: []stream.Stream[uint64]{
				newSet("aa", "b", "cc"),
				newSet("b", "cc", "z"),
			},
			wantKeys: []string{"b", "cc"},
		},
		{
			name: "three-way intersection",
			streams: []stream.Stream[uint64]{
				newSet("aa", "b", "cc"),
				newSet("b", "cc", "z"),
				newSet("b"),
			},
			wantKeys: []string{"b"},
		},
		{
			name: "single stream reproduces its key set",
			streams: []stream.Stream[uint64]{
				newSet("a", "b", "c"),
			},
			wantKeys: []string{"a", "b", "c"},
		},
		{
			name:     "no streams is immediately exhausted",
			streams:  nil,
			wantKeys: nil,
		},
		{
			name: "empty stream empties the intersection",
			streams: []stream.Stream[uint64]{
				newSet("a", "b"),
				newSet(),
			},
			wantKeys: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := fst.NewOp[uint64]()
			for _, s := range tt.streams {
				op = op.Add(s)
			}
			assert.Equal(t, tt.wantKeys, drainKeys(t, op.Intersection()))
		})
	}
}

func TestIntersectionSummedOutputs(t *testing.T) {
	tests := []struct {
		name    string
		streams []stream.Stream[uint64]
		want    []stream.Pair[uint64]
	}{
		{
			name: "disjoint maps intersect to nothing",
			streams: []stream.Stream[uint64]{
				newMap(map[string]uint64{"a": 1, "b": 2, "c": 3}),
				newMap(map[string]uint64{"x": 1, "y": 2, "z": 3}),
			},
			want: nil,
		},
		{
			name: "shared key sums across three maps",
			streams: []stream.Stream[uint64]{
				newMap(map[string]uint64{"aa": 1, "b": 2, "cc": 3}),
				newMap(map[string]uint64{"b": 1, "cc": 2, "z": 3}),
				newMap(map[string]uint64{"b": 1}),
			},
			want: []stream.Pair[uint64]{
				{Key: []byte("b"), Output: 4},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := fst.NewOp[uint64]()
			for _, s := range tt.streams {
				op = op.Add(s)
			}
			assert.Equal(t, tt.want, drainSummed(t, op.Intersection()))
		})
	}
}

func TestIntersectionContributionCount(t *testing.T) {
	n := fst.NewOp[uint64]().
		Add(newSet("aa", "b", "cc")).
		Add(newSet("b", "cc", "z")).
		Add(newSet("b", "cc")).
		Intersection()

	count := 0
	for {
		_, outs, ok := n.Next()
		if !ok {
			break
		}
		count++
		require.Len(t, outs, 3)
		assert.Equal(t, []int{0, 1, 2}, indices(outs))
	}
	assert.Equal(t, 2, count)
}

func TestIntersectionStopsAfterStreamExhausts(t *testing.T) {
	// The second stream ends at "b"; nothing after it can ever reach a
	// full match again.
	n := fst.NewOp[uint64]().
		Add(newSet("a", "b", "c", "d")).
		Add(newSet("a", "b")).
		Intersection()

	assert.Equal(t, []string{"a", "b"}, drainKeys(t, n))

	_, _, ok := n.Next()
	assert.False(t, ok)
}
