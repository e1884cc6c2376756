package hypergraph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexRegistryFirstSeenOrder(t *testing.T) {
	r := NewVertexRegistry()

	assert.Equal(t, 1, r.IDFor("f9"))
	assert.Equal(t, 2, r.IDFor("f2"))
	assert.Equal(t, 1, r.IDFor("f9")) // repeat keeps its first index
	assert.Equal(t, 3, r.IDFor("f7"))

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"f9", "f2", "f7"}, r.Keys())
}

func TestVertexRegistryDenseIndices(t *testing.T) {
	r := NewVertexRegistry()
	const n = 100
	for i := 0; i < n; i++ {
		r.IDFor(fmt.Sprintf("key-%d", i))
		r.IDFor(fmt.Sprintf("key-%d", i/2)) // interleaved repeats must not burn indices
	}

	require.Equal(t, n, r.Len())
	seen := make(map[int]bool, n)
	for _, key := range r.Keys() {
		idx, ok := r.IndexOf(key)
		require.True(t, ok)
		require.False(t, seen[idx], "index %d assigned twice", idx)
		require.GreaterOrEqual(t, idx, 1)
		require.LessOrEqual(t, idx, n)
		seen[idx] = true
	}
}

func TestVertexRegistryLookups(t *testing.T) {
	r := NewVertexRegistry()
	r.IDFor("alpha")
	r.IDFor("beta")

	assert.True(t, r.Contains("alpha"))
	assert.False(t, r.Contains("gamma"))

	idx, ok := r.IndexOf("beta")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = r.IndexOf("gamma")
	assert.False(t, ok)

	key, ok := r.KeyOf(1)
	assert.True(t, ok)
	assert.Equal(t, "alpha", key)

	tests := []struct {
		name  string
		index int
	}{
		{"Zero", 0},
		{"Negative", -3},
		{"PastEnd", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := r.KeyOf(tt.index)
			assert.False(t, ok)
		})
	}
}

func TestVertexRegistryLabels(t *testing.T) {
	r := NewVertexRegistry()
	r.IDFor("nm1")
	r.IDFor("nm2")
	r.IDFor("nm3")

	source := map[string]string{
		"nm1": "Greta Gerwig",
		"nm3": "Ryan Gosling",
	}

	assert.Equal(t, "Greta Gerwig", r.LabelFor("nm1", source, LabelMissing))
	assert.Equal(t, LabelMissing, r.LabelFor("nm2", source, LabelMissing))

	labels := r.Labels(source, LabelMissing)
	assert.Equal(t, []string{"Greta Gerwig", LabelMissing, "Ryan Gosling"}, labels)

	// A nil source resolves everything to the fallback.
	assert.Equal(t, []string{LabelMissing, LabelMissing, LabelMissing}, r.Labels(nil, LabelMissing))
}
