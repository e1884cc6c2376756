package hypergraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readOutput(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestFileWriterWriteAll(t *testing.T) {
	hg := &Hypergraph{
		Edges:        [][]int{{1, 2, 3}, {3, 4}},
		VertexLabels: []string{"Greta Gerwig", "Margot Robbie", LabelMissing, "Ryan Gosling"},
		EdgeLabels:   []string{"Barbie", "La La Land"},
		Clusters:     []int{1, 2, 2, ClusterUnassigned},
		ClusterNames: []string{"director", "actor"},
	}

	dir := t.TempDir()
	writer := NewFileWriter()
	require.NoError(t, writer.WriteAll(hg, dir, "films"))

	assert.Equal(t, "1 2 3\n3 4\n", readOutput(t, dir, "films.edgelist"))
	assert.Equal(t, "Greta Gerwig\nMargot Robbie\nmissing\nRyan Gosling\n", readOutput(t, dir, "films.vertices"))
	assert.Equal(t, "Barbie\nLa La Land\n", readOutput(t, dir, "films.edges"))
	assert.Equal(t, "1\n2\n2\n-1\n", readOutput(t, dir, "films.gt"))
	assert.Equal(t, "director\nactor\n", readOutput(t, dir, "films.clusters"))
}

func TestFileWriterSkipsAbsentSequences(t *testing.T) {
	hg := &Hypergraph{
		Edges:        [][]int{{1, 2}},
		VertexLabels: []string{"prey", "predator"},
	}

	dir := t.TempDir()
	writer := NewFileWriter()
	require.NoError(t, writer.WriteAll(hg, dir, "web"))

	assert.Equal(t, "1 2\n", readOutput(t, dir, "web.edgelist"))
	assert.Equal(t, "prey\npredator\n", readOutput(t, dir, "web.vertices"))

	for _, name := range []string{"web.edges", "web.gt", "web.clusters"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(err), "%s must not be written", name)
	}
}

func TestFileWriterEmptyHypergraph(t *testing.T) {
	hg := &Hypergraph{}

	dir := t.TempDir()
	writer := NewFileWriter()
	require.NoError(t, writer.WriteAll(hg, dir, "empty"))

	assert.Equal(t, "", readOutput(t, dir, "empty.edgelist"))
	assert.Equal(t, "", readOutput(t, dir, "empty.vertices"))
}

func TestFileWriterRefusesInvalid(t *testing.T) {
	hg := &Hypergraph{
		Edges:        [][]int{{1, 9}},
		VertexLabels: []string{"a", "b"},
	}

	parent := t.TempDir()
	dir := filepath.Join(parent, "out")
	writer := NewFileWriter()
	err := writer.WriteAll(hg, dir, "bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Validation failed before any filesystem work.
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileWriterCreatesNestedDir(t *testing.T) {
	hg := &Hypergraph{
		Edges:        [][]int{{1, 2}},
		VertexLabels: []string{"a", "b"},
	}

	dir := filepath.Join(t.TempDir(), "deep", "nested")
	writer := NewFileWriter()
	require.NoError(t, writer.WriteAll(hg, dir, "web"))
	assert.Equal(t, "1 2\n", readOutput(t, dir, "web.edgelist"))
}
