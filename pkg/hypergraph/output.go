package hypergraph

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputWriter interface for flexible output generation
type OutputWriter interface {
	WriteEdgelist(hg *Hypergraph, path string) error
	WriteVertices(hg *Hypergraph, path string) error
	WriteEdges(hg *Hypergraph, path string) error
	WriteGroundTruth(hg *Hypergraph, path string) error
	WriteClusters(hg *Hypergraph, path string) error
	WriteAll(hg *Hypergraph, outputDir string, prefix string) error
}

// FileWriter implements OutputWriter for file-based output
type FileWriter struct{}

// NewFileWriter creates a new file-based output writer
func NewFileWriter() OutputWriter {
	return &FileWriter{}
}

// WriteAll validates the hypergraph and writes the full file family under
// outputDir: <prefix>.edgelist, <prefix>.vertices, and, when the
// corresponding sequences are present, <prefix>.edges, <prefix>.gt and
// <prefix>.clusters. Optional files for absent sequences are skipped rather
// than written empty. Nothing is written if validation fails.
func (fw *FileWriter) WriteAll(hg *Hypergraph, outputDir string, prefix string) error {
	if err := hg.Validate(); err != nil {
		return fmt.Errorf("refusing to write invalid hypergraph: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	edgelistPath := filepath.Join(outputDir, fmt.Sprintf("%s.edgelist", prefix))
	if err := fw.WriteEdgelist(hg, edgelistPath); err != nil {
		return fmt.Errorf("failed to write edgelist: %w", err)
	}

	verticesPath := filepath.Join(outputDir, fmt.Sprintf("%s.vertices", prefix))
	if err := fw.WriteVertices(hg, verticesPath); err != nil {
		return fmt.Errorf("failed to write vertices: %w", err)
	}

	if hg.EdgeLabels != nil {
		edgesPath := filepath.Join(outputDir, fmt.Sprintf("%s.edges", prefix))
		if err := fw.WriteEdges(hg, edgesPath); err != nil {
			return fmt.Errorf("failed to write edges: %w", err)
		}
	}

	if hg.Clusters != nil {
		gtPath := filepath.Join(outputDir, fmt.Sprintf("%s.gt", prefix))
		if err := fw.WriteGroundTruth(hg, gtPath); err != nil {
			return fmt.Errorf("failed to write ground truth: %w", err)
		}
	}

	if hg.ClusterNames != nil {
		clustersPath := filepath.Join(outputDir, fmt.Sprintf("%s.clusters", prefix))
		if err := fw.WriteClusters(hg, clustersPath); err != nil {
			return fmt.Errorf("failed to write clusters: %w", err)
		}
	}

	return nil
}

// WriteEdgelist writes one space-separated line of vertex indices per edge.
func (fw *FileWriter) WriteEdgelist(hg *Hypergraph, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, edge := range hg.Edges {
		parts := make([]string, len(edge))
		for i, v := range edge {
			parts[i] = fmt.Sprintf("%d", v)
		}
		fmt.Fprintf(file, "%s\n", strings.Join(parts, " "))
	}

	return nil
}

// WriteVertices writes one vertex label per line, in vertex index order.
func (fw *FileWriter) WriteVertices(hg *Hypergraph, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, label := range hg.VertexLabels {
		fmt.Fprintf(file, "%s\n", label)
	}

	return nil
}

// WriteEdges writes one edge label per line, in edge order.
func (fw *FileWriter) WriteEdges(hg *Hypergraph, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, label := range hg.EdgeLabels {
		fmt.Fprintf(file, "%s\n", label)
	}

	return nil
}

// WriteGroundTruth writes one cluster id per line, in vertex index order.
// Vertices without an assignment carry ClusterUnassigned.
func (fw *FileWriter) WriteGroundTruth(hg *Hypergraph, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, clusterID := range hg.Clusters {
		fmt.Fprintf(file, "%d\n", clusterID)
	}

	return nil
}

// WriteClusters writes one cluster name per line, in cluster index order.
func (fw *FileWriter) WriteClusters(hg *Hypergraph, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, name := range hg.ClusterNames {
		fmt.Fprintf(file, "%s\n", name)
	}

	return nil
}
