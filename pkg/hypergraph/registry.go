package hypergraph

// VertexRegistry assigns dense sequential vertex indices to entity keys in
// first-seen order. Indices start at 1 and are contiguous; a key keeps the
// index it got on first sight for the lifetime of the registry.
//
// The registry pairs a lookup map with an ordered key slice so iteration is
// reproducible. It is not safe for concurrent mutation; confine it to a
// single producer goroutine.
type VertexRegistry struct {
	keyToIndex map[string]int
	keys       []string // first-seen order; keys[i] holds index i+1
}

// NewVertexRegistry creates an empty registry.
func NewVertexRegistry() *VertexRegistry {
	return &VertexRegistry{
		keyToIndex: make(map[string]int),
	}
}

// IDFor returns the index already assigned to key, or assigns and returns the
// next sequential index.
func (r *VertexRegistry) IDFor(key string) int {
	if idx, exists := r.keyToIndex[key]; exists {
		return idx
	}
	idx := len(r.keys) + 1
	r.keyToIndex[key] = idx
	r.keys = append(r.keys, key)
	return idx
}

// Contains reports whether key has been assigned an index.
func (r *VertexRegistry) Contains(key string) bool {
	_, exists := r.keyToIndex[key]
	return exists
}

// IndexOf returns the index assigned to key and whether it exists. It never
// assigns.
func (r *VertexRegistry) IndexOf(key string) (int, bool) {
	idx, exists := r.keyToIndex[key]
	return idx, exists
}

// KeyOf returns the key holding index, or "" if the index was never assigned.
func (r *VertexRegistry) KeyOf(index int) (string, bool) {
	if index < 1 || index > len(r.keys) {
		return "", false
	}
	return r.keys[index-1], true
}

// Len returns the number of assigned indices.
func (r *VertexRegistry) Len() int { return len(r.keys) }

// Keys returns the assigned keys in first-seen order. The returned slice is
// the registry's own backing array; callers must not modify it.
func (r *VertexRegistry) Keys() []string { return r.keys }

// LabelFor returns source[key] if present, else fallback.
func (r *VertexRegistry) LabelFor(key string, source map[string]string, fallback string) string {
	if label, exists := source[key]; exists {
		return label
	}
	return fallback
}

// Labels returns one label per assigned index, in index order, resolving each
// key through source with fallback for absent entries.
func (r *VertexRegistry) Labels(source map[string]string, fallback string) []string {
	labels := make([]string, len(r.keys))
	for i, key := range r.keys {
		labels[i] = r.LabelFor(key, source, fallback)
	}
	return labels
}
