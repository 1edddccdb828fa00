package dispatch

import "sort"

// Registration binds a pipeline to the canonical field its results carry
// their text under. The field is fixed at registration time so the engine
// never has to guess which key holds the content.
type Registration struct {
	Pipeline     Pipeline
	ContentField string
}

// Registry maps (category, variant id) to a registered pipeline.
type Registry struct {
	entries map[string]map[string]Registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]map[string]Registration)}
}

// Register binds a pipeline under a category and variant id. Registering
// the same pair twice replaces the previous binding.
func (r *Registry) Register(category, id string, reg Registration) {
	variants, ok := r.entries[category]
	if !ok {
		variants = make(map[string]Registration)
		r.entries[category] = variants
	}
	variants[id] = reg
}

// Resolve looks up the pipeline for a category and variant id.
func (r *Registry) Resolve(category, id string) (Registration, bool) {
	if r == nil {
		return Registration{}, false
	}
	variants, ok := r.entries[category]
	if !ok {
		return Registration{}, false
	}
	reg, ok := variants[id]
	return reg, ok
}

// Categories returns the registered category names, sorted.
func (r *Registry) Categories() []string {
	out := make([]string, 0, len(r.entries))
	for c := range r.entries {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
