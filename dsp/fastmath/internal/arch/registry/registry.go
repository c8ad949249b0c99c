package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Kernels is one in-place block transform per approximated function.
// Each kernel overwrites every element of buf.
type Kernels[F float32 | float64] struct {
	Cosh        func(buf []F)
	Sinh        func(buf []F)
	Tanh        func(buf []F)
	Cos         func(buf []F)
	Sin         func(buf []F)
	Tan         func(buf []F)
	Exp         func(buf []F)
	LogNPlusOne func(buf []F)
}

// Complete reports whether every kernel is set.
func (k *Kernels[F]) Complete() bool {
	return k.Cosh != nil && k.Sinh != nil && k.Tanh != nil &&
		k.Cos != nil && k.Sin != nil && k.Tan != nil &&
		k.Exp != nil && k.LogNPlusOne != nil
}

// OpEntry is one registered block kernel implementation.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Float64   Kernels[float64]
	Float32   Kernels[float32]
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default fastmath kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
