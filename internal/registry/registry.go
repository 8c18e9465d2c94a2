package registry

import (
	"fmt"
	"sync"
)

type Record struct {
	Key               string
	Owner             string
	Name              string
	ThreadSafe        bool
	AllowSubclass     bool
	AllowReassignment bool
	Handle            any
}

type Registry struct {
	mu      sync.RWMutex
	records map[string]*Record
}

func New() *Registry {
	return &Registry{
		records: make(map[string]*Record),
	}
}

var defaultRegistry = New()

// Default returns the process-wide registry shared by every definition.
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) Register(rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[rec.Key]; exists {
		return fmt.Errorf("record already registered: %s", rec.Key)
	}

	r.records[rec.Key] = rec
	return nil
}

func (r *Registry) Get(key string) (*Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.records[key]
	return rec, exists
}

func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.records[key]
	return exists
}

func (r *Registry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, key)
}

func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.records))
	for key := range r.records {
		keys = append(keys, key)
	}
	return keys
}

func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records)
}

func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = make(map[string]*Record)
}
