package sole

import (
	"reflect"
	"sort"

	"github.com/danpasecinic/sole/internal/registry"
	"github.com/danpasecinic/sole/internal/typekey"
)

// Record describes a singleton registration. Owner equals Key exactly when
// the type was defined itself rather than merely embedding a defined type.
type Record struct {
	Key               string
	Owner             string
	ThreadSafe        bool
	AllowSubclass     bool
	AllowReassignment bool
	Initialized       bool
}

// IsSingleton reports whether T itself was defined as a singleton.
// Embedding a defined type does not count.
func IsSingleton[T any]() bool {
	rec, ok := registry.Default().Get(typekey.For[T]())
	return ok && rec.Owner == rec.Key
}

// IsSingletonValue is the value-based variant of IsSingleton. Only a
// reflect.Type counts as a type value; instances, scalars, funcs, and nil
// all report false.
func IsSingletonValue(v any) bool {
	t, ok := v.(reflect.Type)
	if !ok || t == nil {
		return false
	}

	key := typekey.Of(t)
	rec, found := registry.Default().Get(key)
	return found && rec.Owner == key
}

// Lookup returns the registration record for T.
func Lookup[T any]() (Record, bool) {
	rec, ok := registry.Default().Get(typekey.For[T]())
	if !ok {
		return Record{}, false
	}
	return exportRecord(rec), true
}

// Records returns every registration record, sorted by key.
func Records() []Record {
	reg := registry.Default()

	keys := reg.Keys()
	sort.Strings(keys)

	records := make([]Record, 0, len(keys))
	for _, key := range keys {
		rec, ok := reg.Get(key)
		if !ok {
			continue
		}
		records = append(records, exportRecord(rec))
	}
	return records
}

func exportRecord(rec *registry.Record) Record {
	out := Record{
		Key:               rec.Key,
		Owner:             rec.Owner,
		ThreadSafe:        rec.ThreadSafe,
		AllowSubclass:     rec.AllowSubclass,
		AllowReassignment: rec.AllowReassignment,
	}

	if h, ok := rec.Handle.(interface{ Initialized() bool }); ok {
		out.Initialized = h.Initialized()
	}

	return out
}
