package surface

import (
	"iter"
	"slices"
	"strings"
)

// Record maps string keys to values and always iterates in ascending key
// order. It is both the record variant of PropValue and the storage for node
// props, so insertion order never leaks into serialization.
//
// Copies of a Record share storage until one of them is written to; Set
// always reallocates, so a copy never observes writes made through another.
//
// The zero value is an empty record ready to use.
type Record struct {
	entries []entry // sorted by key
}

type entry struct {
	key string
	val PropValue
}

func (Record) isPropValue()      {}
func (Record) TypeName() string { return TypeRecord }

// RecordOf builds a record from a Go map.
func RecordOf(m map[string]PropValue) Record {
	var r Record
	for k, v := range m {
		r.Set(k, v)
	}
	return r
}

func (r Record) search(key string) (int, bool) {
	return slices.BinarySearchFunc(r.entries, key, func(e entry, k string) int {
		return strings.Compare(e.key, k)
	})
}

// Set inserts or replaces key. A nil value is stored as Nil.
func (r *Record) Set(key string, v PropValue) {
	if v == nil {
		v = Nil{}
	}
	i, ok := r.search(key)
	if ok {
		r.entries = slices.Clone(r.entries)
		r.entries[i].val = v
		return
	}
	r.entries = slices.Insert(slices.Clip(r.entries), i, entry{key: key, val: v})
}

// Get returns the value stored under key.
func (r Record) Get(key string) (PropValue, bool) {
	i, ok := r.search(key)
	if !ok {
		return nil, false
	}
	return r.entries[i].val, true
}

// Has reports whether key is present.
func (r Record) Has(key string) bool {
	_, ok := r.search(key)
	return ok
}

// Len returns the number of keys.
func (r Record) Len() int { return len(r.entries) }

// Keys returns the keys in ascending order.
func (r Record) Keys() []string {
	if len(r.entries) == 0 {
		return nil
	}
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.key
	}
	return out
}

// All iterates key/value pairs in ascending key order.
func (r Record) All() iter.Seq2[string, PropValue] {
	return func(yield func(string, PropValue) bool) {
		for _, e := range r.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Clone returns a deep copy; nested lists and records are copied too.
func (r Record) Clone() Record {
	if r.entries == nil {
		return Record{}
	}
	out := Record{entries: make([]entry, len(r.entries))}
	for i, e := range r.entries {
		out.entries[i] = entry{key: e.key, val: cloneValue(e.val)}
	}
	return out
}

// Equal compares keys and values. Key order is canonical, so two records
// built from the same pairs in any order are equal.
func (r Record) Equal(v PropValue) bool {
	o, ok := v.(Record)
	if !ok || len(r.entries) != len(o.entries) {
		return false
	}
	for i, e := range r.entries {
		if o.entries[i].key != e.key || !Equal(e.val, o.entries[i].val) {
			return false
		}
	}
	return true
}

func cloneValue(v PropValue) PropValue {
	switch x := v.(type) {
	case Record:
		return x.Clone()
	case List:
		out := make(List, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	case ActionRef:
		if x.Args != nil {
			x.Args = cloneValue(x.Args).(List)
		}
		return x
	default:
		return v
	}
}
