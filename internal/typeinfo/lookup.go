package typeinfo

import (
	"go/types"
	"iter"

	"golang.org/x/tools/go/types/typeutil"
)

// Lookup indexes values by type identity. Two keys are the same if they are
// [types.Identical], so aliases and separately built instantiations of the
// same generic type share an entry. Unlike [typeutil.Map], it remembers the
// insertion order.
type Lookup[V any] struct {
	index *typeutil.Map // key: types.Type, value: int (position in keys)
	keys  []types.Type
	vals  []V
}

// NewLookup creates a new [Lookup].
func NewLookup[V any]() *Lookup[V] {
	index := new(typeutil.Map)
	index.SetHasher(typeutil.MakeHasher())
	return &Lookup[V]{index: index}
}

// Put adds a value for the key. If the key already exists, it returns the old
// value and false without replacing it.
func (l *Lookup[V]) Put(key types.Type, val V) (V, bool) {
	if i, ok := l.index.At(key).(int); ok {
		return l.vals[i], false
	}
	l.index.Set(key, len(l.keys))
	l.keys = append(l.keys, key)
	l.vals = append(l.vals, val)
	return *new(V), true
}

// Get finds the value for the key.
func (l *Lookup[V]) Get(key types.Type) (V, bool) {
	if l == nil {
		return *new(V), false
	}
	i, ok := l.index.At(key).(int)
	if !ok {
		return *new(V), false
	}
	return l.vals[i], true
}

// Len returns the number of entries.
func (l *Lookup[V]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.keys)
}

// Range iterates all entries in insertion order.
func (l *Lookup[V]) Range() iter.Seq2[types.Type, V] {
	return func(yield func(types.Type, V) bool) {
		if l == nil {
			return
		}
		for i, key := range l.keys {
			if !yield(key, l.vals[i]) {
				return
			}
		}
	}
}
