// Package symtab holds the flat symbol table keyed by (name, scope key).
//
// There is no scope tree: ancestry is encoded in the scope key and lookup
// walks outward by truncating the key until a binding is found.
package symtab

import (
	"sort"

	"github.com/desilang/scopec/compiler/internal/scope"
)

// Table maps (name, scope key) to an entry. A table is built by one walker
// and must not be mutated concurrently; Freeze marks it read-only.
type Table struct {
	entries map[TableKey]Entry
	frozen  bool
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: map[TableKey]Entry{}}
}

// Singleton returns a table holding exactly one binding.
func Singleton(name string, key scope.Key, e Entry) *Table {
	t := New()
	t.Insert(name, key, e)
	return t
}

func (t *Table) mustBeMutable() {
	if t.frozen {
		panic("symtab: mutation of frozen table")
	}
}

// Insert adds or overwrites the entry for the exact (name, key) pair.
func (t *Table) Insert(name string, key scope.Key, e Entry) {
	t.mustBeMutable()
	t.entries[TableKey{Name: name, Scope: key}] = e
}

// Define inserts a declaration-origin entry and fails if the exact
// (name, key) pair already holds a declaration.
func (t *Table) Define(name string, key scope.Key, e Entry) error {
	t.mustBeMutable()
	tk := TableKey{Name: name, Scope: key}
	if prev, ok := t.entries[tk]; ok {
		merged, err := reduce(tk, prev, e)
		if err != nil {
			return err
		}
		t.entries[tk] = merged
		return nil
	}
	t.entries[tk] = e
	return nil
}

// Get is an exact-key lookup without ancestor fallback.
func (t *Table) Get(name string, key scope.Key) (Entry, bool) {
	e, ok := t.entries[TableKey{Name: name, Scope: key}]
	return e, ok
}

// Lookup resolves name from key to the nearest enclosing scope that binds
// it. The bool is false when neither key nor any ancestor (down to the
// global scope) holds a binding.
func (t *Table) Lookup(name string, key scope.Key) (Entry, bool) {
	b, ok := t.Resolve(name, key)
	return b.Entry, ok
}

// Resolve is Lookup that also reports the scope level of the binding.
func (t *Table) Resolve(name string, key scope.Key) (Binding, bool) {
	for {
		if e, ok := t.entries[TableKey{Name: name, Scope: key}]; ok {
			return Binding{Name: name, Scope: key, Entry: e}, true
		}
		if key.Size() == 0 {
			return Binding{}, false
		}
		key = key.Pop()
	}
}

// Merge unions other into t. On a key collision the entry from other
// wins and the previous entry is discarded.
func (t *Table) Merge(other *Table) {
	t.mustBeMutable()
	if other == nil {
		return
	}
	for k, e := range other.entries {
		t.entries[k] = e
	}
}

// MergeStrict unions other into t, classifying every collision: two
// declarations of one key fail with *DuplicateDeclarationError; any other
// collision is the same variable seen twice and keeps the declaration, or
// the earliest assignment. t is left unchanged when an error is returned.
func (t *Table) MergeStrict(other *Table) error {
	t.mustBeMutable()
	if other == nil {
		return nil
	}
	keys := other.sortedKeys()
	resolved := make(map[TableKey]Entry, len(keys))
	for _, k := range keys {
		e := other.entries[k]
		if prev, ok := t.entries[k]; ok {
			merged, err := reduce(k, prev, e)
			if err != nil {
				return err
			}
			e = merged
		}
		resolved[k] = e
	}
	for k, e := range resolved {
		t.entries[k] = e
	}
	return nil
}

func reduce(k TableKey, prev, next Entry) (Entry, error) {
	switch {
	case prev.Origin == OriginDeclaration && next.Origin == OriginDeclaration:
		if prev == next {
			return prev, nil
		}
		first, second := prev, next
		if second.Pos.Before(first.Pos) {
			first, second = second, first
		}
		return Entry{}, &DuplicateDeclarationError{Name: k.Name, Scope: k.Scope, First: first, Second: second}
	case prev.Origin == OriginDeclaration:
		return prev, nil
	case next.Origin == OriginDeclaration:
		return next, nil
	case next.Pos.Before(prev.Pos):
		return next, nil
	default:
		return prev, nil
	}
}

// Freeze marks the table read-only; later Insert, Define or Merge calls panic.
func (t *Table) Freeze() *Table {
	t.frozen = true
	return t
}

func (t *Table) Frozen() bool { return t.frozen }

// Len returns the number of bindings.
func (t *Table) Len() int { return len(t.entries) }

// Bindings lists every binding ordered by scope key, then name.
func (t *Table) Bindings() []Binding {
	keys := t.sortedKeys()
	out := make([]Binding, 0, len(keys))
	for _, k := range keys {
		out = append(out, Binding{Name: k.Name, Scope: k.Scope, Entry: t.entries[k]})
	}
	return out
}

func (t *Table) sortedKeys() []TableKey {
	keys := make([]TableKey, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if c := keys[i].Scope.Compare(keys[j].Scope); c != 0 {
			return c < 0
		}
		return keys[i].Name < keys[j].Name
	})
	return keys
}
