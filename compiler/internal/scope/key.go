// Package scope encodes lexical position as a path of sibling-block indices.
//
// A Key is the path from the program root through nested block boundaries:
//
//	x          ""     (global)
//	{x}        0
//	{{x}}      0.0
//	{{}{x}}    0.1
//
// A key A is visible from B iff A is a prefix of B. Keys are immutable,
// comparable values and can be used directly as map keys.
package scope

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Key is an immutable scope path. The zero value is the global scope.
type Key struct {
	// uvarint-encoded indices; the encoding is prefix-free, so an
	// element-wise prefix is exactly a byte prefix.
	path string
}

// Global returns the empty key.
func Global() Key { return Key{} }

// Of builds a key from explicit indices.
func Of(indices ...int) Key {
	k := Key{}
	for _, i := range indices {
		k = k.Push(i)
	}
	return k
}

// Push returns k with index appended. k is not modified.
func (k Key) Push(index int) Key {
	if index < 0 {
		panic(fmt.Sprintf("scope: negative index %d", index))
	}
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], uint64(index))
	return Key{path: k.path + string(buf[:n])}
}

// Pop returns k without its last index. Popping the global key is a
// programming error and panics.
func (k Key) Pop() Key {
	if len(k.path) == 0 {
		panic("scope: pop of global key")
	}
	// every byte of a uvarint except the last has the high bit set
	i := len(k.path) - 2
	for i >= 0 && k.path[i]&0x80 != 0 {
		i--
	}
	return Key{path: k.path[:i+1]}
}

// Parent is Pop with an ok result instead of a panic.
func (k Key) Parent() (Key, bool) {
	if k.IsGlobal() {
		return k, false
	}
	return k.Pop(), true
}

// Size returns the number of indices; 0 identifies the global scope.
func (k Key) Size() int {
	n := 0
	for i := 0; i < len(k.path); i++ {
		if k.path[i]&0x80 == 0 {
			n++
		}
	}
	return n
}

func (k Key) IsGlobal() bool { return len(k.path) == 0 }

// Indices decodes the key into a fresh slice.
func (k Key) Indices() []int {
	out := make([]int, 0, len(k.path))
	b := []byte(k.path)
	for len(b) > 0 {
		v, n := binary.Uvarint(b)
		out = append(out, int(v))
		b = b[n:]
	}
	return out
}

// IsAncestorOf reports whether k is an ancestor of, or equal to, other.
func (k Key) IsAncestorOf(other Key) bool {
	return strings.HasPrefix(other.path, k.path)
}

// Compare orders keys lexicographically by index, shorter prefixes first.
func (k Key) Compare(other Key) int {
	a, b := k.Indices(), other.Indices()
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// String renders the key as dot-separated indices, or "global".
func (k Key) String() string {
	if k.IsGlobal() {
		return "global"
	}
	idx := k.Indices()
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ".")
}

// Parse reads the String form back. "", "global" and "[]" mean global;
// indices may be separated by '.', ',' or spaces and optionally bracketed.
func Parse(s string) (Key, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	if s == "" || s == "global" {
		return Global(), nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == ',' || r == ' '
	})
	k := Global()
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return Key{}, fmt.Errorf("invalid scope index %q in %q", f, s)
		}
		k = k.Push(v)
	}
	return k, nil
}
