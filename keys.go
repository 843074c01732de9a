package stack

import (
	"cmp"
	"iter"

	"github.com/tidwall/btree"
)

// KeyIter is a forward cursor over the distinct keys currently present,
// ascending. It advances by seeking past the last key it returned, so
// pushing or popping under other keys never invalidates it, and if the
// current key disappears the cursor resumes at the next larger one. The
// cursor stays bound to the storage it was created on: if the handle forks
// afterwards, the cursor keeps enumerating the original storage.
type KeyIter[K cmp.Ordered] struct {
	keys    *btree.Set[K]
	cur     K
	started bool
	done    bool
}

// Keys returns a cursor positioned before the smallest key. Restart by
// taking a new cursor.
func (s *Stack[K, V]) Keys() *KeyIter[K] {
	return &KeyIter[K]{
		keys: &s.load().keys,
	}
}

// Next advances to the next key, returning false once exhausted.
func (it *KeyIter[K]) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		first, ok := it.keys.Min()
		if !ok {
			it.done = true
			return false
		}
		it.cur = first
		it.started = true
		return true
	}
	found := false
	it.keys.Ascend(it.cur, func(k K) bool {
		if k == it.cur {
			return true
		}
		it.cur = k
		found = true
		return false
	})
	if !found {
		it.done = true
	}
	return found
}

// Key returns the key at the cursor. Valid only after Next returned true.
func (it *KeyIter[K]) Key() K {
	return it.cur
}

// AllKeys ranges over the distinct keys currently present, ascending.
func (s *Stack[K, V]) AllKeys() iter.Seq[K] {
	d := s.load()
	return func(yield func(K) bool) {
		d.keys.Scan(func(k K) bool {
			return yield(k)
		})
	}
}
