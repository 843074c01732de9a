package stack

import "cmp"

// Stack is a keyed stack with copy-on-write copies.
//
// Every value shares one global push order: Pop and Peek without a key act
// on the most recent push across all keys, while PopKey and PeekKey act on
// the most recent push under one key. Clone is O(1): both handles keep
// referring to the same storage until one of them mutates, at which point
// the mutating handle forks a private copy and the other is untouched.
//
// Front and FrontKey hand out a pointer into the storage. From then on the
// handle is unsharable: a Clone taken afterwards copies eagerly, so a write
// through the escaped pointer cannot leak into the clone. A write through a
// pointer escaped before an earlier Clone is the caller's responsibility.
//
// The zero value is an empty stack. Not safe for concurrent use.
type Stack[K cmp.Ordered, V any] struct {
	data       *stackData[K, V]
	unsharable bool
}

func New[K cmp.Ordered, V any]() *Stack[K, V] {
	return &Stack[K, V]{
		data: newStackData[K, V](),
	}
}

// load returns the storage with no arbitration. Reads go through here.
func (s *Stack[K, V]) load() *stackData[K, V] {
	if s.data == nil {
		s.data = newStackData[K, V]()
	}
	return s.data
}

// Clone returns a new handle over the same contents. While this handle is
// sharable the clone shares storage in O(1); if a pointer has escaped via
// Front or FrontKey the storage is deep-copied instead. Either way the
// clone itself starts sharable.
func (s *Stack[K, V]) Clone() *Stack[K, V] {
	d := s.load()
	if s.unsharable {
		return &Stack[K, V]{data: d.fork()}
	}
	d.refs++
	return &Stack[K, V]{data: d}
}

// Push appends value as the newest element, both globally and under key.
func (s *Stack[K, V]) Push(key K, value V) {
	s.own().push(key, value)
}

// Pop removes the most recent push across all keys. Returns ErrEmpty on an
// empty stack, with no state changed.
func (s *Stack[K, V]) Pop() error {
	if s.load().size == 0 {
		return errEmpty("Pop")
	}
	s.own().pop()
	return nil
}

// PopKey removes the most recent push under key, leaving the relative order
// of all remaining elements untouched. Returns ErrEmpty on an empty stack
// and ErrKeyNotFound when nothing is pushed under key; either way no state
// changes, and no fork happens on a failed call.
func (s *Stack[K, V]) PopKey(key K) error {
	d := s.load()
	if d.size == 0 {
		return errEmpty("PopKey")
	}
	if _, ok := d.entries.Get(key); !ok {
		return errKeyNotFound("PopKey", key)
	}
	s.own().popKey(key)
	return nil
}

// Front returns the key of the most recent push and a pointer to its value.
// The pointer stays valid until that element is popped or the stack is
// cleared. Taking it marks the handle unsharable.
func (s *Stack[K, V]) Front() (K, *V, error) {
	if s.load().size == 0 {
		var zero K
		return zero, nil, errEmpty("Front")
	}
	d := s.own()
	s.unsharable = true
	k, v := d.front()
	return k, v, nil
}

// FrontKey returns a pointer to the most recent value pushed under key,
// with the same escape semantics as Front.
func (s *Stack[K, V]) FrontKey(key K) (*V, error) {
	d := s.load()
	if d.size == 0 {
		return nil, errEmpty("FrontKey")
	}
	if _, ok := d.entries.Get(key); !ok {
		return nil, errKeyNotFound("FrontKey", key)
	}
	owned := s.own()
	s.unsharable = true
	return owned.frontKey(key), nil
}

// Peek is the read-only form of Front: the value comes back by copy, no
// fork happens and the handle stays sharable.
func (s *Stack[K, V]) Peek() (K, V, error) {
	d := s.load()
	if d.size == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, errEmpty("Peek")
	}
	k, v := d.front()
	return k, *v, nil
}

// PeekKey is the read-only form of FrontKey.
func (s *Stack[K, V]) PeekKey(key K) (V, error) {
	var zero V
	d := s.load()
	if d.size == 0 {
		return zero, errEmpty("PeekKey")
	}
	if _, ok := d.entries.Get(key); !ok {
		return zero, errKeyNotFound("PeekKey", key)
	}
	return *d.frontKey(key), nil
}

// Len is the total number of elements across all keys.
func (s *Stack[K, V]) Len() int {
	return s.load().size
}

// Count is the number of elements currently pushed under key.
func (s *Stack[K, V]) Count(key K) int {
	return s.load().count(key)
}

// Clear empties the stack. When the storage is shared this detaches
// instead: the handle moves to a fresh empty storage and the other sharers
// keep the old contents.
func (s *Stack[K, V]) Clear() {
	d := s.load()
	if d.refs > 1 {
		d.refs--
		s.data = newStackData[K, V]()
	} else {
		d.clear()
	}
	s.unsharable = false
}

// Swap exchanges the contents of two handles without touching storage.
func (s *Stack[K, V]) Swap(other *Stack[K, V]) {
	s.data, other.data = other.data, s.data
	s.unsharable, other.unsharable = other.unsharable, s.unsharable
}
