package stack

import (
	"github.com/dolthub/swiss"
)

// fork builds an independent structural clone of d: a fresh storage with its
// own node graph whose global order and per-key orders both match d's.
//
// Order nodes do not carry values, so the clone is rebuilt by replaying
// pushes: walk d.order front to back, resolve each node to its entry, and
// push that entry's next not-yet-replayed value under the entry's key. A
// cursor per key tracks replay progress. Induction on push order shows the
// replay reproduces the exact interleave; FuzzForkReplay checks that against
// an independent model rather than assuming it.
func (d *stackData[K, V]) fork() *stackData[K, V] {
	fresh := newStackData[K, V]()
	cursors := swiss.NewMap[K, *node[element[K, V]]](uint32(d.keys.Len()))
	for n := d.order.front(); n != nil; n = d.order.nextOf(n) {
		e := n.val
		cur, ok := cursors.Get(e.key)
		if !ok {
			cur = e.values.front()
		}
		fresh.push(e.key, cur.val.value)
		cursors.Put(e.key, e.values.nextOf(cur))
	}
	return fresh
}

// own returns storage this handle holds exclusively, forking away from other
// sharers first if there are any. Every mutation routes through here. It
// clears the unsharable flag; Front and FrontKey set it back right before
// they let a value pointer escape.
func (s *Stack[K, V]) own() *stackData[K, V] {
	d := s.load()
	if d.refs > 1 {
		d.refs--
		d = d.fork()
		s.data = d
	}
	s.unsharable = false
	return d
}
