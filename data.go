package stack

import (
	"cmp"

	"github.com/dolthub/swiss"
	"github.com/tidwall/btree"
)

// element is one pushed value together with its position in the global order
// list. The order node and the element point at each other, so either side
// can erase the other in O(1).
type element[K cmp.Ordered, V any] struct {
	value V
	at    *node[*entry[K, V]]
}

// entry owns every value currently pushed under one key, in push order. An
// entry exists exactly as long as at least one such value does.
type entry[K cmp.Ordered, V any] struct {
	key    K
	values list[element[K, V]]
}

// stackData is the storage behind one or more Stack handles. It knows
// nothing about sharing: arbitration happens in the handle, and every
// operation here assumes its preconditions were already checked there.
type stackData[K cmp.Ordered, V any] struct {
	// order is the global push order. Each node refers back to the entry
	// its element lives under.
	order list[*entry[K, V]]
	// entries resolves a key to its entry.
	entries *swiss.Map[K, *entry[K, V]]
	// keys mirrors the key set of entries, ascending. Drives key cursors.
	keys btree.Set[K]
	size int
	// refs counts the handles currently referring to this storage.
	refs int
}

func newStackData[K cmp.Ordered, V any]() *stackData[K, V] {
	return &stackData[K, V]{
		entries: swiss.NewMap[K, *entry[K, V]](8),
		refs:    1,
	}
}

func (d *stackData[K, V]) push(key K, value V) {
	e, ok := d.entries.Get(key)
	if !ok {
		e = &entry[K, V]{key: key}
		d.entries.Put(key, e)
		d.keys.Insert(key)
	}
	n := d.order.pushBack(e)
	e.values.pushBack(element[K, V]{value: value, at: n})
	d.size++
}

// pop removes the most recent global push. The back of the order list
// belongs to some entry, and the back of that entry's values is necessarily
// the same element, since no later push under that key exists.
func (d *stackData[K, V]) pop() {
	n := d.order.back()
	e := n.val
	e.values.remove(e.values.back())
	if e.values.len == 0 {
		d.removeEntry(e)
	}
	d.order.remove(n)
	d.size--
}

// popKey removes the most recent push under key. The element's stored
// locator erases its node from the middle of the order list directly, with
// no scan.
func (d *stackData[K, V]) popKey(key K) {
	e, _ := d.entries.Get(key)
	last := e.values.back()
	d.order.remove(last.val.at)
	e.values.remove(last)
	if e.values.len == 0 {
		d.removeEntry(e)
	}
	d.size--
}

func (d *stackData[K, V]) removeEntry(e *entry[K, V]) {
	d.entries.Delete(e.key)
	d.keys.Delete(e.key)
}

func (d *stackData[K, V]) front() (K, *V) {
	e := d.order.back().val
	return e.key, &e.values.back().val.value
}

func (d *stackData[K, V]) frontKey(key K) *V {
	e, _ := d.entries.Get(key)
	return &e.values.back().val.value
}

func (d *stackData[K, V]) count(key K) int {
	e, ok := d.entries.Get(key)
	if !ok {
		return 0
	}
	return e.values.len
}

func (d *stackData[K, V]) clear() {
	d.order.clear()
	d.entries = swiss.NewMap[K, *entry[K, V]](8)
	d.keys = btree.Set[K]{}
	d.size = 0
}
