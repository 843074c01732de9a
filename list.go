package stack

// node is a single list element. Nodes live on the heap and stay valid while
// they remain linked: inserting or removing other nodes never invalidates an
// existing one, which is what lets elements hold locators into the order
// list across unrelated mutations.
type node[T any] struct {
	prev, next *node[T]
	val        T
}

// list is a doubly linked list over a sentinel ring, typed where
// container/list is not. The zero value is ready to use.
type list[T any] struct {
	root node[T]
	len  int
}

func (l *list[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

func (l *list[T]) pushBack(v T) *node[T] {
	l.lazyInit()
	n := &node[T]{
		val:  v,
		prev: l.root.prev,
		next: &l.root,
	}
	n.prev.next = n
	n.next.prev = n
	l.len++
	return n
}

func (l *list[T]) front() *node[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *list[T]) back() *node[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// nextOf returns the node after n, or nil if n is the last one.
func (l *list[T]) nextOf(n *node[T]) *node[T] {
	if n.next == &l.root {
		return nil
	}
	return n.next
}

func (l *list[T]) remove(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	l.len--
}

func (l *list[T]) clear() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}
