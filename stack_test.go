package stack

import "testing"

func TestPushPopGlobalOrder(t *testing.T) {
	s := New[int, int]()
	s.Push(1, 2)
	s.Push(1, 3)
	s.Push(2, 5)

	if s.Len() != 3 {
		t.Fatal()
	}
	if s.Count(1) != 2 || s.Count(2) != 1 {
		t.Fatal()
	}

	k, v, err := s.Peek()
	if err != nil {
		t.Fatal(err)
	}
	if k != 2 || v != 5 {
		t.Fatal()
	}

	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 || s.Count(1) != 2 || s.Count(2) != 0 {
		t.Fatal()
	}

	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 || s.Count(1) != 1 {
		t.Fatal()
	}

	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Fatal()
	}
}

func TestPopKeyKeepsRelativeOrder(t *testing.T) {
	s := New[int, int]()
	s.Push(2, 1)
	s.Push(1, 1)
	s.Push(1, 2)
	s.Push(2, 2)

	// Removes (1,2), the most recent push under key 1.
	if err := s.PopKey(1); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 || s.Count(1) != 1 || s.Count(2) != 2 {
		t.Fatal()
	}

	// Remaining global order must be (2,1),(1,1),(2,2), newest last.
	for _, want := range [][2]int{{2, 2}, {1, 1}, {2, 1}} {
		k, v, err := s.Peek()
		if err != nil {
			t.Fatal(err)
		}
		if k != want[0] || v != want[1] {
			t.Fatalf("got (%d,%d), want (%d,%d)", k, v, want[0], want[1])
		}
		if err := s.Pop(); err != nil {
			t.Fatal(err)
		}
	}
	if s.Len() != 0 {
		t.Fatal()
	}
}

func TestPeekKey(t *testing.T) {
	s := New[string, int]()
	s.Push("a", 1)
	s.Push("b", 2)
	s.Push("a", 3)

	v, err := s.PeekKey("a")
	if err != nil {
		t.Fatal(err)
	}
	if v != 3 {
		t.Fatal()
	}
	v, err = s.PeekKey("b")
	if err != nil {
		t.Fatal(err)
	}
	if v != 2 {
		t.Fatal()
	}
}

func TestCountConsistency(t *testing.T) {
	s := New[int, int]()
	for i := 0; i < 64; i++ {
		s.Push(i%5, i)
	}
	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			if err := s.PopKey(i % 5); err != nil {
				t.Fatal(err)
			}
		} else {
			if err := s.Pop(); err != nil {
				t.Fatal(err)
			}
		}
		total := 0
		for k := 0; k < 5; k++ {
			total += s.Count(k)
		}
		if total != s.Len() {
			t.Fatal()
		}
	}
}

func TestErrors(t *testing.T) {
	s := New[int, string]()

	if err := s.Pop(); !is(err, ErrEmpty) {
		t.Fatal()
	}
	if err := s.PopKey(1); !is(err, ErrEmpty) {
		t.Fatal()
	}
	if _, _, err := s.Peek(); !is(err, ErrEmpty) {
		t.Fatal()
	}
	if _, err := s.PeekKey(1); !is(err, ErrEmpty) {
		t.Fatal()
	}
	if _, _, err := s.Front(); !is(err, ErrEmpty) {
		t.Fatal()
	}
	if _, err := s.FrontKey(1); !is(err, ErrEmpty) {
		t.Fatal()
	}

	s.Push(1, "a")
	if err := s.PopKey(2); !is(err, ErrKeyNotFound) {
		t.Fatal()
	}
	if _, err := s.PeekKey(2); !is(err, ErrKeyNotFound) {
		t.Fatal()
	}
	if _, err := s.FrontKey(2); !is(err, ErrKeyNotFound) {
		t.Fatal()
	}
}

func TestFailedOpLeavesStateUntouched(t *testing.T) {
	s := New[int, int]()
	s.Push(1, 10)
	s.Push(2, 20)
	data := s.data

	if err := s.PopKey(3); !is(err, ErrKeyNotFound) {
		t.Fatal()
	}
	if _, err := s.FrontKey(3); !is(err, ErrKeyNotFound) {
		t.Fatal()
	}

	// No mutation, no fork, no unsharable marking.
	if s.data != data || s.unsharable {
		t.Fatal()
	}
	if s.Len() != 2 || s.Count(1) != 1 || s.Count(2) != 1 {
		t.Fatal()
	}
	k, v, err := s.Peek()
	if err != nil {
		t.Fatal(err)
	}
	if k != 2 || v != 20 {
		t.Fatal()
	}

	// A failed op on a shared handle must not fork either.
	c := s.Clone()
	if err := c.PopKey(3); !is(err, ErrKeyNotFound) {
		t.Fatal()
	}
	if c.data != s.data {
		t.Fatal()
	}
}

func TestZeroValue(t *testing.T) {
	var s Stack[int, int]
	if s.Len() != 0 || s.Count(1) != 0 {
		t.Fatal()
	}
	if err := s.Pop(); !is(err, ErrEmpty) {
		t.Fatal()
	}
	s.Push(1, 1)
	if s.Len() != 1 {
		t.Fatal()
	}
}

func TestClearInPlace(t *testing.T) {
	s := New[int, int]()
	s.Push(1, 1)
	s.Push(2, 2)
	data := s.data
	s.Clear()
	// Sole owner clears in place.
	if s.data != data {
		t.Fatal()
	}
	if s.Len() != 0 || s.Count(1) != 0 {
		t.Fatal()
	}
	s.Push(3, 3)
	if s.Len() != 1 || s.Count(3) != 1 {
		t.Fatal()
	}
}

func TestInterleavedKeys(t *testing.T) {
	s := New[string, int]()
	s.Push("a", 1)
	s.Push("b", 2)
	s.Push("a", 3)
	s.Push("c", 4)
	s.Push("b", 5)

	if err := s.PopKey("a"); err != nil { // removes ("a",3)
		t.Fatal(err)
	}
	if err := s.PopKey("b"); err != nil { // removes ("b",5)
		t.Fatal(err)
	}

	for _, want := range []struct {
		k string
		v int
	}{
		{"c", 4},
		{"b", 2},
		{"a", 1},
	} {
		k, v, err := s.Peek()
		if err != nil {
			t.Fatal(err)
		}
		if k != want.k || v != want.v {
			t.Fatal()
		}
		if err := s.Pop(); err != nil {
			t.Fatal(err)
		}
	}
}
