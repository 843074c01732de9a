package stack

import (
	"errors"

	"github.com/reusee/e5"
)

var ErrEmpty = errors.New("empty stack")

var ErrKeyNotFound = errors.New("key not found")

func errEmpty(op string) error {
	return we.With(
		e5.Info("%s on empty stack", op),
	)(
		ErrEmpty,
	)
}

func errKeyNotFound[K any](op string, key K) error {
	return we.With(
		e5.Info("%s: no values pushed under key %v", op, key),
	)(
		ErrKeyNotFound,
	)
}
