// Package iterator provides a generic, closeable iterator abstraction used
// by the bson package's document, array, and raw document iterators.
package iterator

import "errors"

// ErrIteratorDone is returned by Next when the iterator is exhausted.
var ErrIteratorDone = errors.New("iterator is done")

// Interface is a generic, closeable iterator over key/value pairs.
//
// Next returns ErrIteratorDone (wrapped or not) once the sequence is
// exhausted; callers should stop calling Next after that. Close may be
// called multiple times and after Next returned ErrIteratorDone; it is
// always safe to defer it right after obtaining the iterator.
type Interface[K, V any] interface {
	Next() (K, V, error)
	Close()
}

// forFunc adapts a plain function into an Interface.
type forFunc[K, V any] struct {
	f func() (K, V, error)
}

// ForFunc returns an Interface backed by f.
func ForFunc[K, V any](f func() (K, V, error)) Interface[K, V] {
	return &forFunc[K, V]{f: f}
}

func (iter *forFunc[K, V]) Next() (K, V, error) {
	return iter.f()
}

func (iter *forFunc[K, V]) Close() {}

// forSlice iterates over a slice, yielding (index, value) pairs.
type forSlice[V any] struct {
	s []V
	i int
}

// ForSlice returns an Interface that yields the elements of s in order, indexed from 0.
func ForSlice[V any](s []V) Interface[int, V] {
	return &forSlice[V]{s: s}
}

func (iter *forSlice[V]) Next() (int, V, error) {
	if iter.s == nil || iter.i >= len(iter.s) {
		var zero V
		return 0, zero, ErrIteratorDone
	}

	i := iter.i
	iter.i++

	return i, iter.s[i], nil
}

func (iter *forSlice[V]) Close() {
	iter.s = nil
}

// valuesIter drops the key from the wrapped iterator.
type valuesIter[K, V any] struct {
	iter Interface[K, V]
}

// Values returns an iterator over the values of iter, discarding keys.
func Values[K, V any](iter Interface[K, V]) Interface[struct{}, V] {
	return &valuesIter[K, V]{iter: iter}
}

func (vi *valuesIter[K, V]) Next() (struct{}, V, error) {
	_, v, err := vi.iter.Next()
	return struct{}{}, v, err
}

func (vi *valuesIter[K, V]) Close() {
	vi.iter.Close()
}

// ConsumeValues drains iter, closing it, and returns all produced values.
func ConsumeValues[K, V any](iter Interface[K, V]) ([]V, error) {
	defer iter.Close()

	var res []V

	for {
		_, v, err := iter.Next()
		if err != nil {
			if errors.Is(err, ErrIteratorDone) {
				return res, nil
			}

			return nil, err
		}

		res = append(res, v)
	}
}

// ConsumeValuesN reads up to n values from iter without closing it.
// It returns nil once the iterator is exhausted.
func ConsumeValuesN[K, V any](iter Interface[K, V], n int) ([]V, error) {
	var res []V

	for i := 0; i < n; i++ {
		_, v, err := iter.Next()
		if err != nil {
			if errors.Is(err, ErrIteratorDone) {
				return res, nil
			}

			return nil, err
		}

		res = append(res, v)
	}

	return res, nil
}
