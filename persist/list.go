// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package persist implements a persistent singly-linked list.
// The meaning of “persistent” here is that operations on the list
// create a new list, with the old versions continuing to be valid.
// Lists built from a common ancestor share its nodes, so passing
// "the rest of the input" around costs nothing.
package persist

import "iter"

// A List is an immutable list of values.
// The zero value is the empty list.
type List[T any] struct {
	n *node[T]
}

// A node is never modified after it is created by Cons.
type node[T any] struct {
	val  T
	rest List[T]
}

// Empty returns the empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons returns a new list with v at its head and l as its tail.
// The nodes of l are shared, not copied.
func (l List[T]) Cons(v T) List[T] {
	return List[T]{&node[T]{val: v, rest: l}}
}

// Head returns the first element of l.
// The boolean is false if l is empty.
func (l List[T]) Head() (T, bool) {
	if l.n == nil {
		var zero T
		return zero, false
	}
	return l.n.val, true
}

// Tail returns l without its first element.
// The tail of the empty list is the empty list.
func (l List[T]) Tail() List[T] {
	if l.n == nil {
		return l
	}
	return l.n.rest
}

// IsEmpty reports whether l has no elements.
func (l List[T]) IsEmpty() bool {
	return l.n == nil
}

// Len returns the number of elements in l. It walks the list.
func (l List[T]) Len() int {
	n := 0
	for p := l.n; p != nil; p = p.rest.n {
		n++
	}
	return n
}

// All returns an iterator over the elements of l, head first.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := l.n; p != nil; p = p.rest.n {
			if !yield(p.val) {
				return
			}
		}
	}
}

// Reverse returns a new list holding the elements of l in reverse order.
func (l List[T]) Reverse() List[T] {
	var r List[T]
	for v := range l.All() {
		r = r.Cons(v)
	}
	return r
}

// FromSlice returns a list holding the elements of s, with s[0] at the head.
func FromSlice[T any](s []T) List[T] {
	var l List[T]
	for i := len(s) - 1; i >= 0; i-- {
		l = l.Cons(s[i])
	}
	return l
}

// Runes returns the runes of s as a list, first rune at the head.
func Runes(s string) List[rune] {
	return FromSlice([]rune(s))
}
