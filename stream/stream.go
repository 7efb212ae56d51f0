package stream

import (
	"fmt"
	"sync"
)

// Stream is an unbounded queue between goroutines. Pushes never block;
// Pull blocks until an element arrives or the stream is closed.
type Stream[T any] struct {
	name     string
	elements []T
	closed   bool
	*sync.Cond
}

func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{
		Cond: sync.NewCond(&sync.Mutex{}),
		name: name,
	}
}

// Push appends an element. Elements pushed after Close are dropped.
func (s *Stream[T]) Push(element T) {
	s.L.Lock()
	if !s.closed {
		s.elements = append(s.elements, element)
		s.Signal()
	}
	s.L.Unlock()
}

// Pull returns the oldest element. It reports false once the stream is
// closed and drained.
func (s *Stream[T]) Pull() (T, bool) {
	s.L.Lock()
	defer s.L.Unlock()
	for len(s.elements) == 0 && !s.closed {
		s.Wait()
	}
	if len(s.elements) == 0 {
		var zero T
		return zero, false
	}
	element := s.elements[0]
	s.elements = s.elements[1:]
	return element, true
}

// PullAll returns every pending element without blocking.
func (s *Stream[T]) PullAll() []T {
	s.L.Lock()
	elements := s.elements
	s.elements = nil
	s.L.Unlock()
	return elements
}

func (s *Stream[T]) Close() {
	s.L.Lock()
	s.closed = true
	s.Broadcast()
	s.L.Unlock()
}

func (s *Stream[T]) Len() int {
	s.L.Lock()
	defer s.L.Unlock()
	return len(s.elements)
}

func (s *Stream[T]) String() string {
	return fmt.Sprintf("Stream(%s, %d)", s.name, s.Len())
}
