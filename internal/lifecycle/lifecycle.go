// Package lifecycle tracks the idle/loading/loaded/failed state of
// asynchronous fetches, either as a single entry or keyed per entity.
package lifecycle

import "sync"

// State is the coarse state of one lifecycle entry
type State int

const (
	Unfetched State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Unfetched:
		return "unfetched"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Lifecycle is the state of one fetch. The zero value is an entry that has
// never been fetched.
type Lifecycle[T any] struct {
	Value   T
	Loaded  bool // Value holds a successful result
	Loading bool
	Err     string // empty when there is no error
}

// HasError reports whether the last attempt failed
func (l Lifecycle[T]) HasError() bool {
	return l.Err != ""
}

// State reduces the entry to a single state. Loading wins over a stale
// result or error.
func (l Lifecycle[T]) State() State {
	switch {
	case l.Loading:
		return Loading
	case l.Err != "":
		return Failed
	case l.Loaded:
		return Loaded
	default:
		return Unfetched
	}
}

// Outcome carries the result of one fetch attempt
type Outcome[T any] struct {
	Value T
	Err   error
}

// Store is a keyed set of independent lifecycles. A missing key behaves like
// the zero Lifecycle. Use struct{} as the key for a single lifecycle.
type Store[K comparable, T any] struct {
	mu      sync.RWMutex
	entries map[K]Lifecycle[T]
	order   []K
}

// NewStore creates an empty store
func NewStore[K comparable, T any]() *Store[K, T] {
	return &Store[K, T]{
		entries: make(map[K]Lifecycle[T]),
	}
}

// Get returns the entry for k, or the zero lifecycle when absent
func (s *Store[K, T]) Get(k K) Lifecycle[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[k]
}

// Has reports whether an entry exists for k
func (s *Store[K, T]) Has(k K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[k]
	return ok
}

// Len returns the number of entries
func (s *Store[K, T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Keys returns the keys in creation order
func (s *Store[K, T]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]K(nil), s.order...)
}

// Begin marks k as loading and clears its error
func (s *Store[K, T]) Begin(k K) {
	s.update(k, func(l *Lifecycle[T]) {
		l.Loading = true
		l.Err = ""
	})
}

// Succeed stores v as the result for k and clears its error
func (s *Store[K, T]) Succeed(k K, v T) {
	s.update(k, func(l *Lifecycle[T]) {
		l.Value = v
		l.Loaded = true
		l.Err = ""
	})
}

// Fail records msg as the error for k
func (s *Store[K, T]) Fail(k K, msg string) {
	s.update(k, func(l *Lifecycle[T]) {
		l.Err = msg
	})
}

// Finish clears the loading flag for k
func (s *Store[K, T]) Finish(k K) {
	s.update(k, func(l *Lifecycle[T]) {
		l.Loading = false
	})
}

// Reset replaces the value for k and marks it as not loaded
func (s *Store[K, T]) Reset(k K, v T) {
	s.update(k, func(l *Lifecycle[T]) {
		l.Value = v
		l.Loaded = false
	})
}

// Resolve applies an outcome to k: success or failure, then Finish.
// An outcome with an error whose message is empty is recorded as "unknown error".
func (s *Store[K, T]) Resolve(k K, o Outcome[T]) {
	s.update(k, func(l *Lifecycle[T]) {
		if o.Err != nil {
			msg := o.Err.Error()
			if msg == "" {
				msg = "unknown error"
			}
			l.Err = msg
		} else {
			l.Value = o.Value
			l.Loaded = true
			l.Err = ""
		}
		l.Loading = false
	})
}

func (s *Store[K, T]) update(k K, fn func(*Lifecycle[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.entries[k]
	if !ok {
		s.order = append(s.order, k)
	}
	fn(&l)
	s.entries[k] = l
}
