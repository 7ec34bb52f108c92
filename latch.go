package llmcatalog

import "sync"

// latch is a one-shot completion: several event sources may try to complete
// it, only the first one's function runs and its value is kept.
type latch[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
}

func newLatch[T any]() *latch[T] {
	return &latch[T]{done: make(chan struct{})}
}

// complete runs fn and publishes its result unless the latch already fired.
// It reports whether this call won.
func (l *latch[T]) complete(fn func() T) bool {
	won := false
	l.once.Do(func() {
		l.val = fn()
		won = true
		close(l.done)
	})
	return won
}

func (l *latch[T]) Done() <-chan struct{} { return l.done }

// Value blocks until the latch fires.
func (l *latch[T]) Value() T {
	<-l.done
	return l.val
}
