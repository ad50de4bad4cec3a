// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package syncx contains synchronization helpers used by the scanner and the
// command-line framework.
package syncx

import "sync"

// Lazy represents a lazily computed value. The zero value is ready to use.
type Lazy[T any] struct {
	once sync.Once
	val  T
}

// Get returns T, calling f to compute it on first use.
func (l *Lazy[T]) Get(f func() T) T {
	l.once.Do(func() { l.val = f() })
	return l.val
}

// LimitedWaitGroup is a [sync.WaitGroup] that limits the number of
// concurrently running goroutines.
type LimitedWaitGroup struct {
	wg    sync.WaitGroup
	slots chan struct{}
}

// NewLimitedWaitGroup returns a [LimitedWaitGroup] that allows at most limit
// goroutines at a time. A limit below one is treated as one.
func NewLimitedWaitGroup(limit int) *LimitedWaitGroup {
	return &LimitedWaitGroup{slots: make(chan struct{}, max(limit, 1))}
}

// Go runs f in a new goroutine. It blocks while the limit is reached.
func (lwg *LimitedWaitGroup) Go(f func()) {
	lwg.Add(1)
	go func() {
		defer lwg.Done()
		f()
	}()
}

// Add takes delta slots, blocking until each of them is free.
func (lwg *LimitedWaitGroup) Add(delta int) {
	for range delta {
		lwg.slots <- struct{}{}
		lwg.wg.Add(1)
	}
}

// Done releases one slot.
func (lwg *LimitedWaitGroup) Done() {
	<-lwg.slots
	lwg.wg.Done()
}

// Wait blocks until all goroutines are done.
func (lwg *LimitedWaitGroup) Wait() { lwg.wg.Wait() }
