// Package group provides combinators over multiple deferred call futures:
// waiting for all of them, racing for the first completion, and collecting
// typed results. Goroutines are spawned only to wait, never to execute -
// the calls themselves still run on whichever goroutine invokes them.
package group

import (
	"errors"

	"github.com/lguimbarda/min-call/call"
)

// ErrNoWaiters is returned when a combinator is given nothing to wait on.
var ErrNoWaiters = errors.New("no futures to wait on")

// Waiter is the waiting surface shared by every call.Future.
type Waiter interface {
	Wait()
	Done() <-chan struct{}
}

// WaitAll blocks until every waiter has completed. Waiters are visited in
// order, which is equivalent to waiting on all of them at once: waiting on
// an already-completed future returns immediately.
func WaitAll(waiters ...Waiter) {
	for _, w := range waiters {
		w.Wait()
	}
}

// WaitAny blocks until any waiter completes and returns its index. One
// waiting goroutine is spawned per waiter; they all finish naturally once
// their futures complete. Note that waiting observes completion only - it
// never performs calls, so something must eventually invoke the handles.
func WaitAny(waiters ...Waiter) (int, error) {
	if len(waiters) == 0 {
		return -1, ErrNoWaiters
	}

	first := make(chan int, 1)
	for i, w := range waiters {
		go func(index int, done <-chan struct{}) {
			<-done
			select {
			case first <- index:
			default:
				// Another waiter completed simultaneously; first wins.
			}
		}(i, w.Done())
	}
	return <-first, nil
}

// Collect waits for every future and gathers the results in order. The
// first stored fault is returned as the error, with the partial results
// collected so far.
func Collect[T any](futures ...call.Future[T]) ([]T, error) {
	values := make([]T, 0, len(futures))
	for _, f := range futures {
		v, err := f.Get()
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}
