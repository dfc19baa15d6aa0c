package async

import (
	"context"
	"fmt"
	"sync"
)

// PanicError carries a panic recovered from a producer started with Go.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// Result is a single-assignment asynchronous outcome.
type Result[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

// New returns an unresolved Result and its resolver. Only the first call to
// the resolver has any effect.
func New[T any]() (*Result[T], func(T, error)) {
	r := &Result[T]{done: make(chan struct{})}
	return r, r.resolve
}

// Resolved returns a Result that is already complete.
func Resolved[T any](v T, err error) *Result[T] {
	r, resolve := New[T]()
	resolve(v, err)
	return r
}

// Go runs fn on its own goroutine and resolves the Result with its outcome.
// A panic in fn resolves the Result with a *PanicError.
func Go[T any](fn func() (T, error)) *Result[T] {
	r, resolve := New[T]()
	go func() {
		defer func() {
			if p := recover(); p != nil {
				var zero T
				resolve(zero, &PanicError{Value: p})
			}
		}()
		resolve(fn())
	}()
	return r
}

func (r *Result[T]) resolve(v T, err error) {
	r.once.Do(func() {
		r.value, r.err = v, err
		close(r.done)
	})
}

// Done is closed once the Result resolves.
func (r *Result[T]) Done() <-chan struct{} { return r.done }

// Await blocks until the Result resolves or ctx ends. Giving up on ctx does
// not cancel the producer; its outcome is simply not observed.
func (r *Result[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Peek returns the outcome without blocking. ok is false while unresolved.
func (r *Result[T]) Peek() (v T, err error, ok bool) {
	select {
	case <-r.done:
		return r.value, r.err, true
	default:
		return v, nil, false
	}
}

// Then invokes exactly one of the callbacks once the Result resolves.
// Callbacks run on a separate goroutine; a nil callback is skipped.
func (r *Result[T]) Then(onSuccess func(T), onFailure func(error)) {
	go func() {
		<-r.done
		if r.err != nil {
			if onFailure != nil {
				onFailure(r.err)
			}
			return
		}
		if onSuccess != nil {
			onSuccess(r.value)
		}
	}()
}
