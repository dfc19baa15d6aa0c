// Package async provides Result, a single-assignment asynchronous outcome.
//
// A Result resolves exactly once, with either a value or an error, and both
// travel through the same channel. Callers pick their style:
//
//   - deferred result: v, err := r.Await(ctx)
//   - callback pair:   r.Then(onSuccess, onFailure)
//   - select:          <-r.Done() then r.Peek()
//
// Abandoning a Result is safe. Nothing is retained beyond the Result itself
// once the producing goroutine returns.
package async
