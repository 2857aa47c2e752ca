// Package orchestration runs several Fibonacci strategies concurrently for
// the same index and checks that they agree. Presentation is kept out of
// this package behind the ProgressReporter and ResultPresenter interfaces.
package orchestration
