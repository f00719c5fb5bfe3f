// Package pipeline provides a minimal fluent Pipeline[T] for
// synchronous composition of value transformations.
//
// It keeps the API surface very small:
// - Start: wrap a value in a Pipeline
// - Map: transform the value while keeping its type
// - To: switch the value to a new type
// - Bind: compose a pipeline-returning function
// - Unwrap: reduce back to the concrete value
package pipeline

// Pipeline wraps a value so transformations can be chained fluently
type Pipeline[T any] struct {
	value T
}

// Start wraps a value in a Pipeline
func Start[T any](v T) Pipeline[T] {
	return Pipeline[T]{value: v}
}

// Map applies f to the wrapped value and returns a new Pipeline
func (p Pipeline[T]) Map(f func(T) T) Pipeline[T] {
	return Pipeline[T]{value: f(p.value)}
}

// Unwrap returns the wrapped value
func (p Pipeline[T]) Unwrap() T {
	return p.value
}

// To transforms the wrapped value into a Pipeline of a new type.
// Methods cannot introduce type parameters, so cross-type steps are
// package functions.
func To[T, U any](p Pipeline[T], f func(T) U) Pipeline[U] {
	return Pipeline[U]{value: f(p.value)}
}

// Bind composes a pipeline-returning function
func Bind[T, U any](p Pipeline[T], f func(T) Pipeline[U]) Pipeline[U] {
	return f(p.value)
}
