// Package biaction provides function types for side-effecting callbacks over
// a pair of values, along with combinators to sequence and compose them.
package biaction

import (
	"github.com/hashicorp/go-multierror"
)

// Action consumes two values and returns nothing. Whatever effect it has on
// the outside world is defined by the caller, not by this package.
type Action[A, B any] func(A, B)

// ErrorableAction consumes two values and may fail.
type ErrorableAction[A, B any] func(A, B) error

// AndThen returns an action that applies f to its inputs, then next to the
// same inputs. A nil next is skipped.
func (f Action[A, B]) AndThen(next Action[A, B]) Action[A, B] {
	return func(a A, b B) {
		f(a, b)
		if next != nil {
			next(a, b)
		}
	}
}

// AndThen returns an action that applies f, then next, to the same inputs.
// If f fails, next does not run and f's error is returned unchanged.
func (f ErrorableAction[A, B]) AndThen(next ErrorableAction[A, B]) ErrorableAction[A, B] {
	return func(a A, b B) error {
		if err := f(a, b); err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		return next(a, b)
	}
}

// Suppress converts f into an infallible action. Any error is handed to
// handler instead of propagating; a nil handler discards it.
func (f ErrorableAction[A, B]) Suppress(handler func(error)) Action[A, B] {
	return func(a A, b B) {
		if err := f(a, b); err != nil && handler != nil {
			handler(err)
		}
	}
}

// Lift embeds an infallible action where an errorable one is expected.
func Lift[A, B any](f Action[A, B]) ErrorableAction[A, B] {
	return func(a A, b B) error {
		f(a, b)
		return nil
	}
}

// Sequence returns an action that applies each action in order to the same
// pair of inputs. Nil entries are skipped.
func Sequence[A, B any](actions ...Action[A, B]) Action[A, B] {
	return func(a A, b B) {
		for _, f := range actions {
			if f != nil {
				f(a, b)
			}
		}
	}
}

// TrySequence returns an action that applies each action in order to the
// same pair of inputs, stopping at and returning the first error. Nil
// entries are skipped.
func TrySequence[A, B any](actions ...ErrorableAction[A, B]) ErrorableAction[A, B] {
	return func(a A, b B) error {
		for _, f := range actions {
			if f == nil {
				continue
			}
			if err := f(a, b); err != nil {
				return err
			}
		}
		return nil
	}
}

// All returns an action that applies every action to the same pair of inputs
// regardless of individual failures, then returns the accumulated errors, or
// nil if all succeeded. Nil entries are skipped.
func All[A, B any](actions ...ErrorableAction[A, B]) ErrorableAction[A, B] {
	return func(a A, b B) error {
		var merr *multierror.Error
		for _, f := range actions {
			if f == nil {
				continue
			}
			if err := f(a, b); err != nil {
				merr = multierror.Append(merr, err)
			}
		}
		return merr.ErrorOrNil()
	}
}
