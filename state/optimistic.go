// Package state holds the small client-state primitives the page services
// share: the optimistic-mutation helper and nothing else. Everything here
// is in-memory and invalidated by the next server fetch.
package state

import "errors"

// ErrNoChange is returned by an Apply func to signal the mutation does not
// apply to the current value (for example, a toggle aimed at an id that is
// no longer in the list). The mutation becomes a no-op: no confirm call is
// made and the value is returned untouched.
var ErrNoChange = errors.New("mutation does not apply to current state")

// Mutation is one optimistic round trip: rewrite the local value, confirm
// with the server, then reconcile. Apply must treat its argument as
// read-only and return a rewritten copy, so the untouched argument doubles
// as the rollback snapshot.
type Mutation[T any] struct {
	// Apply produces the tentative local value. Returning ErrNoChange
	// aborts the whole mutation without side effects.
	Apply func(T) (T, error)

	// Confirm issues the server request backing the tentative change.
	Confirm func() error

	// Refetch replaces the tentative value with the server's truth after a
	// successful confirm. Optional: when nil the tentative value stands
	// until the next regular fetch.
	Refetch func() (T, error)
}

// Run executes the mutation against value.
//
// Confirm failure restores the pre-mutation value exactly and returns the
// confirm error. Refetch failure keeps the tentative value visible
// (stale-but-optimistic beats blank) and returns the refetch error.
func Run[T any](value T, m Mutation[T]) (T, error) {
	tentative, err := m.Apply(value)
	if err != nil {
		if errors.Is(err, ErrNoChange) {
			return value, nil
		}
		return value, err
	}

	if err := m.Confirm(); err != nil {
		// Rollback: the caller's original value was never mutated.
		return value, err
	}

	if m.Refetch == nil {
		return tentative, nil
	}
	fresh, err := m.Refetch()
	if err != nil {
		return tentative, err
	}
	return fresh, nil
}
