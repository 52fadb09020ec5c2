// Package compare decides whether two values of the same type are equal.
package compare

import "github.com/stretchr/testify/assert"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Equal reports whether left and right are equal.
//
// If left implements Comparable[T], its Equals method decides. Otherwise the
// values are compared deeply, with byte slices compared by content, following
// testify's ObjectsAreEqual.
func Equal[T any](left, right T) bool {
	if c, ok := any(left).(Comparable[T]); ok {
		return Equals(c, right)
	}

	return assert.ObjectsAreEqual(left, right)
}
