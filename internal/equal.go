package internal

import "reflect"

// Identical reports whether a and b are the same value.
// Comparable values use ==, slices match on backing array and length,
// maps, channels and pointers match on address. Any other value that
// cannot be compared with == is never identical, not even to itself.
// The [Unset] marker is only identical to itself.
func Identical(a, b any) bool {
	if IsUnset(a) || IsUnset(b) {
		return IsUnset(a) && IsUnset(b)
	}

	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	if ta.Comparable() {
		// interface fields may still hold non comparable values
		defer func() { _ = recover() }()
		return a == b
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)

	switch ta.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}
