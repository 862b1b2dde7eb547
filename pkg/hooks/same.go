package hooks

import "reflect"

// Same reports whether a and b are the same value in the sense hooks use
// to detect changes.
//
// Scalars, strings and other comparable values compare with ==. Slices,
// maps, channels, functions and pointers compare by identity: two slices
// are the same only if they share a backing array and length. Structs and
// arrays are the same when all their fields or elements are. Functions
// compare by code pointer, so two closures created from the same literal
// are reported as the same.
func Same[T any](a, b T) bool {
	return sameValue(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

func sameValue(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Slice:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	case reflect.Map, reflect.Chan, reflect.Func, reflect.Pointer, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		ea, eb := a.Elem(), b.Elem()
		if ea.Type() != eb.Type() {
			return false
		}
		return sameValue(ea, eb)
	case reflect.Struct:
		for i := range a.NumField() {
			if !sameValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Array:
		for i := range a.Len() {
			if !sameValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	default:
		return a.Equal(b)
	}
}

func equalOrSame[T any](equal func(a, b T) bool) func(a, b T) bool {
	if equal != nil {
		return equal
	}
	return Same[T]
}
