package hooks

import "maps"

// Merge returns a function that overlays a partial update onto map state
// held behind set. Keys absent from the patch keep their previous values;
// the previous map is copied, never modified.
//
//	form, setForm := s.form.Use(...)
//	patch := hooks.Merge(setForm)
//	patch(map[string]string{"email": input})
func Merge[K comparable, V any](set func(Update[map[K]V])) func(patch map[K]V) {
	return func(patch map[K]V) {
		set(Func(func(prev map[K]V) map[K]V {
			next := make(map[K]V, len(prev)+len(patch))
			maps.Copy(next, prev)
			maps.Copy(next, patch)
			return next
		}))
	}
}
