package hooks

import "testing"

type point struct {
	X, Y int
}

type withSlice struct {
	Name  string
	Items []int
}

func TestSame_Comparable(t *testing.T) {
	if !Same(1, 1) || Same(1, 2) {
		t.Error("ints compare by value")
	}
	if !Same("a", "a") || Same("a", "b") {
		t.Error("strings compare by value")
	}
	if !Same(point{1, 2}, point{1, 2}) || Same(point{1, 2}, point{2, 1}) {
		t.Error("structs compare field-wise")
	}
	if !Same([2]int{1, 2}, [2]int{1, 2}) {
		t.Error("arrays compare element-wise")
	}
}

func TestSame_SliceIdentity(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{1, 2, 3}

	if !Same(a, a) {
		t.Error("a slice is the same as itself")
	}
	if Same(a, b) {
		t.Error("equal contents in different arrays are not the same")
	}
	if Same(a, a[:2]) {
		t.Error("a shorter view is not the same")
	}
	if !Same[[]int](nil, nil) || Same(nil, a) {
		t.Error("nil slices are only the same as nil")
	}
}

func TestSame_MapAndPointerIdentity(t *testing.T) {
	m := map[string]int{"a": 1}
	if !Same(m, m) || Same(m, map[string]int{"a": 1}) {
		t.Error("maps compare by identity")
	}

	p := &point{1, 2}
	if !Same(p, p) || Same(p, &point{1, 2}) {
		t.Error("pointers compare by identity")
	}
}

func TestSame_StructWithSlice(t *testing.T) {
	items := []int{1}
	if !Same(withSlice{"a", items}, withSlice{"a", items}) {
		t.Error("structs sharing a slice are the same")
	}
	if Same(withSlice{"a", items}, withSlice{"a", []int{1}}) {
		t.Error("structs with distinct slices are not the same")
	}
}

func TestSame_Interfaces(t *testing.T) {
	if !Same[any](1, 1) {
		t.Error("boxed equal ints are the same")
	}
	if Same[any](1, "1") {
		t.Error("different dynamic types are not the same")
	}
	if !Same[any](nil, nil) || Same[any](nil, 0) {
		t.Error("nil interface is only the same as nil")
	}
	if Same[any]([]int{1}, []int{1}) {
		t.Error("boxed slices compare by identity")
	}
}

func TestSame_Funcs(t *testing.T) {
	f := func() {}
	if !Same(f, f) {
		t.Error("a func is the same as itself")
	}
}

func TestEqualOrSame(t *testing.T) {
	always := func(a, b []int) bool { return true }
	if !equalOrSame(always)([]int{1}, []int{2}) {
		t.Error("expected custom equality to be used")
	}
	if equalOrSame[[]int](nil)([]int{1}, []int{1}) {
		t.Error("expected identity comparison by default")
	}
}
