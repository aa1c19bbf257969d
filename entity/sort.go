package entity

// Comparator orders two items, returning negative, zero or positive.
type Comparator interface {
	Compare(a, b Item) int
}

// ComparatorFunc adapts a plain func to Comparator.
type ComparatorFunc func(a, b Item) int

// Compare calls fn.
func (fn ComparatorFunc) Compare(a, b Item) int {
	return fn(a, b)
}

// SortSpec orders a collection either by a named field or by a Comparator.
// The zero value sorts nothing.
type SortSpec struct {
	field   string
	cmp     Comparator
	Reverse bool
}

// ByField sorts on the natural order of a field's values.
func ByField(name string) SortSpec {
	return SortSpec{field: name}
}

// ByComparator sorts with a custom Comparator.
func ByComparator(cmp Comparator) SortSpec {
	return SortSpec{cmp: cmp}
}

// Reversed returns a copy of spec with Reverse set.
func (spec SortSpec) Reversed(reverse bool) SortSpec {
	spec.Reverse = reverse
	return spec
}

// Field returns the field name when spec sorts by field.
func (spec SortSpec) Field() (name string, ok bool) {
	return spec.field, spec.cmp == nil && spec.field != ""
}

// Comparator returns the comparator when spec sorts by comparator.
func (spec SortSpec) Comparator() (cmp Comparator, ok bool) {
	return spec.cmp, spec.cmp != nil
}

// Absent is true for a spec with neither field nor comparator.
func (spec SortSpec) Absent() bool {
	return spec.field == "" && spec.cmp == nil
}
