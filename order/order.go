// Package order sorts a collection by field or by comparator.
package order

import (
	"cmp"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	nt "sieve/entity"
)

// Sorter sorts with strings collated for Locale.
type Sorter struct {
	Locale language.Tag
}

// Apply sorts items with an English collator.
func Apply(items []nt.Item, spec nt.SortSpec) []nt.Item {
	return Sorter{Locale: language.English}.Apply(items, spec)
}

// Apply returns a sorted copy of items, stable among ties.
// An absent spec or an empty collection returns items as is.
func (srt Sorter) Apply(items []nt.Item, spec nt.SortSpec) []nt.Item {

	if len(items) == 0 || spec.Absent() {
		return items
	}

	base := srt.base(spec)
	compare := func(a, b nt.Item) int {
		comp := base(a, b)
		if spec.Reverse {
			comp = -comp
		}
		return comp
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, compare)

	return sorted
}

// Compare orders two values of the same kind, or returns zero.
// Strings are collated, numbers, times and bools use their natural order.
func (srt Sorter) Compare(col *collate.Collator, va, vb nt.Value) int {

	switch ra := va.Raw.(type) {
	case string:
		rb, ok := vb.Raw.(string)
		if !ok {
			return 0
		}
		return col.CompareString(ra, rb)
	case time.Time:
		rb, ok := vb.Raw.(time.Time)
		if !ok {
			return 0
		}
		return ra.Compare(rb)
	case bool:
		rb, ok := vb.Raw.(bool)
		if !ok || ra == rb {
			return 0
		}
		if ra {
			return 1
		}
		return -1
	}

	if !va.Numeric() || !vb.Numeric() {
		return 0
	}

	fa, errA := va.Float()
	fb, errB := vb.Float()
	if errA != nil || errB != nil {
		return 0
	}
	return cmp.Compare(fa, fb)
}

// unexported

func (srt Sorter) base(spec nt.SortSpec) func(a, b nt.Item) int {

	if comparator, ok := spec.Comparator(); ok {
		return comparator.Compare
	}

	field, _ := spec.Field()
	col := collate.New(srt.Locale)

	return func(a, b nt.Item) int {
		va, okA := a.Get(field)
		vb, okB := b.Get(field)
		if !okA || !okB {
			return 0
		}
		return srt.Compare(col, va, vb)
	}
}
