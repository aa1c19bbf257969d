package order

import (
	"cmp"

	nt "sieve/entity"
)

// Number compares a numeric field, larger values first.
// Fields that are absent or not numbers compare as equal.
type Number string

// Compare returns the sign of b minus a.
func (field Number) Compare(a, b nt.Item) int {

	fa, okA := number(a, string(field))
	fb, okB := number(b, string(field))
	if !okA || !okB {
		return 0
	}

	return cmp.Compare(fb, fa)
}

// Date compares a date-like field, later values first.
// Strings are parsed; anything unparseable compares as equal.
type Date string

// Compare returns the sign of time b minus time a.
func (field Date) Compare(a, b nt.Item) int {

	va, okA := a.Get(string(field))
	vb, okB := b.Get(string(field))
	if !okA || !okB {
		return 0
	}

	ta, errA := va.Time()
	tb, errB := vb.Time()
	if errA != nil || errB != nil {
		return 0
	}

	return tb.Compare(ta)
}

func number(item nt.Item, field string) (float64, bool) {

	val, ok := item.Get(field)
	if !ok {
		return 0, false
	}

	f, err := val.Float()
	if err != nil {
		return 0, false
	}
	return f, true
}
