// Package filter narrows a collection to the items matching a set of specs.
package filter

import (
	"time"

	"github.com/dlclark/regexp2"

	nt "sieve/entity"
)

// matchTimeout bounds a single pattern evaluation.
const matchTimeout = 100 * time.Millisecond

// Matcher tests one item field against a compiled pattern.
type Matcher struct {
	property string
	re       *regexp2.Regexp
}

// Compile builds a case-insensitive, unanchored matcher for spec.
// A value that is not a valid pattern is matched literally.
func Compile(spec nt.FilterSpec) Matcher {

	opts := regexp2.RegexOptions(regexp2.ECMAScript | regexp2.IgnoreCase)

	re, err := regexp2.Compile(spec.Value, opts)
	if err != nil {
		re = regexp2.MustCompile(regexp2.Escape(spec.Value), opts)
	}
	re.MatchTimeout = matchTimeout

	return Matcher{
		property: spec.Property,
		re:       re,
	}
}

// Match reports whether the item's field matches.
// Absent fields and fields without a string form never match.
func (mt Matcher) Match(item nt.Item) bool {

	val, ok := item.Get(mt.property)
	if !ok {
		return false
	}

	str, err := val.Str()
	if err != nil {
		return false
	}

	matched, err := mt.re.MatchString(str)
	if err != nil {
		return false
	}
	return matched
}

// Apply returns the items matching every spec.
// With no items or no specs, items is returned as is.
func Apply(items []nt.Item, specs []nt.FilterSpec) []nt.Item {

	if len(items) == 0 || len(specs) == 0 {
		return items
	}

	matchers := make([]Matcher, len(specs))
	for i, spec := range specs {
		matchers[i] = Compile(spec)
	}

	filtered := []nt.Item{}
	for _, item := range items {
		if matchAll(matchers, item) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// unexported

func matchAll(matchers []Matcher, item nt.Item) bool {
	for _, mt := range matchers {
		if !mt.Match(item) {
			return false
		}
	}
	return true
}
