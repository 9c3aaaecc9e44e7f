package schema

import (
	"iter"
	"math"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/1ean267/nexustack-sub001/example"
)

// Example candidates are filtered against the declared constraints so that
// every value handed to a renderer satisfies the schema it illustrates.

func (o IntOptions[T]) allows(v T) bool {
	if lo, ok := o.Min.Value(); ok {
		if v < lo || (o.Min.IsExclusive() && v == lo) {
			return false
		}
	}
	if hi, ok := o.Max.Value(); ok {
		if v > hi || (o.Max.IsExclusive() && v == hi) {
			return false
		}
	}
	if o.MultipleOf != 0 && v%o.MultipleOf != 0 {
		return false
	}
	if len(o.Only) > 0 && !slices.Contains(o.Only, v) {
		return false
	}
	return true
}

// candidates returns the default values plus the values closest to each
// bound, rounded onto MultipleOf.
func (o IntOptions[T]) candidates(defaults iter.Seq[T]) iter.Seq[T] {
	if len(o.Only) > 0 {
		return example.Of(o.Only...)
	}
	var edges []T
	if lo, ok := o.Min.Value(); ok {
		if o.Min.IsExclusive() && lo+1 > lo {
			lo++
		}
		edges = append(edges, roundUp(lo, o.MultipleOf))
	}
	if hi, ok := o.Max.Value(); ok {
		if o.Max.IsExclusive() && hi-1 < hi {
			hi--
		}
		edges = append(edges, roundDown(hi, o.MultipleOf))
	}
	return example.Chain(defaults, example.Of(edges...))
}

func roundUp[T example.Integer](v, m T) T {
	if m < 0 {
		m = -m
	}
	if m == 0 {
		return v
	}
	r := v % m
	switch {
	case r == 0:
		return v
	case r < 0:
		return v - r
	default:
		if next := v + (m - r); next > v {
			return next
		}
		return v
	}
}

func roundDown[T example.Integer](v, m T) T {
	if m < 0 {
		m = -m
	}
	if m == 0 {
		return v
	}
	r := v % m
	switch {
	case r == 0:
		return v
	case r > 0:
		return v - r
	default:
		if next := v - (m + r); next < v {
			return next
		}
		return v
	}
}

func (o FloatOptions[T]) allows(v T) bool {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	if lo, ok := o.Min.Value(); ok {
		if v < lo || (o.Min.IsExclusive() && v == lo) {
			return false
		}
	}
	if hi, ok := o.Max.Value(); ok {
		if v > hi || (o.Max.IsExclusive() && v == hi) {
			return false
		}
	}
	if o.MultipleOf != 0 && math.Mod(f, float64(o.MultipleOf)) != 0 {
		return false
	}
	return true
}

func (o FloatOptions[T]) candidates(defaults iter.Seq[T]) iter.Seq[T] {
	var edges []T
	if lo, ok := o.Min.Value(); ok {
		edges = append(edges, lo)
		if o.MultipleOf != 0 {
			m := math.Abs(float64(o.MultipleOf))
			edges = append(edges, T(math.Ceil(float64(lo)/m)*m))
		}
	}
	if hi, ok := o.Max.Value(); ok {
		edges = append(edges, hi)
		if o.MultipleOf != 0 {
			m := math.Abs(float64(o.MultipleOf))
			edges = append(edges, T(math.Floor(float64(hi)/m)*m))
		}
	}
	return example.Chain(defaults, example.Of(edges...))
}

func (o CharOptions) allows(r rune) bool {
	return len(o.Only) == 0 || slices.Contains(o.Only, r)
}

func (o StringOptions) allows(s string) bool {
	n := utf8.RuneCountInString(s)
	if o.MinLength != nil && n < *o.MinLength {
		return false
	}
	if o.MaxLength != nil && n > *o.MaxLength {
		return false
	}
	if len(o.Only) > 0 && !slices.Contains(o.Only, s) {
		return false
	}
	if o.Pattern != "" && !matchPattern(o.Pattern, s) {
		return false
	}
	return true
}

// patternTimeout bounds a single match; backtracking patterns can otherwise
// run for exponential time on unlucky candidates.
const patternTimeout = 100 * time.Millisecond

// patterns caches compiled ECMAScript patterns, the dialect JSON Schema
// prescribes for "pattern".
var patterns sync.Map // string -> *regexp2.Regexp

// matchPattern reports whether s matches pattern. A pattern that does not
// compile admits nothing, since no example can be shown to satisfy it.
func matchPattern(pattern, s string) bool {
	var re *regexp2.Regexp
	if v, ok := patterns.Load(pattern); ok {
		re = v.(*regexp2.Regexp)
	} else {
		compiled, err := regexp2.Compile(pattern, regexp2.ECMAScript)
		if err != nil {
			return false
		}
		compiled.MatchTimeout = patternTimeout
		v, _ := patterns.LoadOrStore(pattern, compiled)
		re = v.(*regexp2.Regexp)
	}
	ok, err := re.MatchString(s)
	return err == nil && ok
}

func (o StringOptions) candidates(defaults iter.Seq[string]) iter.Seq[string] {
	if len(o.Only) > 0 {
		return example.Of(o.Only...)
	}
	var edges []string
	if o.MinLength != nil && *o.MinLength > 0 {
		edges = append(edges, strings.Repeat("a", *o.MinLength))
	}
	if o.MaxLength != nil && *o.MaxLength > 0 && *o.MaxLength <= maxFillerLength {
		edges = append(edges, strings.Repeat("a", *o.MaxLength))
	}
	return example.Chain(defaults, example.Of(edges...))
}

func (o BytesOptions) allows(b []byte) bool {
	if o.MinLength != nil && len(b) < *o.MinLength {
		return false
	}
	if o.MaxLength != nil && len(b) > *o.MaxLength {
		return false
	}
	return true
}

func (o SeqOptions) allowsLen(n int) bool {
	if o.MinItems != nil && n < *o.MinItems {
		return false
	}
	if o.MaxItems != nil && n > *o.MaxItems {
		return false
	}
	return true
}

// maxFillerLength caps the filler example derived from MaxLength.
const maxFillerLength = 64

// distinct drops repeated values while keeping the first occurrence.
func distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}
