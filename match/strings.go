package match

import (
	"strings"
	"unicode/utf8"

	"github.com/zostay/go-std/slices"

	"github.com/parsekit/comb"
)

// RunePredicate is a function that returns true if it matches a single
// rune or false if it does not.
type RunePredicate func(r rune) bool

// RunesInSet creates a RunePredicate from the set of runes given.
func RunesInSet(cs ...rune) RunePredicate {
	return func(r rune) bool {
		for _, c := range cs {
			if c == r {
				return true
			}
		}
		return false
	}
}

// RunesInRange creates a RunePredicate that matches any rune in the given
// range. The match is inclusive so runes equal to either end point are
// also matched.
func RunesInRange(cs, ce rune) RunePredicate {
	return func(r rune) bool {
		return r >= cs && r <= ce
	}
}

// AnyRunes creates a combined RunePredicate that matches a rune that
// matches any of the given predicates.
func AnyRunes(preds ...RunePredicate) RunePredicate {
	switch len(preds) {
	case 0:
		return func(rune) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(r rune) bool {
			for _, pred := range preds {
				if pred(r) {
					return true
				}
			}
			return false
		}
	}
}

// NotRunes creates a combined RunePredicate that matches a rune that does
// not match any of the given predicates.
func NotRunes(preds ...RunePredicate) RunePredicate {
	return func(r rune) bool {
		for _, pred := range preds {
			if pred(r) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThatRunes creates a combined RunePredicate that matches a
// rune that matches the first predicate, but does not match the second
// predicate.
func ThisButNotThatRunes(this, that RunePredicate) RunePredicate {
	return func(r rune) bool {
		return this(r) && !that(r)
	}
}

// RuneMatcher is the matcher returned by OneRune. It provides a number of
// tools that allow this matcher to be combined with other RuneMatchers.
type RuneMatcher struct {
	pred RunePredicate
}

// OneRune returns a matcher that matches the next complete rune against
// the given RunePredicates. A mismatch, empty input, or invalid encoding
// raises a recoverable signal.
func OneRune(preds ...RunePredicate) *RuneMatcher {
	return &RuneMatcher{pred: AnyRunes(preds...)}
}

// Parse matches the next complete rune of the input against the
// predicate.
func (m *RuneMatcher) Parse(in comb.Str) (comb.Str, rune, error) {
	r, size := utf8.DecodeRuneInString(string(in))
	if size == 0 || r == utf8.RuneError && size == 1 || !m.pred(r) {
		return in, 0, comb.NewErr(comb.KindOneRune, in.Len())
	}
	_, rest := in.SplitAt(size)
	return rest, r, nil
}

func extractPredFromRunes(m *RuneMatcher) RunePredicate {
	return m.pred
}

// AndAlso creates a new RuneMatcher which combines the predicate of this
// matcher with the predicates of the given matchers such that a match
// occurs if the next rune in the input matches any of them.
func (m *RuneMatcher) AndAlso(ms ...*RuneMatcher) *RuneMatcher {
	preds := slices.Map(ms, extractPredFromRunes)
	preds = append([]RunePredicate{m.pred}, preds...)
	return &RuneMatcher{pred: AnyRunes(preds...)}
}

// ButNot creates a new RuneMatcher which combines the predicate of this
// matcher with the predicates of the given matchers such that a match is
// successful if it matches this matcher, but not those.
func (m *RuneMatcher) ButNot(ms ...*RuneMatcher) *RuneMatcher {
	preds := slices.Map(ms, extractPredFromRunes)
	return &RuneMatcher{pred: ThisButNotThatRunes(m.pred, AnyRunes(preds...))}
}

// Tag returns a parser that matches the given string at the start of the
// input, returning the matched prefix.
func Tag(tag string) comb.Parser[comb.Str, comb.Str] {
	return func(in comb.Str) (comb.Str, comb.Str, error) {
		if !strings.HasPrefix(string(in), tag) {
			return in, "", comb.NewErr(comb.KindTag, in.Len())
		}
		prefix, rest := in.SplitAt(len(tag))
		return rest, prefix, nil
	}
}

// TakeRuneWhile0 returns a parser that consumes the longest (possibly
// empty) prefix of runes matching the predicate. It never fails, and may
// succeed consuming nothing.
func TakeRuneWhile0(pred RunePredicate) comb.Parser[comb.Str, comb.Str] {
	return func(in comb.Str) (comb.Str, comb.Str, error) {
		n := takeRunes(string(in), pred)
		prefix, rest := in.SplitAt(n)
		return rest, prefix, nil
	}
}

// TakeRuneWhile1 is TakeRuneWhile0 requiring at least one matching rune.
func TakeRuneWhile1(pred RunePredicate) comb.Parser[comb.Str, comb.Str] {
	return func(in comb.Str) (comb.Str, comb.Str, error) {
		n := takeRunes(string(in), pred)
		if n == 0 {
			return in, "", comb.NewErr(comb.KindTakeWhile1, in.Len())
		}
		prefix, rest := in.SplitAt(n)
		return rest, prefix, nil
	}
}

// takeRunes returns the byte length of the longest prefix of s whose
// runes all match pred. An invalid encoding ends the prefix.
func takeRunes(s string, pred RunePredicate) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if r == utf8.RuneError && size == 1 || !pred(r) {
			break
		}
		n += size
	}
	return n
}
