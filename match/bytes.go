// Package match provides primitive matchers for the combinators in multi
// and the byte/rune predicate algebra used to build them. Every matcher
// here honors the child-parser contract: consume a prefix of a value
// input and return the remainder, or raise a recoverable signal on a
// plain mismatch.
package match

import (
	"bytes"

	"github.com/zostay/go-std/slices"

	"github.com/parsekit/comb"
)

// BytePredicate is a function that returns true if it matches a single
// byte or false if it does not.
type BytePredicate func(c byte) bool

// BytesInSet creates a BytePredicate from the set of bytes given.
func BytesInSet(cs ...byte) BytePredicate {
	return func(b byte) bool {
		for _, c := range cs {
			if c == b {
				return true
			}
		}
		return false
	}
}

// BytesInRange creates a BytePredicate that matches any byte in the given
// range. The match is inclusive so bytes equal to either end point are
// also matched.
func BytesInRange(cs, ce byte) BytePredicate {
	return func(b byte) bool {
		return b >= cs && b <= ce
	}
}

// AnyBytes creates a combined BytePredicate that matches a byte that
// matches any of the given predicates.
func AnyBytes(preds ...BytePredicate) BytePredicate {
	switch len(preds) {
	case 0:
		return func(byte) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(b byte) bool {
			for _, pred := range preds {
				if pred(b) {
					return true
				}
			}
			return false
		}
	}
}

// NotBytes creates a combined BytePredicate that matches a byte that does
// not match any of the given predicates.
func NotBytes(preds ...BytePredicate) BytePredicate {
	return func(b byte) bool {
		for _, pred := range preds {
			if pred(b) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThatBytes creates a combined BytePredicate that matches a
// byte that matches the first predicate, but does not match the second
// predicate.
func ThisButNotThatBytes(this, that BytePredicate) BytePredicate {
	return func(b byte) bool {
		return this(b) && !that(b)
	}
}

// ByteMatcher is the matcher returned by OneByte. It provides a number of
// tools that allow this matcher to be combined with other ByteMatchers.
type ByteMatcher struct {
	pred BytePredicate
}

// OneByte returns a matcher that matches exactly one byte if the next
// byte in the input matches any of the given predicates. A mismatch or
// empty input raises a recoverable signal.
func OneByte(preds ...BytePredicate) *ByteMatcher {
	return &ByteMatcher{pred: AnyBytes(preds...)}
}

// Parse matches the next byte of the input against the predicate.
func (b *ByteMatcher) Parse(in comb.Bytes) (comb.Bytes, byte, error) {
	if in.Len() == 0 || !b.pred(in[0]) {
		return in, 0, comb.NewErr(comb.KindOneByte, in.Len())
	}
	_, rest := in.SplitAt(1)
	return rest, in[0], nil
}

func extractPredFromBytes(b *ByteMatcher) BytePredicate {
	return b.pred
}

// AndAlso creates a new ByteMatcher which combines the predicate of this
// matcher with the predicates of the given matchers such that a match
// occurs if the next byte in the input matches any of them.
func (b *ByteMatcher) AndAlso(bs ...*ByteMatcher) *ByteMatcher {
	preds := slices.Map(bs, extractPredFromBytes)
	preds = append([]BytePredicate{b.pred}, preds...)
	return &ByteMatcher{pred: AnyBytes(preds...)}
}

// ButNot creates a new ByteMatcher which combines the predicate of this
// matcher with the predicates of the given matchers such that a match is
// successful if it matches this matcher, but not those.
func (b *ByteMatcher) ButNot(bs ...*ByteMatcher) *ByteMatcher {
	preds := slices.Map(bs, extractPredFromBytes)
	return &ByteMatcher{pred: ThisButNotThatBytes(b.pred, AnyBytes(preds...))}
}

// TagBytes returns a parser that matches the given byte slice at the
// start of the input, returning the matched prefix.
func TagBytes(tag []byte) comb.Parser[comb.Bytes, comb.Bytes] {
	return func(in comb.Bytes) (comb.Bytes, comb.Bytes, error) {
		if len(in) < len(tag) || !bytes.Equal(in[:len(tag)], tag) {
			return in, nil, comb.NewErr(comb.KindTag, in.Len())
		}
		prefix, rest := in.SplitAt(len(tag))
		return rest, prefix, nil
	}
}

// Take returns a parser that carves exactly n bytes off the input,
// raising a recoverable signal when fewer remain.
func Take(n int) comb.Parser[comb.Bytes, comb.Bytes] {
	return func(in comb.Bytes) (comb.Bytes, comb.Bytes, error) {
		if in.Len() < n {
			return in, nil, comb.NewErr(comb.KindTake, in.Len())
		}
		prefix, rest := in.SplitAt(n)
		return rest, prefix, nil
	}
}

// TakeWhile0 returns a parser that consumes the longest (possibly empty)
// prefix of bytes matching the predicate. It never fails, and may succeed
// consuming nothing; repetition combinators applied over it rely on their
// own zero-progress guards.
func TakeWhile0(pred BytePredicate) comb.Parser[comb.Bytes, comb.Bytes] {
	return func(in comb.Bytes) (comb.Bytes, comb.Bytes, error) {
		n := 0
		for n < len(in) && pred(in[n]) {
			n++
		}
		prefix, rest := in.SplitAt(n)
		return rest, prefix, nil
	}
}

// TakeWhile1 is TakeWhile0 requiring at least one matching byte.
func TakeWhile1(pred BytePredicate) comb.Parser[comb.Bytes, comb.Bytes] {
	return func(in comb.Bytes) (comb.Bytes, comb.Bytes, error) {
		n := 0
		for n < len(in) && pred(in[n]) {
			n++
		}
		if n == 0 {
			return in, nil, comb.NewErr(comb.KindTakeWhile1, in.Len())
		}
		prefix, rest := in.SplitAt(n)
		return rest, prefix, nil
	}
}
