// Package multi provides the repetition, folding, termination,
// separated-list, length-prefixed, and fixed-arity combinators. Every
// combinator here applies its child parsers to successive remainders of a
// value input and guards its own loop against children that succeed
// without consuming anything.
package multi

import (
	"github.com/parsekit/comb"
)

// Many0 returns a parser that applies f zero or more times, collecting
// the outputs, until f reports a recoverable error. It always succeeds
// unless f raises a fatal or incomplete signal, which propagates
// untouched. A success of f that consumes no input is reported as a
// recoverable error rather than looping forever.
func Many0[I comb.Input[I], O any](f comb.Parser[I, O]) comb.Parser[I, []O] {
	return func(in I) (I, []O, error) {
		var outs []O
		cur := in
		for {
			rest, out, err := f.Parse(cur)
			if err != nil {
				if comb.IsRecoverable(err) {
					return cur, outs, nil
				}
				return in, nil, err
			}

			if rest.Len() == cur.Len() {
				return in, nil, comb.NewErr(comb.KindMany0, cur.Len())
			}

			outs = append(outs, out)
			cur = rest
		}
	}
}

// Many1 returns a parser that applies f one or more times, collecting the
// outputs. A recoverable error on the very first application is
// propagated, annotated, instead of producing an empty result; after
// that the behavior is the same as Many0.
func Many1[I comb.Input[I], O any](f comb.Parser[I, O]) comb.Parser[I, []O] {
	return func(in I) (I, []O, error) {
		var outs []O
		cur := in
		for {
			rest, out, err := f.Parse(cur)
			if err != nil {
				if !comb.IsRecoverable(err) {
					return in, nil, err
				}
				if len(outs) == 0 {
					return in, nil, comb.Annotate(comb.KindMany1, in.Len(), err)
				}
				return cur, outs, nil
			}

			if rest.Len() == cur.Len() {
				return in, nil, comb.NewErr(comb.KindMany1, cur.Len())
			}

			outs = append(outs, out)
			cur = rest
		}
	}
}

// ManyMN returns a parser that applies f between min and max times. A
// recoverable error before min applications propagates annotated; at or
// past min it ends the repetition gracefully. Reaching max stops without
// consulting f again. Calling ManyMN with min greater than max is a
// configuration mistake and yields a fatal signal no matter the input.
func ManyMN[I comb.Input[I], O any](min, max int, f comb.Parser[I, O]) comb.Parser[I, []O] {
	return func(in I) (I, []O, error) {
		if min > max {
			return in, nil, comb.NewFailure(comb.KindManyMN, in.Len())
		}

		outs := make([]O, 0, comb.Prealloc[O](min))
		cur := in
		for count := 0; count < max; count++ {
			rest, out, err := f.Parse(cur)
			if err != nil {
				if !comb.IsRecoverable(err) {
					return in, nil, err
				}
				if count < min {
					return in, nil, comb.Annotate(comb.KindManyMN, cur.Len(), err)
				}
				return cur, outs, nil
			}

			if rest.Len() == cur.Len() {
				return in, nil, comb.NewErr(comb.KindManyMN, cur.Len())
			}

			outs = append(outs, out)
			cur = rest
		}

		return cur, outs, nil
	}
}

// Many0Count returns a parser with the control flow of Many0 that tracks
// only how many times f matched, never materializing the outputs. Use it
// when only the cardinality matters.
func Many0Count[I comb.Input[I], O any](f comb.Parser[I, O]) comb.Parser[I, int] {
	return func(in I) (I, int, error) {
		count := 0
		cur := in
		for {
			rest, _, err := f.Parse(cur)
			if err != nil {
				if comb.IsRecoverable(err) {
					return cur, count, nil
				}
				return in, 0, err
			}

			if rest.Len() == cur.Len() {
				return in, 0, comb.NewErr(comb.KindMany0Count, cur.Len())
			}

			count++
			cur = rest
		}
	}
}

// Many1Count is to Many1 what Many0Count is to Many0.
func Many1Count[I comb.Input[I], O any](f comb.Parser[I, O]) comb.Parser[I, int] {
	return func(in I) (I, int, error) {
		count := 0
		cur := in
		for {
			rest, _, err := f.Parse(cur)
			if err != nil {
				if !comb.IsRecoverable(err) {
					return in, 0, err
				}
				if count == 0 {
					return in, 0, comb.Annotate(comb.KindMany1Count, in.Len(), err)
				}
				return cur, count, nil
			}

			if rest.Len() == cur.Len() {
				return in, 0, comb.NewErr(comb.KindMany1Count, cur.Len())
			}

			count++
			cur = rest
		}
	}
}
