package multi

import (
	"github.com/parsekit/comb"
)

// FoldMany0 returns a parser with the iteration semantics of Many0 that
// combines each output into an accumulator instead of collecting a slice.
// The accumulator starts from init, called fresh on every invocation, and
// grows by g. Use it when the caller only needs a reduction.
func FoldMany0[I comb.Input[I], O, A any](
	f comb.Parser[I, O],
	init func() A,
	g func(acc A, out O) A,
) comb.Parser[I, A] {
	return func(in I) (I, A, error) {
		acc := init()
		cur := in
		for {
			rest, out, err := f.Parse(cur)
			if err != nil {
				if comb.IsRecoverable(err) {
					return cur, acc, nil
				}
				var zero A
				return in, zero, err
			}

			if rest.Len() == cur.Len() {
				var zero A
				return in, zero, comb.NewErr(comb.KindFoldMany0, cur.Len())
			}

			acc = g(acc, out)
			cur = rest
		}
	}
}

// FoldMany1 is FoldMany0 requiring at least one match: a recoverable
// error on the first application propagates annotated. Zero-progress
// successes are recoverable errors on every iteration, first or later,
// matching Many1.
func FoldMany1[I comb.Input[I], O, A any](
	f comb.Parser[I, O],
	init func() A,
	g func(acc A, out O) A,
) comb.Parser[I, A] {
	return func(in I) (I, A, error) {
		acc := init()
		count := 0
		cur := in
		for {
			rest, out, err := f.Parse(cur)
			if err != nil {
				var zero A
				if !comb.IsRecoverable(err) {
					return in, zero, err
				}
				if count == 0 {
					return in, zero, comb.Annotate(comb.KindFoldMany1, in.Len(), err)
				}
				return cur, acc, nil
			}

			if rest.Len() == cur.Len() {
				var zero A
				return in, zero, comb.NewErr(comb.KindFoldMany1, cur.Len())
			}

			acc = g(acc, out)
			count++
			cur = rest
		}
	}
}

// FoldManyMN is ManyMN with a caller-supplied accumulator. A min greater
// than max is a fatal configuration mistake; a recoverable error before
// min applications propagates annotated, at or past min it ends the fold
// gracefully.
func FoldManyMN[I comb.Input[I], O, A any](
	min, max int,
	f comb.Parser[I, O],
	init func() A,
	g func(acc A, out O) A,
) comb.Parser[I, A] {
	return func(in I) (I, A, error) {
		if min > max {
			var zero A
			return in, zero, comb.NewFailure(comb.KindFoldManyMN, in.Len())
		}

		acc := init()
		cur := in
		for count := 0; count < max; count++ {
			rest, out, err := f.Parse(cur)
			if err != nil {
				var zero A
				if !comb.IsRecoverable(err) {
					return in, zero, err
				}
				if count < min {
					return in, zero, comb.Annotate(comb.KindFoldManyMN, cur.Len(), err)
				}
				return cur, acc, nil
			}

			if rest.Len() == cur.Len() {
				var zero A
				return in, zero, comb.NewErr(comb.KindFoldManyMN, cur.Len())
			}

			acc = g(acc, out)
			cur = rest
		}

		return cur, acc, nil
	}
}

// Many returns a parser that applies f as many times as the given range
// allows, collecting the outputs. An inverted range is a fatal
// configuration mistake. A recoverable error from f ends the loop
// gracefully when the iteration count so far satisfies the range and
// propagates annotated when it does not; a bounded range stops at its
// maximum without consulting f again.
//
// Many subsumes the specialized forms: Many(comb.Unbounded(), f) is
// Many0, Many(comb.AtLeast(1), f) is Many1, and Many(comb.Between(m, n),
// f) is ManyMN.
func Many[I comb.Input[I], O any](r comb.Range, f comb.Parser[I, O]) comb.Parser[I, []O] {
	return func(in I) (I, []O, error) {
		if r.Inverted() {
			return in, nil, comb.NewFailure(comb.KindMany, in.Len())
		}

		min, max, bounded := r.Bounds()
		outs := make([]O, 0, comb.Prealloc[O](min))
		cur := in
		for count := 0; ; count++ {
			if bounded && count >= max {
				return cur, outs, nil
			}

			rest, out, err := f.Parse(cur)
			if err != nil {
				if !comb.IsRecoverable(err) {
					return in, nil, err
				}
				if r.Contains(count) {
					return cur, outs, nil
				}
				return in, nil, comb.Annotate(comb.KindMany, cur.Len(), err)
			}

			if rest.Len() == cur.Len() {
				return in, nil, comb.NewErr(comb.KindMany, cur.Len())
			}

			outs = append(outs, out)
			cur = rest
		}
	}
}

// Fold is the range-generic form of the folding combinators, with the
// same range semantics as Many and the same accumulator contract as
// FoldMany0.
func Fold[I comb.Input[I], O, A any](
	r comb.Range,
	f comb.Parser[I, O],
	init func() A,
	g func(acc A, out O) A,
) comb.Parser[I, A] {
	return func(in I) (I, A, error) {
		if r.Inverted() {
			var zero A
			return in, zero, comb.NewFailure(comb.KindFold, in.Len())
		}

		_, max, bounded := r.Bounds()
		acc := init()
		cur := in
		for count := 0; ; count++ {
			if bounded && count >= max {
				return cur, acc, nil
			}

			rest, out, err := f.Parse(cur)
			if err != nil {
				var zero A
				if !comb.IsRecoverable(err) {
					return in, zero, err
				}
				if r.Contains(count) {
					return cur, acc, nil
				}
				return in, zero, comb.Annotate(comb.KindFold, cur.Len(), err)
			}

			if rest.Len() == cur.Len() {
				var zero A
				return in, zero, comb.NewErr(comb.KindFold, cur.Len())
			}

			acc = g(acc, out)
			cur = rest
		}
	}
}
