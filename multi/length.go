package multi

import (
	"fortio.org/safecast"

	"github.com/parsekit/comb"
)

// Integer constrains the output of a length or count prefix parser to
// something convertible to a size.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// size narrows a prefix value to an int without silent truncation. The
// value came from the data, so a value that does not fit (or is negative)
// is malformed input, not a fatal mistake.
func size[N Integer](k comb.Kind, rem int, raw N) (int, error) {
	n, err := safecast.Conv[int](raw)
	if err != nil || n < 0 {
		return 0, comb.NewErr(k, rem)
	}
	return n, nil
}

// LengthData returns a parser that reads a length n with f and carves
// exactly n units off the remaining input, returning them uninterpreted.
// When fewer than n units remain the result is an incomplete signal
// carrying the deficit as its hint.
func LengthData[I comb.Input[I], N Integer](f comb.Parser[I, N]) comb.Parser[I, I] {
	return func(in I) (I, I, error) {
		rest, raw, err := f.Parse(in)
		if err != nil {
			var zero I
			return in, zero, err
		}

		n, err := size(comb.KindLengthData, rest.Len(), raw)
		if err != nil {
			var zero I
			return in, zero, err
		}

		if rest.Len() < n {
			var zero I
			return in, zero, comb.NewIncomplete(uint(n - rest.Len()))
		}

		data, tail := rest.SplitAt(n)
		return tail, data, nil
	}
}

// LengthValue returns a parser that carves a length-prefixed slice like
// LengthData and then applies g to that slice alone. Whatever g leaves
// unconsumed inside the slice is discarded; the remainder returned is the
// input after the whole length-prefixed unit.
//
// A carved slice has a fixed, complete extent, so g reporting that it
// needs more input is a contradiction there; that signal is remapped to a
// recoverable error. Everything else from g propagates verbatim.
func LengthValue[I comb.Input[I], N Integer, O any](f comb.Parser[I, N], g comb.Parser[I, O]) comb.Parser[I, O] {
	carve := LengthData(f)
	return func(in I) (I, O, error) {
		rest, data, err := carve(in)
		if err != nil {
			var zero O
			return in, zero, err
		}

		_, out, err := g.Parse(data)
		if err != nil {
			var zero O
			if e, ok := comb.AsErr(err); ok && e.Class == comb.MoreInput {
				return in, zero, comb.NewErr(comb.KindComplete, data.Len())
			}
			return in, zero, err
		}

		return rest, out, nil
	}
}

// LengthCount returns a parser that reads a count n with f and then
// applies g exactly n times, collecting the outputs. Once the count has
// been read all n elements are mandatory: any error from g is annotated
// and propagated, never recovered as a shorter list.
func LengthCount[I comb.Input[I], N Integer, O any](f comb.Parser[I, N], g comb.Parser[I, O]) comb.Parser[I, []O] {
	return func(in I) (I, []O, error) {
		rest, raw, err := f.Parse(in)
		if err != nil {
			return in, nil, err
		}

		n, err := size(comb.KindLengthCount, rest.Len(), raw)
		if err != nil {
			return in, nil, err
		}

		outs := make([]O, 0, comb.Prealloc[O](n))
		cur := rest
		for i := 0; i < n; i++ {
			grest, out, gerr := g.Parse(cur)
			if gerr != nil {
				return in, nil, comb.Annotate(comb.KindLengthCount, cur.Len(), gerr)
			}
			outs = append(outs, out)
			cur = grest
		}

		return cur, outs, nil
	}
}
