package multi

import (
	"github.com/parsekit/comb"
)

// Count returns a parser that applies f exactly n times, collecting the
// outputs. Any error from f is annotated and propagated. The result slice
// is pre-sized under the comb.MaxPreallocBytes cap, which never changes
// how many elements are read. A negative n is a configuration mistake and
// yields a fatal signal.
func Count[I comb.Input[I], O any](f comb.Parser[I, O], n int) comb.Parser[I, []O] {
	return func(in I) (I, []O, error) {
		if n < 0 {
			return in, nil, comb.NewFailure(comb.KindCount, in.Len())
		}

		outs := make([]O, 0, comb.Prealloc[O](n))
		cur := in
		for i := 0; i < n; i++ {
			rest, out, err := f.Parse(cur)
			if err != nil {
				return in, nil, comb.Annotate(comb.KindCount, cur.Len(), err)
			}
			outs = append(outs, out)
			cur = rest
		}

		return cur, outs, nil
	}
}

// Fill returns a parser that applies f once per slot of the given buffer,
// overwriting the slots in order. Any failure aborts, annotated, and the
// buffer's contents past the failing slot are unspecified. The caller
// owns the buffer; the parser's output is empty.
func Fill[I comb.Input[I], O any](f comb.Parser[I, O], buf []O) comb.Parser[I, struct{}] {
	return func(in I) (I, struct{}, error) {
		cur := in
		for i := range buf {
			rest, out, err := f.Parse(cur)
			if err != nil {
				return in, struct{}{}, comb.Annotate(comb.KindFill, cur.Len(), err)
			}
			buf[i] = out
			cur = rest
		}

		return cur, struct{}{}, nil
	}
}
