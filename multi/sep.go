package multi

import (
	"github.com/parsekit/comb"
)

// Terminated carries the result of ManyTill: the outputs of the body
// parser and the output of the terminator that ended the repetition.
type Terminated[O, E any] struct {
	Items []O
	End   E
}

// ManyTill returns a parser that tries the terminator g before every
// application of the body f and stops as soon as g succeeds, returning
// both the collected body outputs and g's output. If f fails recoverably
// before g has matched, the terminator was never found and the error
// propagates annotated. Fatal and incomplete signals from either parser
// propagate immediately.
func ManyTill[I comb.Input[I], O, E any](f comb.Parser[I, O], g comb.Parser[I, E]) comb.Parser[I, Terminated[O, E]] {
	return func(in I) (I, Terminated[O, E], error) {
		var res Terminated[O, E]
		cur := in
		for {
			grest, end, gerr := g.Parse(cur)
			if gerr == nil {
				res.End = end
				return grest, res, nil
			}
			if !comb.IsRecoverable(gerr) {
				return in, Terminated[O, E]{}, gerr
			}

			rest, out, err := f.Parse(cur)
			if err != nil {
				if !comb.IsRecoverable(err) {
					return in, Terminated[O, E]{}, err
				}
				return in, Terminated[O, E]{}, comb.Annotate(comb.KindManyTill, cur.Len(), err)
			}

			if rest.Len() == cur.Len() {
				return in, Terminated[O, E]{}, comb.NewErr(comb.KindManyTill, cur.Len())
			}

			res.Items = append(res.Items, out)
			cur = rest
		}
	}
}

// SeparatedList0 returns a parser for element (separator element)*,
// collecting the element outputs and discarding the separator outputs. It
// accepts zero elements: a recoverable error on the first element yields
// an empty list with no input consumed. A trailing separator is never
// consumed; when an element fails after a separator matched, the result
// ends at the input position before that separator.
func SeparatedList0[I comb.Input[I], S, O any](sep comb.Parser[I, S], f comb.Parser[I, O]) comb.Parser[I, []O] {
	return func(in I) (I, []O, error) {
		rest, out, err := f.Parse(in)
		if err != nil {
			if comb.IsRecoverable(err) {
				return in, nil, nil
			}
			return in, nil, err
		}

		outs := []O{out}
		return separatedTail(sep, f, in, rest, outs)
	}
}

// SeparatedList1 is SeparatedList0 requiring at least one element: the
// first element's error propagates verbatim instead of producing an empty
// list.
func SeparatedList1[I comb.Input[I], S, O any](sep comb.Parser[I, S], f comb.Parser[I, O]) comb.Parser[I, []O] {
	return func(in I) (I, []O, error) {
		rest, out, err := f.Parse(in)
		if err != nil {
			return in, nil, err
		}

		outs := []O{out}
		return separatedTail(sep, f, in, rest, outs)
	}
}

// separatedTail runs the (separator element)* loop shared by both list
// combinators. A separator that succeeds without consuming input would
// let an empty-matching element pair loop forever, so it is reported as a
// recoverable error; element progress needs no check of its own because
// the separator already moved the cursor.
func separatedTail[I comb.Input[I], S, O any](
	sep comb.Parser[I, S],
	f comb.Parser[I, O],
	in, cur I,
	outs []O,
) (I, []O, error) {
	for {
		srest, _, serr := sep.Parse(cur)
		if serr != nil {
			if comb.IsRecoverable(serr) {
				return cur, outs, nil
			}
			return in, nil, serr
		}

		if srest.Len() == cur.Len() {
			return in, nil, comb.NewErr(comb.KindSeparatedList, cur.Len())
		}

		rest, out, err := f.Parse(srest)
		if err != nil {
			if comb.IsRecoverable(err) {
				return cur, outs, nil
			}
			return in, nil, err
		}

		outs = append(outs, out)
		cur = rest
	}
}
