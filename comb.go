// Package comb provides the core capabilities of a parser-combinator
// runtime: sliceable value inputs, a generic Parser contract, a three-way
// signal taxonomy, and the branch combinators built directly on them. The
// repetition and length-prefixed combinators live in the multi
// subpackage and the primitive matchers in the match subpackage.
package comb

import (
	"fmt"
	"strings"
)

// Parser is the capability every combinator consumes: given an input,
// produce the unconsumed remainder and an output, or a signal. On success
// the remainder is never longer than the input given (monotonic
// consumption); it may be the same length, which is exactly why the
// repetition combinators guard against zero-progress loops themselves.
//
// On error the returned rest and out are meaningless and must be ignored.
//
// Parser is a function type rather than an interface so that type
// arguments infer at every call site; matchers built as structs expose a
// Parse method whose method value satisfies it.
type Parser[I Input[I], O any] func(in I) (rest I, out O, err error)

// Parse applies the parser to the input.
func (p Parser[I, O]) Parse(in I) (I, O, error) {
	return p(in)
}

// Map returns a parser that applies f to p's output.
func Map[I Input[I], O, P any](p Parser[I, O], f func(O) P) Parser[I, P] {
	return func(in I) (I, P, error) {
		rest, out, err := p(in)
		if err != nil {
			var zero P
			return in, zero, err
		}
		return rest, f(out), nil
	}
}

// Opt returns a parser that applies p and, when p reports a recoverable
// error, succeeds with the zero output and the input untouched. Fatal and
// incomplete signals still propagate.
func Opt[I Input[I], O any](p Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		rest, out, err := p(in)
		if err != nil {
			var zero O
			if IsRecoverable(err) {
				return in, zero, nil
			}
			return in, zero, err
		}
		return rest, out, nil
	}
}

// Alt returns a parser that tries each alternative in order against the
// same input and returns on the first that succeeds. A recoverable error
// moves on to the next alternative; a fatal or incomplete signal
// propagates immediately without trying the rest. If every alternative
// fails, the last error is returned annotated.
func Alt[I Input[I], O any](ps ...Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var last error
		for _, p := range ps {
			rest, out, err := p(in)
			if err == nil {
				return rest, out, nil
			}
			if !IsRecoverable(err) {
				var zero O
				return in, zero, err
			}
			last = err
		}

		var zero O
		if last == nil {
			return in, zero, NewErr(KindAlt, in.Len())
		}
		return in, zero, Annotate(KindAlt, in.Len(), last)
	}
}

// Longest returns a parser that tries all the given parsers against the
// same input and keeps whichever consumed the most of it, discarding the
// rest. Recoverable errors only rule an alternative out; fatal and
// incomplete signals propagate immediately.
func Longest[I Input[I], O any](ps ...Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var (
			found    bool
			bestRest I
			bestOut  O
			last     error
		)

		for _, p := range ps {
			rest, out, err := p(in)
			if err != nil {
				if !IsRecoverable(err) {
					var zero O
					return in, zero, err
				}
				last = err
				continue
			}

			if !found || rest.Len() < bestRest.Len() {
				found = true
				bestRest = rest
				bestOut = out
			}
		}

		if found {
			return bestRest, bestOut, nil
		}

		var zero O
		if last == nil {
			return in, zero, NewErr(KindLongest, in.Len())
		}
		return in, zero, Annotate(KindLongest, in.Len(), last)
	}
}

// Tracer is a function that is used to log or report parser traces. This
// function signature was chosen because it is commonly available, such as
// fmt.Print or log.Println, etc.
type Tracer func(v ...any)

// Traced wraps a parser so that every attempt reports a TRY line and
// every outcome a GOT or ERR line through the given Tracer, together with
// a short preview of the input. Useful while debugging a grammar; costs
// nothing when composing, only when running.
func Traced[I Input[I], O any](t Tracer, name string, p Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		if t != nil {
			t(traceLine("TRY", name, in, nil))
		}

		rest, out, err := p(in)
		if t != nil {
			if err != nil {
				t(traceLine("ERR", name, in, err))
			} else {
				t(traceLine("GOT", name, in, out))
			}
		}
		return rest, out, err
	}
}

const tracePreview = 10

func traceLine[I Input[I]](stage, name string, in I, extra any) string {
	out := &strings.Builder{}
	fmt.Fprint(out, stage, " ", name, "(")

	if in.Len() > tracePreview {
		head, _ := in.SplitAt(tracePreview)
		fmt.Fprintf(out, "%v…", head)
	} else {
		fmt.Fprintf(out, "%v", in)
	}
	fmt.Fprint(out, ")")

	switch v := extra.(type) {
	case nil:
	case error:
		fmt.Fprintf(out, ": %v", v)
	default:
		fmt.Fprintf(out, " = %v", v)
	}

	return out.String()
}
