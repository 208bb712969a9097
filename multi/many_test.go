package multi_test

import (
	"reflect"
	"testing"

	"github.com/parsekit/comb"
	"github.com/parsekit/comb/match"
	"github.com/parsekit/comb/multi"
)

var digits = match.BytesInRange('0', '9')

func TestMany0(t *testing.T) {
	p := multi.Many0(match.Tag("abc"))

	cases := []struct {
		in   comb.Str
		rest comb.Str
		out  []comb.Str
	}{
		{"abcabc123", "123", []comb.Str{"abc", "abc"}},
		{"abc", "", []comb.Str{"abc"}},
		{"123", "123", nil},
		{"", "", nil},
	}

	for _, tc := range cases {
		rest, out, err := p.Parse(tc.in)
		if err != nil {
			t.Fatalf("Many0(%q) error: %v", tc.in, err)
		}
		if rest != tc.rest || !reflect.DeepEqual(out, tc.out) {
			t.Fatalf("Many0(%q) = (%q, %v), want (%q, %v)", tc.in, rest, out, tc.rest, tc.out)
		}
	}
}

func TestMany1(t *testing.T) {
	p := multi.Many1(match.Tag("abc"))

	rest, out, err := p.Parse("abcabc123")
	if err != nil {
		t.Fatalf("Many1 error: %v", err)
	}
	if rest != "123" || len(out) != 2 {
		t.Fatalf("Many1 = (%q, %v)", rest, out)
	}

	_, _, err = p.Parse("123")
	e, ok := comb.AsErr(err)
	if !ok || e.Class != comb.Recoverable || e.Kind != comb.KindMany1 {
		t.Fatalf("Many1 with no match = %v, want annotated recoverable error", err)
	}
}

func TestManyMN(t *testing.T) {
	p := multi.ManyMN(0, 2, match.Tag("abc"))
	rest, out, err := p.Parse("abcabcabc")
	if err != nil {
		t.Fatalf("ManyMN error: %v", err)
	}
	if rest != "abc" || len(out) != 2 {
		t.Fatalf("ManyMN stopped at (%q, %v), want max 2 matches", rest, out)
	}

	// Short of the minimum propagates the element error annotated.
	_, _, err = multi.ManyMN(2, 4, match.Tag("abc")).Parse("abc123")
	e, ok := comb.AsErr(err)
	if !ok || e.Class != comb.Recoverable || e.Kind != comb.KindManyMN {
		t.Fatalf("ManyMN short of min = %v", err)
	}

	// At or past the minimum, the element error ends the loop gracefully.
	rest2, out2, err := multi.ManyMN(1, 4, match.Tag("abc")).Parse("abc123")
	if err != nil || rest2 != "123" || len(out2) != 1 {
		t.Fatalf("ManyMN past min = (%q, %v, %v)", rest2, out2, err)
	}
}

func TestManyMNInvertedBounds(t *testing.T) {
	p := multi.ManyMN(3, 1, match.Tag("abc"))

	// A backwards min/max is a mistake in the grammar, not in the data,
	// so it fails hard on every input.
	for _, in := range []comb.Str{"", "abc", "abcabcabcabc"} {
		_, _, err := p.Parse(in)
		e, ok := comb.AsErr(err)
		if !ok || e.Class != comb.Fatal || e.Kind != comb.KindManyMN {
			t.Fatalf("ManyMN(3, 1) on %q = %v, want fatal", in, err)
		}
	}
}

func TestMany0ZeroProgress(t *testing.T) {
	// A child that can match empty input would loop forever without the
	// progress guard.
	p := multi.Many0(match.TakeWhile0(digits))

	_, _, err := p.Parse(comb.Bytes("abc"))
	e, ok := comb.AsErr(err)
	if !ok || e.Class != comb.Recoverable || e.Kind != comb.KindMany0 {
		t.Fatalf("Many0 zero-progress = %v", err)
	}

	_, _, err = multi.Many1(match.TakeWhile0(digits)).Parse(comb.Bytes("123abc"))
	e, ok = comb.AsErr(err)
	if !ok || e.Kind != comb.KindMany1 {
		t.Fatalf("Many1 zero-progress = %v", err)
	}
}

func TestManyCountConservation(t *testing.T) {
	f := match.Tag("ab")

	for _, in := range []comb.Str{"", "ab", "ababab", "ababx", "x"} {
		_, outs, err := multi.Many0(f).Parse(in)
		if err != nil {
			t.Fatalf("Many0(%q) error: %v", in, err)
		}
		rest, n, err := multi.Many0Count(f).Parse(in)
		if err != nil {
			t.Fatalf("Many0Count(%q) error: %v", in, err)
		}
		if n != len(outs) {
			t.Fatalf("Many0Count(%q) = %d, Many0 found %d", in, n, len(outs))
		}
		if rest.Len() != in.Len()-2*n {
			t.Fatalf("Many0Count(%q) rest = %q", in, rest)
		}
	}
}

func TestMany1Count(t *testing.T) {
	p := multi.Many1Count(match.Tag("ab"))

	rest, n, err := p.Parse("ababab!")
	if err != nil || n != 3 || rest != "!" {
		t.Fatalf("Many1Count = (%q, %d, %v)", rest, n, err)
	}

	_, _, err = p.Parse("!")
	e, ok := comb.AsErr(err)
	if !ok || e.Kind != comb.KindMany1Count {
		t.Fatalf("Many1Count with no match = %v", err)
	}
}

func TestManyPropagatesFatal(t *testing.T) {
	boom := func(in comb.Str) (comb.Str, comb.Str, error) {
		return in, "", comb.NewFailure(comb.KindTag, in.Len())
	}

	_, _, err := multi.Many0(comb.Parser[comb.Str, comb.Str](boom)).Parse("anything")
	e, ok := comb.AsErr(err)
	if !ok || e.Class != comb.Fatal || e.Kind != comb.KindTag {
		t.Fatalf("Many0 rewrote a fatal signal: %v", err)
	}
}

func TestManyPropagatesIncomplete(t *testing.T) {
	// Three bytes: one whole big-endian uint16, then a dangling byte the
	// streaming reader cannot decide on.
	p := multi.Many0(match.BeUint16())

	_, _, err := p.Parse(comb.Bytes{0x01, 0x02, 0x03})
	e, ok := comb.AsErr(err)
	if !ok || e.Class != comb.MoreInput || e.Needed != 1 {
		t.Fatalf("Many0 absorbed an incomplete signal: %v", err)
	}
}
