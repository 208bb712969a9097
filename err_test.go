package comb_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/parsekit/comb"
)

func TestErrClasses(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		recoverable bool
		class       comb.Class
	}{
		{"error", comb.NewErr(comb.KindMany0, 3), true, comb.Recoverable},
		{"failure", comb.NewFailure(comb.KindManyMN, 3), false, comb.Fatal},
		{"incomplete", comb.NewIncomplete(2), false, comb.MoreInput},
	}

	for _, tc := range cases {
		if got := comb.IsRecoverable(tc.err); got != tc.recoverable {
			t.Fatalf("%s: IsRecoverable = %v, want %v", tc.name, got, tc.recoverable)
		}
		e, ok := comb.AsErr(tc.err)
		if !ok || e.Class != tc.class {
			t.Fatalf("%s: AsErr = (%v, %v), want class %v", tc.name, e, ok, tc.class)
		}
	}
}

func TestForeignErrorsAreFatal(t *testing.T) {
	err := errors.New("not from this library")
	if comb.IsRecoverable(err) {
		t.Fatalf("foreign error counted as recoverable")
	}
	if _, ok := comb.AsErr(err); ok {
		t.Fatalf("foreign error unpacked as *Err")
	}
}

func TestAnnotate(t *testing.T) {
	inner := comb.NewErr(comb.KindTag, 5)
	err := comb.Annotate(comb.KindMany1, 8, inner)

	e, ok := comb.AsErr(err)
	if !ok {
		t.Fatalf("Annotate did not produce an *Err: %v", err)
	}
	if e.Class != comb.Recoverable {
		t.Fatalf("Annotate changed the class to %v", e.Class)
	}
	if e.Kind != comb.KindMany1 || e.Rem != 8 {
		t.Fatalf("Annotate outer = (%v, %d)", e.Kind, e.Rem)
	}
	if !errors.Is(err, inner) {
		t.Fatalf("Annotate lost the cause chain")
	}

	// Fatal stays fatal through annotation.
	err = comb.Annotate(comb.KindCount, 2, comb.NewFailure(comb.KindTag, 1))
	if e, _ := comb.AsErr(err); e.Class != comb.Fatal {
		t.Fatalf("annotated failure class = %v", e.Class)
	}

	// Incomplete passes through untouched.
	inc := comb.NewIncomplete(4)
	if got := comb.Annotate(comb.KindCount, 2, inc); got != error(inc) {
		t.Fatalf("Annotate rewrote an incomplete signal: %v", got)
	}
}

func TestErrMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{comb.NewErr(comb.KindMany0, 4), "error: many0 with 4 units remaining"},
		{comb.NewFailure(comb.KindManyMN, 0), "failure: many-m-n with 0 units remaining"},
		{comb.NewIncomplete(3), "incomplete: need 3 more input units"},
		{comb.NewIncomplete(0), "incomplete: need more input"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestNextKind(t *testing.T) {
	k1 := comb.NextKind()
	k2 := comb.NextKind()
	if k1 <= comb.KindLast || k2 != k1+1 {
		t.Fatalf("NextKind gave %v then %v", k1, k2)
	}
	if s := k1.String(); s != fmt.Sprintf("kind(%d)", int(k1)) {
		t.Fatalf("custom kind String = %q", s)
	}
}
