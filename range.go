package comb

// Range is the bound capability consumed by the generic Many and Fold
// combinators. It expresses "exactly n", "at least n", "between m and n"
// or "unbounded" behind one interface so a single loop can serve all of
// them.
type Range interface {
	// Inverted reports whether the range can match no count at all
	// (minimum above maximum). Combinators treat an inverted range as a
	// configuration mistake, not a parsing outcome.
	Inverted() bool

	// Contains reports whether the given iteration count satisfies the
	// range.
	Contains(n int) bool

	// Bounds returns the minimum, the maximum, and whether the maximum is
	// meaningful. When bounded is false, iteration saturates: the loop
	// runs until its child stops it.
	Bounds() (min, max int, bounded bool)
}

type span struct {
	min, max int
	bounded  bool
}

func (s span) Inverted() bool { return s.bounded && s.min > s.max }

func (s span) Contains(n int) bool {
	return n >= s.min && (!s.bounded || n <= s.max)
}

func (s span) Bounds() (int, int, bool) { return s.min, s.max, s.bounded }

// Between returns the closed range [min, max].
func Between(min, max int) Range { return span{min: min, max: max, bounded: true} }

// Exactly returns the range holding only n.
func Exactly(n int) Range { return Between(n, n) }

// AtLeast returns the half-open range [min, ∞).
func AtLeast(min int) Range { return span{min: min} }

// AtMost returns the closed range [0, max].
func AtMost(max int) Range { return Between(0, max) }

// Unbounded returns the range accepting any count.
func Unbounded() Range { return span{} }
