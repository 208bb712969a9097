package comb

// Input is the capability every combinator needs from its input: a length
// and a non-destructive split. Implementations are views, not buffers, so
// copying one is cheap and parsers may hold as many as they like.
//
// SplitAt must not panic for any n between 0 and Len() inclusive, and the
// two halves it returns must together cover exactly the original input.
type Input[I any] interface {
	// Len returns the number of units remaining in the input.
	Len() int

	// SplitAt splits the input at n, returning the first n units and
	// everything after them.
	SplitAt(n int) (prefix, rest I)
}

// Bytes is a byte slice input.
type Bytes []byte

// Len returns the number of bytes remaining.
func (b Bytes) Len() int { return len(b) }

// SplitAt splits the input at n bytes.
func (b Bytes) SplitAt(n int) (Bytes, Bytes) {
	return b[:n], b[n:]
}

func (b Bytes) String() string { return string(b) }

// Str is a string input. Units are bytes, so Len and SplitAt operate on
// byte offsets; rune-aware matching is up to the primitives.
type Str string

// Len returns the number of bytes remaining.
func (s Str) Len() int { return len(s) }

// SplitAt splits the input at n bytes.
func (s Str) SplitAt(n int) (Str, Str) {
	return s[:n], s[n:]
}

func (s Str) String() string { return string(s) }
