package comb

import (
	"errors"
	"fmt"
)

// Kind identifies the combinator or condition that raised a signal. It is
// carried on every Err so the outermost caller can say which part of the
// grammar machinery gave up without knowing the grammar itself.
type Kind int

// The built-in kinds, one per combinator that can raise or annotate a
// signal.
const (
	KindNone Kind = iota
	KindAlt
	KindLongest
	KindMany0
	KindMany1
	KindMany0Count
	KindMany1Count
	KindManyMN
	KindMany
	KindFoldMany0
	KindFoldMany1
	KindFoldManyMN
	KindFold
	KindManyTill
	KindSeparatedList
	KindLengthData
	KindLengthValue
	KindLengthCount
	KindComplete
	KindCount
	KindFill
	KindTag
	KindTake
	KindTakeWhile1
	KindOneByte
	KindOneRune
	KindUint

	// KindLast identifies the first non-built-in kind. No guarantee is
	// made that this will never change.
	KindLast
)

var kindNames = map[Kind]string{
	KindNone:          "none",
	KindAlt:           "alt",
	KindLongest:       "longest",
	KindMany0:         "many0",
	KindMany1:         "many1",
	KindMany0Count:    "many0-count",
	KindMany1Count:    "many1-count",
	KindManyMN:        "many-m-n",
	KindMany:          "many",
	KindFoldMany0:     "fold-many0",
	KindFoldMany1:     "fold-many1",
	KindFoldManyMN:    "fold-many-m-n",
	KindFold:          "fold",
	KindManyTill:      "many-till",
	KindSeparatedList: "separated-list",
	KindLengthData:    "length-data",
	KindLengthValue:   "length-value",
	KindLengthCount:   "length-count",
	KindComplete:      "complete-input-marked-incomplete",
	KindCount:         "count",
	KindFill:          "fill",
	KindTag:           "tag",
	KindTake:          "take",
	KindTakeWhile1:    "take-while1",
	KindOneByte:       "one-byte",
	KindOneRune:       "one-rune",
	KindUint:          "uint",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var prevKind = KindLast

// NextKind provides an interface for assigning kinds serial numbers at
// runtime to avoid conflicts between kinds when parsers from different
// modules are mixed and matched. This returns the next available kind and
// should be called during init.
func NextKind() Kind {
	prevKind++
	return prevKind
}

// Class is the severity of a signal. It decides which combinators may
// absorb the signal and which must pass it through untouched.
type Class int

const (
	// Recoverable means this parse attempt did not match, but a sibling
	// alternative might, or a repetition may stop gracefully with what it
	// has.
	Recoverable Class = iota

	// Fatal means this parse attempt is definitively wrong. No combinator
	// in this library downgrades a Fatal signal or recovers from it.
	Fatal

	// MoreInput means the input ran out before a decision could be made.
	// This is not a grammar mismatch and is passed through verbatim by
	// every combinator except LengthValue, which runs its inner parser on
	// a slice that is complete by construction.
	MoreInput
)

func (c Class) String() string {
	switch c {
	case Recoverable:
		return "error"
	case Fatal:
		return "failure"
	case MoreInput:
		return "incomplete"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// Err is the signal returned by parsers and combinators on any non-success
// outcome. Rem records the remaining input length at the point the signal
// was raised, which is enough for a caller holding the original input to
// compute an offset.
type Err struct {
	Class Class
	Kind  Kind

	// Rem is the remaining input length where the signal was raised.
	Rem int

	// Needed is the number of additional input units required, when the
	// Class is MoreInput and the amount is known. Zero means unknown.
	Needed uint

	cause error
}

// NewErr returns a recoverable signal tagged with the given kind.
func NewErr(k Kind, rem int) *Err {
	return &Err{Class: Recoverable, Kind: k, Rem: rem}
}

// NewFailure returns a fatal signal tagged with the given kind.
func NewFailure(k Kind, rem int) *Err {
	return &Err{Class: Fatal, Kind: k, Rem: rem}
}

// NewIncomplete returns a more-input signal. Pass zero when the amount
// needed is unknown.
func NewIncomplete(needed uint) *Err {
	return &Err{Class: MoreInput, Needed: needed}
}

func (e *Err) Error() string {
	if e.Class == MoreInput {
		if e.Needed > 0 {
			return fmt.Sprintf("incomplete: need %d more input units", e.Needed)
		}
		return "incomplete: need more input"
	}

	msg := fmt.Sprintf("%v: %v with %d units remaining", e.Class, e.Kind, e.Rem)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *Err) Unwrap() error { return e.cause }

// Annotate wraps a signal from a child parser with the kind of the
// combinator that observed it, preserving the child's class. MoreInput
// signals are returned untouched, since they carry a size hint rather
// than a grammar position.
func Annotate(k Kind, rem int, err error) error {
	class := Fatal
	if e, ok := AsErr(err); ok {
		if e.Class == MoreInput {
			return err
		}
		class = e.Class
	}
	return &Err{Class: class, Kind: k, Rem: rem, cause: err}
}

// AsErr unpacks an error as an *Err, unwrapping as needed.
func AsErr(err error) (*Err, bool) {
	var e *Err
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsRecoverable reports whether a combinator is allowed to absorb the
// error: try another alternative, or stop a repetition gracefully. Errors
// that did not come from this library count as fatal.
func IsRecoverable(err error) bool {
	e, ok := AsErr(err)
	return ok && e.Class == Recoverable
}
