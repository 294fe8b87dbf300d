package tokenizer

import "fmt"

// Kind identifies the type of a WSV token.
type Kind int

const (
	// KindLineBreak is a line feed separating two rows.
	KindLineBreak Kind = iota
	// KindNull is the reserved bare token "-" representing a null cell.
	KindNull
	// KindValue is a cell value, either bare or quoted.
	KindValue
	// KindComment is a "#" comment running to the end of its line.
	KindComment
)

// String returns the string representation of the token kind.
func (k Kind) String() string {
	switch k {
	case KindLineBreak:
		return "LineBreak"
	case KindNull:
		return "Null"
	case KindValue:
		return "Value"
	case KindComment:
		return "Comment"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a single WSV token produced by a Tokenizer.
//
// Text holds the cell value for KindValue tokens (with all escape sequences
// resolved and wrapping quotes removed) and the comment body for KindComment
// tokens (excluding the leading '#' and the terminating line feed). It is
// empty for KindLineBreak and KindNull.
//
// For string-backed tokenizers, Text shares the backing array of the source
// string whenever the token contains no escape sequences; no copy is made.
type Token struct {
	Kind Kind
	Text string
}
