// Package tokenizer implements token-level scanning of WSV (whitespace
// separated value) text.
//
// WSV is a line-oriented tabular format: rows of optional string cells
// separated by runs of whitespace, with double-quoted values, '#' comments,
// and the bare token '-' reserved for a null cell. Inside a quoted value,
// '""' escapes one literal quote and '"/"' escapes a line feed.
//
// The Tokenizer produces one token per call to Next. Two stream backends
// share the same scanning algorithm: a string-backed stream that extracts
// values as zero-copy substrings of the input, and a reader-backed stream
// that pulls one character at a time and always returns owned strings.
//
// # Thread Safety
//
// A Tokenizer is not safe for concurrent use; create one per goroutine.
// Distinct tokenizers share no state.
package tokenizer

import (
	"io"
	"strings"
)

// Tokenizer scans WSV source text into a stream of tokens.
//
// Next returns tokens until the input is exhausted, then io.EOF. The first
// scanning fault is terminal: Next returns the same *ParseError on every
// subsequent call and produces no further tokens.
type Tokenizer struct {
	stream Stream
	bytes  ByteStream // non-nil when stream supports zero-copy slicing

	// pending holds an error detected while producing the previous token.
	// It is surfaced on the next call, after the token has been delivered.
	pending *ParseError
	err     error // sticky; io.EOF or the terminal fault
}

// New creates a tokenizer over an in-memory string. Value tokens containing
// no escape sequences share the input's backing memory.
func New(input string) *Tokenizer {
	return NewFromStream(NewStream(input))
}

// NewFromReader creates a tokenizer that pulls characters from r one at a
// time, suitable for inputs too large to hold in memory. All value tokens
// are owned copies.
func NewFromReader(r io.Reader) *Tokenizer {
	return NewFromStream(NewStreamFromReader(r))
}

// NewFromStream creates a tokenizer over a pre-configured stream.
func NewFromStream(s Stream) *Tokenizer {
	t := &Tokenizer{stream: s}
	if bs, ok := s.(ByteStream); ok {
		t.bytes = bs
	}
	return t
}

// Next returns the next token.
//
// At end of input Next returns io.EOF. A WSV fault is returned as a
// *ParseError and is terminal. An error deferred from the previous token
// (see ErrInvalidDoubleQuoteAfterValue, ErrInvalidCharacterAfterString) is
// returned before any further scanning.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	if t.pending != nil {
		perr := t.pending
		t.pending = nil
		t.err = perr
		return Token{}, perr
	}

	t.skipWhitespace()

	ch, ok := t.stream.PeekChar()
	if !ok {
		if err := t.stream.Err(); err != nil {
			t.err = err
		} else {
			t.err = io.EOF
		}
		return Token{}, t.err
	}

	switch {
	case ch == '"':
		return t.scanQuoted()
	case ch == '#':
		t.stream.NextChar()
		text := t.consumeWhile(func(r rune) bool { return r != '\n' })
		return Token{Kind: KindComment, Text: text}, nil
	case ch == '\n':
		t.stream.NextChar()
		return Token{Kind: KindLineBreak}, nil
	default:
		return t.scanBare(), nil
	}
}

// scanBare consumes a run of non-delimiter characters. The text '-' is the
// null token. A '"' directly after the value is recorded as a deferred error;
// the value itself is still delivered first.
func (t *Tokenizer) scanBare() Token {
	text := t.consumeWhile(func(r rune) bool {
		return r != '\n' && r != '"' && r != '#' && !IsWhitespace(r)
	})
	if text == "-" {
		return Token{Kind: KindNull}
	}
	if ch, ok := t.stream.PeekChar(); ok && ch == '"' {
		t.pending = newParseError(ErrInvalidDoubleQuoteAfterValue, t.stream.Location())
	}
	return Token{Kind: KindValue, Text: text}
}

// scanQuoted consumes a double-quoted value. The opening quote has been
// peeked but not consumed. Escapes: '""' is a literal quote, '"/"' is a line
// feed. A raw line feed or end of input before the closing quote is a fault.
func (t *Tokenizer) scanQuoted() (Token, error) {
	t.stream.NextChar() // opening quote
	b := t.newValueBuilder()

	for {
		ch, ok := t.stream.PeekChar()
		if !ok {
			if err := t.stream.Err(); err != nil {
				t.err = err
				return Token{}, err
			}
			return Token{}, t.fail(ErrStringNotClosed, t.stream.Location())
		}
		if ch == '\n' {
			return Token{}, t.fail(ErrStringNotClosed, t.stream.Location())
		}
		if ch != '"' {
			before := 0
			if t.bytes != nil {
				before = t.bytes.BytePosition()
			}
			t.stream.NextChar()
			b.keep(ch, before)
			continue
		}

		// The literal span ends before the quote.
		b.endSpan()
		t.stream.NextChar()

		next, ok := t.stream.PeekChar()
		switch {
		case ok && next == '"':
			t.stream.NextChar()
			b.escape('"')
		case ok && next == '/':
			t.stream.NextChar()
			third, ok := t.stream.PeekChar()
			if !ok || third != '"' {
				return Token{}, t.fail(ErrInvalidStringLineBreak, t.stream.Location())
			}
			t.stream.NextChar()
			b.escape('\n')
		default:
			// Closing quote. Anything other than whitespace, '#', a line
			// feed, or end of input may not follow; the completed value is
			// still delivered before that error surfaces.
			if ok && next != '\n' && next != '#' && !IsWhitespace(next) {
				t.pending = newParseError(ErrInvalidCharacterAfterString, t.stream.Location())
			}
			return Token{Kind: KindValue, Text: b.build()}, nil
		}
	}
}

// fail records a terminal fault and returns it.
func (t *Tokenizer) fail(kind error, loc Location) error {
	perr := newParseError(kind, loc)
	t.err = perr
	return perr
}

// skipWhitespace consumes a run of inter-token whitespace.
func (t *Tokenizer) skipWhitespace() {
	for {
		ch, ok := t.stream.PeekChar()
		if !ok || !IsWhitespace(ch) {
			return
		}
		t.stream.NextChar()
	}
}

// consumeWhile consumes the longest run of characters satisfying pred and
// returns the matched text, "" if nothing matched. On a ByteStream the result
// is a zero-copy slice of the source.
func (t *Tokenizer) consumeWhile(pred func(rune) bool) string {
	if t.bytes != nil {
		start := t.bytes.BytePosition()
		for {
			ch, ok := t.stream.PeekChar()
			if !ok || !pred(ch) {
				break
			}
			t.stream.NextChar()
		}
		return t.bytes.SliceFrom(start)
	}

	var b strings.Builder
	for {
		ch, ok := t.stream.PeekChar()
		if !ok || !pred(ch) {
			break
		}
		t.stream.NextChar()
		b.WriteRune(ch)
	}
	return b.String()
}

// valueBuilder accumulates the content of a quoted value. keep appends a
// literal character just consumed from the stream (before is its byte offset,
// meaningful only to the zero-copy builder), escape appends a resolved escape
// replacement, and endSpan closes the current literal run before the
// tokenizer consumes a quote.
type valueBuilder interface {
	keep(ch rune, before int)
	escape(ch rune)
	endSpan()
	build() string
}

func (t *Tokenizer) newValueBuilder() valueBuilder {
	if t.bytes != nil {
		return &chunkBuilder{bytes: t.bytes, spanStart: -1}
	}
	return &ownedBuilder{}
}

// chunkBuilder collects literal spans as zero-copy slices plus escape
// replacement literals. A value with no escapes resolves to a single chunk
// and is returned without any copy.
type chunkBuilder struct {
	bytes     ByteStream
	chunks    []string
	spanStart int // byte offset of the open literal span, -1 if none
}

func (b *chunkBuilder) keep(_ rune, before int) {
	if b.spanStart < 0 {
		b.spanStart = before
	}
}

func (b *chunkBuilder) escape(ch rune) {
	if ch == '\n' {
		b.chunks = append(b.chunks, "\n")
	} else {
		b.chunks = append(b.chunks, `"`)
	}
}

func (b *chunkBuilder) endSpan() {
	if b.spanStart >= 0 {
		b.chunks = append(b.chunks, b.bytes.SliceFrom(b.spanStart))
		b.spanStart = -1
	}
}

func (b *chunkBuilder) build() string {
	if len(b.chunks) == 1 {
		return b.chunks[0]
	}
	return strings.Join(b.chunks, "")
}

// ownedBuilder accumulates into an owned buffer; used for reader-backed
// streams, which have no contiguous source to slice.
type ownedBuilder struct {
	sb strings.Builder
}

func (b *ownedBuilder) keep(ch rune, _ int) { b.sb.WriteRune(ch) }
func (b *ownedBuilder) escape(ch rune) { b.sb.WriteRune(ch) }
func (b *ownedBuilder) endSpan()       {}
func (b *ownedBuilder) build() string  { return b.sb.String() }

// IsWhitespace reports whether ch separates WSV tokens. The set covers the
// Unicode space separators plus tab, CR, vertical tab, form feed, NEL, and
// NBSP. A line feed is not whitespace; it is the row separator and scans as
// its own token.
func IsWhitespace(ch rune) bool {
	switch ch {
	case '	', '', '', '', ' ', '', ' ',
		' ', ' ', ' ', ' ', ' ', '　':
		return true
	}
	return ch >= ' ' && ch <= ' '
}
