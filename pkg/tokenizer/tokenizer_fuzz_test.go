//go:build go1.18
// +build go1.18

package tokenizer_test

import (
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shapestone/shape-wsv/pkg/tokenizer"
)

// FuzzTokenizer checks that the tokenizer never panics and that the
// string-backed and reader-backed variants produce identical results.
// Run with: go test -fuzz=FuzzTokenizer -fuzztime=30s ./pkg/tokenizer
func FuzzTokenizer(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"-",
		"\n",
		"\"",
		"\"\"",
		"a b c",
		"\"quoted value\"",
		"\"with \"\" quote\"",
		"\"line\"/\"break\"",
		"\"/",
		"abc\"",
		"\"abc\"x",
		"# comment\nvalue",
		"東 値\n-",
		"a　b c",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		eager := tokenizer.New(input)

		// The format is defined over code points; for invalid UTF-8 only
		// check that scanning does not panic.
		if !utf8.ValidString(input) {
			for {
				if _, err := eager.Next(); err != nil {
					return
				}
			}
		}

		lazy := tokenizer.NewFromReader(strings.NewReader(input))
		for {
			et, eerr := eager.Next()
			lt, lerr := lazy.Next()

			if (eerr == nil) != (lerr == nil) {
				t.Fatalf("backends disagree on error: string=%v reader=%v", eerr, lerr)
			}
			if eerr != nil {
				if (eerr == io.EOF) != (lerr == io.EOF) {
					t.Fatalf("one backend ended, the other failed: string=%v reader=%v", eerr, lerr)
				}
				if eerr != io.EOF {
					ep, lp := eerr.(*tokenizer.ParseError), lerr.(*tokenizer.ParseError)
					if ep.Err != lp.Err || ep.Line != lp.Line || ep.Column != lp.Column {
						t.Fatalf("backends disagree on fault: string=%v reader=%v", ep, lp)
					}
				}
				return
			}
			if et != lt {
				t.Fatalf("backends disagree on token: string=%+v reader=%+v", et, lt)
			}
		}
	})
}
