// Package sanitize removes markup from visitor supplied text.
package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StripTags returns the text content of s with every HTML element, comment
// and doctype removed. Entities are left encoded, so "&lt;b&gt;" stays as
// typed and never turns into a tag. The contents of raw text and RCDATA
// elements (script, style, textarea, title and friends) are dropped entirely.
// Stripping repeats until the text stops changing, which removes tags that
// only form once the surrounding markup is gone. Surrounding whitespace is
// trimmed.
func StripTags(s string) string {
	for {
		out := stripOnce(s)
		if out == s {
			return strings.TrimSpace(out)
		}
		// out is a strict subsequence of s, so this terminates.
		s = out
	}
}

func stripOnce(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	var skipping atom.Atom

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or an unterminated tag at the end; the tail is dropped.
			return b.String()
		case html.StartTagToken, html.SelfClosingTagToken:
			if a := tagAtom(z); skipping == 0 && rawTextElements[a] {
				skipping = a
				if a == atom.Plaintext {
					// Everything after <plaintext> is its content.
					return b.String()
				}
			}
		case html.EndTagToken:
			if skipping != 0 && tagAtom(z) == skipping {
				skipping = 0
			}
		case html.TextToken:
			if skipping == 0 {
				b.Write(z.Raw())
			}
		}
	}
}

// rawTextElements are the elements whose content the tokenizer returns as a
// single text token instead of parsing it as markup.
var rawTextElements = map[atom.Atom]bool{
	atom.Script:    true,
	atom.Style:     true,
	atom.Textarea:  true,
	atom.Title:     true,
	atom.Iframe:    true,
	atom.Noscript:  true,
	atom.Noembed:   true,
	atom.Noframes:  true,
	atom.Xmp:       true,
	atom.Plaintext: true,
}

func tagAtom(z *html.Tokenizer) atom.Atom {
	name, _ := z.TagName()
	return atom.Lookup(name)
}

// CollapseSpace replaces runs of whitespace with a single space.
func CollapseSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// Text strips markup and trims surrounding whitespace. Interior whitespace is
// preserved so multi-line messages keep their shape.
func Text(s string) string {
	return StripTags(s)
}

// Line strips markup and collapses all whitespace, for single line fields.
func Line(s string) string {
	return CollapseSpace(StripTags(s))
}
