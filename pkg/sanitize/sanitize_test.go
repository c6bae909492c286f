package sanitize

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// tagLike matches anything a browser could start parsing as markup.
var tagLike = regexp.MustCompile(`<[A-Za-z!/?]`)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "  Hello world  ", "Hello world"},
		{"bold tag", "<b>Jo</b>", "Jo"},
		{"script dropped", "Hi<script>alert(1)</script> there", "Hi there"},
		{"style dropped", "<style>p{color:red}</style>Text", "Text"},
		{"entities kept encoded", "Fish &amp; Chips", "Fish &amp; Chips"},
		{"encoded markup stays encoded", "&lt;script&gt;alert(1)&lt;/script&gt; hello there", "&lt;script&gt;alert(1)&lt;/script&gt; hello there"},
		{"nested markup", "<div><p>Line <em>one</em></p></div>", "Line one"},
		{"lone angle bracket", "a < b", "a < b"},
		{"only markup", "<br/><hr>", ""},
		{"uppercase script", "<SCRIPT>x()</SCRIPT>ok", "ok"},
		{"comment dropped", "before<!-- <b>hidden</b> -->after", "beforeafter"},
		{"unterminated tag at end", "hello <img src=x onerror=alert(1)", "hello"},
		{"tag split by inner tag", "<<b>script>alert(1)<</b>/script>done", "done"},
		{"tag split across nesting", "<scr<i></i>ipt>alert(1)</script>", "ipt>alert(1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.in))
		})
	}
}

func TestStripTags_DropsRawTextElementContent(t *testing.T) {
	tests := []struct {
		element string
		in      string
	}{
		{"textarea", "<textarea><img src=x onerror=alert(1)></textarea> call me"},
		{"title", "<title><script>alert(1)</script></title> call me"},
		{"iframe", "<iframe><svg onload=alert(1)></iframe> call me"},
		{"noscript", "<noscript><svg onload=alert(1)></noscript> call me"},
		{"noembed", "<noembed><img src=x onerror=alert(1)></noembed> call me"},
		{"noframes", "<noframes><img src=x onerror=alert(1)></noframes> call me"},
		{"xmp", "<xmp><img src=x onerror=alert(1)></xmp> call me"},
		{"self-closing textarea", "<textarea/><img src=x></textarea> call me"},
	}
	for _, tt := range tests {
		t.Run(tt.element, func(t *testing.T) {
			assert.Equal(t, "call me", StripTags(tt.in))
		})
	}
}

func TestStripTags_PlaintextSwallowsRest(t *testing.T) {
	assert.Equal(t, "call me", StripTags("call me<plaintext><img src=x onerror=alert(1)>"))
}

func TestStripTags_NeverLeavesTags(t *testing.T) {
	inputs := []string{
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"<textarea><script>alert(1)</script></textarea> please call",
		"<<b>img src=x onerror=alert(1)>",
		"<</i>script>x<</i>/script>",
		"<scr<script>ipt>alert(1)</script>",
		"<a href='javascript:alert(1)'>click</a>",
		"<!doctype html><html><body onload=alert(1)>hi</body></html>",
		"<?xml version='1.0'?><svg/onload=alert(1)>",
		"< b>not a tag</ b>",
		"</>tail",
	}
	for _, in := range inputs {
		out := StripTags(in)
		assert.False(t, tagLike.MatchString(out), "input %q left %q", in, out)
		assert.Equal(t, out, StripTags(out), "stripping %q is not idempotent", in)
	}
}

func TestLine(t *testing.T) {
	assert.Equal(t, "Jane Doe", Line("  <i>Jane</i>\n\t Doe "))
	assert.Equal(t, "", Line("   "))
}

func TestText_KeepsInteriorNewlines(t *testing.T) {
	assert.Equal(t, "first line\nsecond line", Text("\n first line\nsecond line \n"))
}
