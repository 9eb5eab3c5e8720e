package extract

import (
	"strings"
	"testing"
)

func TestFromHTML_ParagraphsOnly(t *testing.T) {
	input := []byte(`<html><head><title>Page</title></head><body>
		<nav><p>navigation link soup</p></nav>
		<header><p>site header</p></header>
		<p>First paragraph.</p>
		<div>stray div text is ignored</div>
		<p>Second   paragraph with
		odd    whitespace.</p>
		<footer><p>footer boilerplate</p></footer>
		<script>var x = "script noise";</script>
		<style>.cls { color: red; }</style>
	</body></html>`)
	got := FromHTML(input, 0)
	want := "First paragraph. Second paragraph with odd whitespace."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFromHTML_SkipsBoilerplateContainers(t *testing.T) {
	input := []byte(`<body><nav><p>menu</p></nav><p>kept</p><header><p>masthead</p></header></body>`)
	got := FromHTML(input, 0)
	if got != "kept" {
		t.Fatalf("expected only the body paragraph, got %q", got)
	}
}

func TestFromHTML_TruncatesToMaxWords(t *testing.T) {
	var b strings.Builder
	b.WriteString("<body><p>")
	for i := 0; i < 50; i++ {
		b.WriteString("word ")
	}
	b.WriteString("</p></body>")
	got := FromHTML([]byte(b.String()), 10)
	if n := len(strings.Fields(got)); n != 10 {
		t.Fatalf("expected 10 words, got %d", n)
	}
}

func TestFromHTML_EmptyInput(t *testing.T) {
	if got := FromHTML(nil, 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestFromHTML_NestedParagraphText(t *testing.T) {
	input := []byte(`<body><p>Text with <strong>bold</strong> and <a href="#">a link</a>.</p></body>`)
	got := FromHTML(input, 0)
	if got != "Text with bold and a link." {
		t.Fatalf("unexpected text: %q", got)
	}
}
