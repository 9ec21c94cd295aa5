// Package textfmt moves article summaries and agent answers between HTML and markdown.
package textfmt

import (
	"fmt"
	"html"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

var converter = md.NewConverter("", true, nil)

// Markdown converts an HTML fragment to markdown. Plain text comes back unchanged.
func Markdown(fragment string) (string, error) {
	if !strings.Contains(fragment, "<") {
		return fragment, nil
	}

	out, err := converter.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return out, nil
}

// HTML renders markdown. Raw HTML in the input is dropped and links are limited to safe
// protocols.
func HTML(text string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.SkipHTML | mdhtml.Safelink | mdhtml.HrefTargetBlank | mdhtml.NoopenerLinks,
	})
	return string(markdown.ToHTML([]byte(text), p, r))
}

// SafeHTML passes an HTML fragment from the backend through markdown so that only markup
// markdown can express survives.
func SafeHTML(fragment string) string {
	m, err := Markdown(fragment)
	if err != nil {
		return html.EscapeString(fragment)
	}
	return HTML(m)
}
