package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/charts"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
	"github.com/daniilsolovey/powersector-desk/internal/textfmt"
)

const wrapWidth = 80

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(wrapWidth - 2)
	headlineStyle = lipgloss.NewStyle().Bold(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	sentimentStyles = map[backend.Sentiment]lipgloss.Style{
		backend.Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		backend.Neutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true),
		backend.Negative: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

func renderCard(c desk.Card) string {
	a := c.Article

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", metaStyle.Render(fmt.Sprintf("#%d", a.ArticleID)), headlineStyle.Render(a.Headline))
	fmt.Fprintf(&b, "%s\n", metaStyle.Render(strings.Join([]string{c.Source(), c.Author(), a.PublicationDate}, " · ")))
	b.WriteString(sentimentStyles[c.Sentiment()].Render(string(c.Sentiment())))

	if len(a.Tags) > 0 {
		tags := make([]string, len(a.Tags))
		for i, t := range a.Tags {
			tags[i] = "#" + t.TagName
			if t.Sentiment != "" {
				tags[i] += " (" + string(t.Sentiment) + ")"
			}
		}
		b.WriteString("  " + tagStyle.Render(strings.Join(tags, " ")))
	}

	if a.ArticleSummary != "" {
		summary, err := textfmt.Markdown(a.ArticleSummary)
		if err != nil {
			summary = a.ArticleSummary
		}
		b.WriteString("\n\n" + strings.TrimSpace(summary))
	}
	if a.URL != "" {
		b.WriteString("\n" + metaStyle.Render(a.URL))
	}

	return cardStyle.Render(b.String())
}

func renderSnapshot(w io.Writer, snap desk.Snapshot) {
	if snap.Searching {
		fmt.Fprintf(w, "Results for %q\n", snap.Term)
	}
	if len(snap.Sources) > 0 {
		fmt.Fprintf(w, "Sources: %s\n", strings.Join(snap.Sources, ", "))
	}
	if snap.Total == 0 {
		fmt.Fprintln(w, noticeStyle.Render("No articles found."))
		return
	}

	for _, a := range snap.Articles {
		fmt.Fprintln(w, renderCard(desk.Card{Article: a}))
	}
	fmt.Fprintln(w, metaStyle.Render(fmt.Sprintf("Page %d of %d · %d articles", snap.Page+1, snap.PageCount, snap.Total)))
}

func renderResult(w io.Writer, action string, res desk.Result) {
	if !res.Applied {
		fmt.Fprintln(w, noticeStyle.Render(action+": nothing changed"))
		return
	}
	fmt.Fprintln(w, action+": done")
	if res.Article.ArticleID != 0 {
		fmt.Fprintln(w, renderCard(desk.Card{Article: res.Article}))
	}
}

func renderChart(w io.Writer, c charts.Chart) {
	fmt.Fprintln(w, headlineStyle.Render(c.Title))
	if c.Empty() {
		fmt.Fprintln(w, metaStyle.Render("  no data"))
		return
	}

	width := 0
	for _, label := range c.Categories {
		width = max(width, lipgloss.Width(label))
	}

	for i, label := range c.Categories {
		parts := make([]string, 0, len(c.Series))
		for _, s := range c.Series {
			parts = append(parts, fmt.Sprintf("%s %g", s.Name, s.Data[i]))
		}
		fmt.Fprintf(w, "  %-*s  %s\n", width, label, strings.Join(parts, "  "))
	}
}

// renderMarkdown renders an agent answer for the terminal, falling back to the raw text.
func renderMarkdown(text string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return text
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
