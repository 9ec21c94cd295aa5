package charts

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
)

func TestSentimentBars(t *testing.T) {
	long := strings.Repeat("x", 45)

	rows := []backend.Row{
		{"source": "Dawn", "positive": 3.0, "negative": 1.0, "neutral": 2.0},
		{"source": long, "positive": 9.0, "positive_percentage": 60.5, "negative_percentage": "20", "neutral_percentage": 19.5},
		{"source": nil, "positive_percentage": nil, "positive": 4.0},
	}

	got := SentimentBars(SourcesTitle, rows, "source")

	want := Chart{
		Title:      SourcesTitle,
		Categories: []string{"Dawn", strings.Repeat("x", 40) + "...", ""},
		FullLabels: []string{"Dawn", long, ""},
		Series: []Series{
			{Name: "Positive", Data: []float64{3, 60.5, 4}},
			{Name: "Negative", Data: []float64{1, 20, 0}},
			{Name: "Neutral", Data: []float64{2, 19.5, 0}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SentimentBars mismatch (-want +got):\n%s", diff)
	}
}

func TestSentimentBars_Empty(t *testing.T) {
	c := SentimentBars(TagsTitle, nil, "tag_name")
	assert.True(t, c.Empty())
	assert.Len(t, c.Series, 3)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short"))
	exact := strings.Repeat("a", 40)
	assert.Equal(t, exact, Truncate(exact))
	assert.Equal(t, strings.Repeat("ب", 40)+"...", Truncate(strings.Repeat("ب", 41)))
}

func TestQuoteBreakdown(t *testing.T) {
	c := QuoteBreakdown("Awais Leghari", []backend.QuoteMonth{
		{YearMonth: "2025-01", PositiveCount: 2, NeutralCount: 1, NegativeCount: 0, TotalQuotes: 3},
		{YearMonth: "2025-02", PositiveCount: 0, NeutralCount: 1, NegativeCount: 4, TotalQuotes: 5},
	})

	assert.Equal(t, []string{"2025-01", "2025-02"}, c.Categories)
	assert.Equal(t, []string{"Positive", "Neutral", "Negative"}, []string{c.Series[0].Name, c.Series[1].Name, c.Series[2].Name})
	assert.Equal(t, []float64{0, 4}, c.Series[2].Data)
	assert.Equal(t, 8.0, c.Total)

	assert.Equal(t, 0.0, QuoteBreakdown("x", nil).Total)
}

func TestTrend(t *testing.T) {
	c := Trend([]TrendPoint{{PersonQuoted: "Musadik Malik", MonthYear: "Jan-2025", Positive: 70, Negative: 30}})
	assert.Equal(t, "Musadik Malik - Monthly Sentiment Trend", c.Title)
	assert.Equal(t, []float64{70}, c.Series[0].Data)

	assert.Equal(t, "Federal Minister Sardar Awais Ahmad Khan Leghari - Monthly Sentiment Trend", Trend(nil).Title)
}

func TestPercentages(t *testing.T) {
	tests := []struct {
		name    string
		p, n, u int
		want    Share
	}{
		{name: "Zero", want: Share{}},
		{name: "Even", p: 1, n: 1, u: 2, want: Share{Positive: 25, Neutral: 25, Negative: 50}},
		{name: "Rounded", p: 1, n: 1, u: 1, want: Share{Positive: 33.3, Neutral: 33.3, Negative: 33.3}},
		{name: "TwoThirds", p: 2, n: 1, u: 0, want: Share{Positive: 66.7, Neutral: 33.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentages(tt.p, tt.n, tt.u))
		})
	}

	assert.Equal(t, Share{Positive: 50, Negative: 50}, SummaryShare(backend.Summary{Positive: 3, Negative: 3}))
}
