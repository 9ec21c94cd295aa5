// Package charts turns aggregate rows from the news backend into chart series.
package charts

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/montanaflynn/stats"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
)

const (
	maxLabelLen = 40

	SourcesTitle = "Sentiment Distribution by News Source"
	TagsTitle    = "Top Repeated Speakers"

	defaultTrendPerson = "Federal Minister Sardar Awais Ahmad Khan Leghari"
)

type Series struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

type Chart struct {
	Title string `json:"title"`
	// Categories are the display labels; FullLabels keep the untruncated text for tooltips.
	Categories []string `json:"categories"`
	FullLabels []string `json:"fullLabels"`
	Series     []Series `json:"series"`
	Total      float64  `json:"total,omitempty"`
}

// Empty reports whether the chart has nothing to draw.
func (c Chart) Empty() bool { return len(c.Categories) == 0 }

// SentimentBars builds the stacked Positive/Negative/Neutral bars of an aggregate, labelled by
// labelKey. Rows may carry raw counts or *_percentage fields; percentages win when present.
func SentimentBars(title string, rows []backend.Row, labelKey string) Chart {
	c := Chart{
		Title:      title,
		Categories: make([]string, len(rows)),
		FullLabels: make([]string, len(rows)),
		Series: []Series{
			{Name: "Positive", Data: make([]float64, len(rows))},
			{Name: "Negative", Data: make([]float64, len(rows))},
			{Name: "Neutral", Data: make([]float64, len(rows))},
		},
	}

	for i, row := range rows {
		label := labelOf(row[labelKey])
		c.FullLabels[i] = label
		c.Categories[i] = Truncate(label)

		c.Series[0].Data[i] = pick(row, "positive")
		c.Series[1].Data[i] = pick(row, "negative")
		c.Series[2].Data[i] = pick(row, "neutral")
	}
	return c
}

// Truncate shortens long labels for axis display.
func Truncate(label string) string {
	r := []rune(label)
	if len(r) <= maxLabelLen {
		return label
	}
	return string(r[:maxLabelLen]) + "..."
}

// QuoteBreakdown charts a person's verified quotes per month.
func QuoteBreakdown(person string, months []backend.QuoteMonth) Chart {
	c := Chart{
		Title:      person,
		Categories: make([]string, len(months)),
		Series: []Series{
			{Name: "Positive", Data: make([]float64, len(months))},
			{Name: "Neutral", Data: make([]float64, len(months))},
			{Name: "Negative", Data: make([]float64, len(months))},
		},
	}

	totals := make(stats.Float64Data, len(months))
	for i, m := range months {
		c.Categories[i] = m.YearMonth
		c.Series[0].Data[i] = float64(m.PositiveCount)
		c.Series[1].Data[i] = float64(m.NeutralCount)
		c.Series[2].Data[i] = float64(m.NegativeCount)
		totals[i] = float64(m.TotalQuotes)
	}
	c.FullLabels = c.Categories

	if len(totals) > 0 {
		c.Total, _ = stats.Sum(totals)
	}
	return c
}

// TrendPoint is one month of a person's quote sentiment.
type TrendPoint struct {
	PersonQuoted string  `json:"person_quoted"`
	MonthYear    string  `json:"month_year"`
	Positive     float64 `json:"positive"`
	Negative     float64 `json:"negative"`
}

// Trend draws the monthly positive and negative lines of the person in points.
func Trend(points []TrendPoint) Chart {
	person := defaultTrendPerson
	if len(points) > 0 {
		person = points[0].PersonQuoted
	}

	c := Chart{
		Title:      person + " - Monthly Sentiment Trend",
		Categories: make([]string, len(points)),
		Series: []Series{
			{Name: "Positive Sentiment", Data: make([]float64, len(points))},
			{Name: "Negative Sentiment", Data: make([]float64, len(points))},
		},
	}
	for i, p := range points {
		c.Categories[i] = p.MonthYear
		c.Series[0].Data[i] = p.Positive
		c.Series[1].Data[i] = p.Negative
	}
	c.FullLabels = c.Categories
	return c
}

// Share is the percentage split of a sentiment count, rounded to one decimal.
type Share struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

func Percentages(positive, neutral, negative int) Share {
	data := stats.Float64Data{float64(positive), float64(neutral), float64(negative)}
	total, _ := stats.Sum(data)
	if total <= 0 {
		return Share{}
	}

	pct := func(v float64) float64 {
		r, err := stats.Round(v*100/total, 1)
		if err != nil {
			return 0
		}
		return r
	}
	return Share{Positive: pct(data[0]), Neutral: pct(data[1]), Negative: pct(data[2])}
}

// SummaryShare is Percentages over a news summary.
func SummaryShare(s backend.Summary) Share {
	return Percentages(s.Positive, s.Neutral, s.Negative)
}

func pick(row backend.Row, key string) float64 {
	if v, ok := row[key+"_percentage"]; ok && v != nil {
		return number(v)
	}
	return number(row[key])
}

func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func labelOf(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
