package desk

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
)

const defaultRangeLabel = "Past 14 days data"

type InsightsAPI interface {
	SourcesSentiment(ctx context.Context, scope backend.Scope, r backend.DateRange) ([]backend.Row, error)
	TopTags(ctx context.Context, scope backend.Scope, r backend.DateRange) ([]backend.Row, error)
	NewsSummary(ctx context.Context, r backend.DateRange) (*backend.Summary, error)
}

// InsightsData is what an insights page renders. A dataset that failed to load stays empty and
// its error is listed in Errors.
type InsightsData struct {
	Scope      backend.Scope
	RangeLabel string
	Sentiment  []backend.Row
	TopTags    []backend.Row
	Summary    *backend.Summary
	Errors     map[string]string
}

type Insights struct {
	api InsightsAPI
	log *slog.Logger
}

func NewInsights(api InsightsAPI, log *slog.Logger) *Insights {
	if log == nil {
		log = slog.Default()
	}
	return &Insights{api: api, log: log}
}

// ParseDateRange accepts both bounds or neither, as YYYY-MM-DD.
func ParseDateRange(start, end string) (backend.DateRange, error) {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" && end == "" {
		return backend.DateRange{}, nil
	}
	if start == "" || end == "" {
		return backend.DateRange{}, invalid("Select both a start and an end date")
	}

	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return backend.DateRange{}, invalid("Start date must be YYYY-MM-DD")
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return backend.DateRange{}, invalid("End date must be YYYY-MM-DD")
	}
	if e.Before(s) {
		return backend.DateRange{}, invalid("End date is before start date")
	}

	return backend.DateRange{Start: &start, End: &end}, nil
}

func RangeLabel(r backend.DateRange) string {
	if r.Start == nil || r.End == nil {
		return defaultRangeLabel
	}
	return *r.Start + " to " + *r.End
}

// Load fetches every dataset of the page at once. One failing dataset never blocks the others.
func (i *Insights) Load(ctx context.Context, scope backend.Scope, r backend.DateRange) InsightsData {
	data := InsightsData{
		Scope:      scope,
		RangeLabel: RangeLabel(r),
		Sentiment:  []backend.Row{},
		TopTags:    []backend.Row{},
		Errors:     map[string]string{},
	}

	var mu sync.Mutex
	fail := func(name string, err error) {
		i.log.Error("failed to load insights", "dataset", name, "scope", scope, "error", err)
		mu.Lock()
		data.Errors[name] = err.Error()
		mu.Unlock()
	}

	var g errgroup.Group

	g.Go(func() error {
		rows, err := i.api.SourcesSentiment(ctx, scope, r)
		if err != nil {
			fail("sentiment", err)
			return nil
		}
		mu.Lock()
		data.Sentiment = rows
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		rows, err := i.api.TopTags(ctx, scope, r)
		if err != nil {
			fail("top_tags", err)
			return nil
		}
		mu.Lock()
		data.TopTags = rows
		mu.Unlock()
		return nil
	})

	if scope != backend.ScopeVerified {
		g.Go(func() error {
			s, err := i.api.NewsSummary(ctx, r)
			if err != nil {
				fail("summary", err)
				return nil
			}
			mu.Lock()
			data.Summary = s
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	if data.Sentiment == nil {
		data.Sentiment = []backend.Row{}
	}
	if data.TopTags == nil {
		data.TopTags = []backend.Row{}
	}
	return data
}
