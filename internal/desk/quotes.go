package desk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
)

type QuotesAPI interface {
	QuotedPersons(ctx context.Context) ([]backend.QuotedPerson, error)
	VerifiedQuotes(ctx context.Context, person string) ([]backend.QuoteMonth, error)
}

// QuoteFinder is the search-then-filter flow over quoted persons: match a name locally, then
// fetch the verified sentiment breakdown for the chosen person.
type QuoteFinder struct {
	api QuotesAPI
	log *slog.Logger

	mu      sync.Mutex
	persons []backend.QuotedPerson
	loaded  bool
}

func NewQuoteFinder(api QuotesAPI, log *slog.Logger) *QuoteFinder {
	if log == nil {
		log = slog.Default()
	}
	return &QuoteFinder{api: api, log: log}
}

// Load fetches the quoted persons. On failure the previous list is kept.
func (f *QuoteFinder) Load(ctx context.Context) error {
	list, err := f.api.QuotedPersons(ctx)
	if err != nil {
		f.log.Error("failed to load quoted persons", "error", err)
		return fmt.Errorf("failed to load quoted persons: %w", err)
	}

	f.mu.Lock()
	f.persons = list
	f.loaded = true
	f.mu.Unlock()
	return nil
}

// Match returns the persons whose name contains term, case-insensitively. A blank term matches
// nothing.
func (f *QuoteFinder) Match(ctx context.Context, term string) []backend.QuotedPerson {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}

	f.mu.Lock()
	loaded := f.loaded
	f.mu.Unlock()
	if !loaded {
		_ = f.Load(ctx)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var out []backend.QuotedPerson
	for _, p := range f.persons {
		if strings.Contains(strings.ToLower(p.PersonQuoted), term) {
			out = append(out, p)
		}
	}
	return out
}

// Breakdown fetches the monthly verified quote sentiment of person.
func (f *QuoteFinder) Breakdown(ctx context.Context, person string) ([]backend.QuoteMonth, error) {
	person = strings.TrimSpace(person)
	if person == "" {
		return nil, invalid("Choose a person")
	}

	months, err := f.api.VerifiedQuotes(ctx, person)
	if err != nil {
		f.log.Error("failed to load verified quotes", "person", person, "error", err)
		return nil, fmt.Errorf("failed to load verified quotes: %w", err)
	}
	return months, nil
}
