package rest

import (
	"context"
	"database/sql"
	"strings"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
)

// ViewQuery drives a list view from the query string: ?refresh=true&page=2&source=Dawn&source=Geo&q=tariff.
// refresh refetches the list first; page is 1-based; source may also be comma separated; an
// empty q ends the search.
type ViewQuery struct {
	Refresh bool
	Page    int
	Source  []string
	Q       sql.NullString
}

// listView is the browse state shared by the article and verified lists.
type listView interface {
	FetchAll(ctx context.Context) error
	SetSourceFilter(sources []string)
	Search(term string)
	GoTo(p int) int
	Snapshot() desk.Snapshot
}

func applyView(c echo.Context, v listView) (desk.Snapshot, error) {
	var q ViewQuery
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &q); err != nil {
		return desk.Snapshot{}, err
	}

	// a failed refetch keeps the previous list, already logged by the view
	if q.Refresh {
		_ = v.FetchAll(c.Request().Context())
	}
	if c.QueryParams().Has("source") {
		v.SetSourceFilter(splitSources(q.Source))
	}
	if q.Q.Valid {
		term := strings.TrimSpace(q.Q.String)
		if term == "" || term != v.Snapshot().Term {
			v.Search(term)
		}
	}
	if q.Page > 0 {
		v.GoTo(q.Page - 1)
	}

	return v.Snapshot(), nil
}

func splitSources(values []string) []string {
	var out []string
	for _, v := range values {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// InsightsQuery is ?scope=verified&start_date=2025-01-01&end_date=2025-01-31.
type InsightsQuery struct {
	Scope     string
	StartDate string
	EndDate   string
}

func (q InsightsQuery) scope() backend.Scope {
	if q.Scope == string(backend.ScopeVerified) {
		return backend.ScopeVerified
	}
	return backend.ScopeAll
}

func decodeInsightsQuery(c echo.Context) (InsightsQuery, error) {
	var q InsightsQuery
	err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &q)
	return q, err
}
