package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/urlstruct"
)

const (
	defaultEntriesLimit = 50
	maxEntriesLimit     = 500
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// EntryFilter narrows journal listings. It is decoded from query strings with urlstruct:
// ?workspace=..&operation=..&article_id=..&applied=..&page=..&limit=..
type EntryFilter struct {
	urlstruct.Pager

	Workspace string
	Operation string
	ArticleID int
	Applied   sql.NullBool
}

// Init applies listing limits; call it before decoding so page offsets use them.
func (f *EntryFilter) Init() {
	f.Pager.DefaultLimit = defaultEntriesLimit
	f.Pager.MaxLimit = maxEntriesLimit
}

func (r *Repository) AddEntry(ctx context.Context, e *JournalEntry) error {
	if _, err := r.db.ModelContext(ctx, e).Insert(); err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return nil
}

// Entries returns journal entries newest first.
func (r *Repository) Entries(ctx context.Context, f *EntryFilter) ([]JournalEntry, error) {
	entries := []JournalEntry{}
	query := r.db.ModelContext(ctx, &entries)
	query = applyFilter(query, f)

	err := query.
		OrderExpr(`"t"."createdAt" DESC, "t"."entryId" DESC`).
		Limit(f.GetLimit()).
		Offset(f.GetOffset()).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}

	return entries, nil
}

func (r *Repository) EntriesCount(ctx context.Context, f *EntryFilter) (int, error) {
	query := applyFilter(r.db.ModelContext(ctx, (*JournalEntry)(nil)), f)

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get journal entries count: %w", err)
	}

	return count, nil
}

func applyFilter(query *pg.Query, f *EntryFilter) *pg.Query {
	if f == nil {
		return query
	}
	if f.Workspace != "" {
		query = query.Where(`"t"."workspace" = ?`, f.Workspace)
	}
	if f.Operation != "" {
		query = query.Where(`"t"."operation" = ?`, f.Operation)
	}
	if f.ArticleID != 0 {
		query = query.Where(`"t"."articleId" = ?`, f.ArticleID)
	}
	if f.Applied.Valid {
		query = query.Where(`"t"."applied" = ?`, f.Applied.Bool)
	}
	return query
}
