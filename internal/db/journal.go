package db

import (
	"context"
	"time"

	"github.com/daniilsolovey/powersector-desk/internal/desk"
)

// Journal stores desk mutation outcomes in Postgres.
type Journal struct {
	repo *Repository
	now  func() time.Time
}

func NewJournal(repo *Repository) *Journal {
	return &Journal{repo: repo, now: time.Now}
}

func (j *Journal) Record(ctx context.Context, e desk.Entry) error {
	return j.repo.AddEntry(ctx, newJournalEntry(e, j.now()))
}

func newJournalEntry(e desk.Entry, at time.Time) *JournalEntry {
	entry := &JournalEntry{
		Workspace: e.Workspace,
		Operation: e.Operation,
		ArticleID: e.ArticleID,
		Applied:   e.Applied,
		CreatedAt: at.UTC(),
	}
	if e.Error != "" {
		msg := e.Error
		entry.Error = &msg
	}
	return entry
}

var _ desk.Journal = (*Journal)(nil)
