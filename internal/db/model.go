// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	JournalEntry struct {
		ID, Workspace, Operation, ArticleID, Applied, Error, CreatedAt string
	}
}{
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	JournalEntry: struct {
		ID, Workspace, Operation, ArticleID, Applied, Error, CreatedAt string
	}{
		ID:        "entryId",
		Workspace: "workspace",
		Operation: "operation",
		ArticleID: "articleId",
		Applied:   "applied",
		Error:     "error",
		CreatedAt: "createdAt",
	},
}

var Tables = struct {
	GooseDbVersion struct {
		Name, Alias string
	}
	JournalEntry struct {
		Name, Alias string
	}
}{
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	JournalEntry: struct {
		Name, Alias string
	}{
		Name:  "journalEntries",
		Alias: "t",
	},
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type JournalEntry struct {
	tableName struct{} `pg:"journalEntries,alias:t,discard_unknown_columns"`

	ID        int       `pg:"entryId,pk"`
	Workspace string    `pg:"workspace,use_zero"`
	Operation string    `pg:"operation,use_zero"`
	ArticleID int       `pg:"articleId,use_zero"`
	Applied   bool      `pg:"applied,use_zero"`
	Error     *string   `pg:"error"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
}
