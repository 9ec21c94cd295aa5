package rpc

import (
	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/db"
	"github.com/daniilsolovey/powersector-desk/internal/desk"
)

type Articles []Article

func NewArticles(in []backend.Article) Articles {
	out := make(Articles, len(in))
	for i := range in {
		out[i] = NewArticle(in[i])
	}
	return out
}

type Tags []Tag

func NewTags(in []backend.Tag) Tags {
	out := make(Tags, len(in))
	for i := range in {
		out[i] = NewTag(in[i])
	}
	return out
}

type ChatMessages []ChatMessage

func NewChatMessages(in []desk.Message) ChatMessages {
	out := make(ChatMessages, len(in))
	for i := range in {
		out[i] = ChatMessage{Role: in[i].Role, Text: in[i].Text}
	}
	return out
}

type JournalEntries []JournalEntry

func NewJournalEntries(in []db.JournalEntry) JournalEntries {
	out := make(JournalEntries, len(in))
	for i := range in {
		out[i] = NewJournalEntry(in[i])
	}
	return out
}
