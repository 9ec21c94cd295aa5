package desk

import (
	"context"
	"strings"
	"sync"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
)

const (
	unknownSource = "Unknown Source"
	staffReporter = "Staff Reporter"
)

// CardState is the ephemeral UI state of one card. It is never sent to the backend.
type CardState struct {
	MenuOpen bool
	// Editor is the inline field editor currently shown, empty when none.
	Editor   backend.Field
	Updating bool
}

// Card is one article ready for rendering.
type Card struct {
	Article backend.Article
	State   CardState
}

func (c Card) Sentiment() backend.Sentiment { return c.Article.EffectiveSentiment() }

func (c Card) Source() string {
	if s := strings.TrimSpace(c.Article.Source); s != "" {
		return s
	}
	return unknownSource
}

func (c Card) Author() string {
	a := strings.TrimSpace(c.Article.Author)
	if a == "" || strings.EqualFold(a, "unknown") {
		return staffReporter
	}
	return a
}

// Cards holds card state for the articles of a List and routes card actions into it.
type Cards struct {
	list *List

	mu     sync.Mutex
	states map[int]CardState
}

func NewCards(list *List) *Cards {
	return &Cards{list: list, states: make(map[int]CardState)}
}

// Page returns the cards of the list's current page.
func (c *Cards) Page() ([]Card, Snapshot) {
	snap := c.list.Snapshot()

	c.mu.Lock()
	defer c.mu.Unlock()

	cards := make([]Card, len(snap.Articles))
	for i, a := range snap.Articles {
		cards[i] = Card{Article: a, State: c.states[a.ArticleID]}
	}
	return cards, snap
}

func (c *Cards) Card(id int) (Card, bool) {
	a, ok := c.list.Article(id)
	if !ok {
		return Card{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return Card{Article: a, State: c.states[id]}, true
}

func (c *Cards) ToggleMenu(id int) {
	c.update(id, func(s *CardState) { s.MenuOpen = !s.MenuOpen })
}

// OpenEditor shows the inline editor for field, replacing any other open editor on the card.
func (c *Cards) OpenEditor(id int, field backend.Field) error {
	if !field.Valid() {
		return ErrUnknownField
	}
	c.update(id, func(s *CardState) { s.Editor = field })
	return nil
}

func (c *Cards) CloseEditor(id int) {
	c.update(id, func(s *CardState) { s.Editor = "" })
}

// ChooseSentiment closes the sentiment menu and changes the article sentiment.
func (c *Cards) ChooseSentiment(ctx context.Context, id int, s backend.Sentiment) (Result, error) {
	c.update(id, func(st *CardState) { st.MenuOpen = false })
	return c.busy(id, func() (Result, error) { return c.list.ChangeSentiment(ctx, id, s) })
}

func (c *Cards) Verify(ctx context.Context, id int) (Result, error) {
	return c.busy(id, func() (Result, error) { return c.list.Verify(ctx, id) })
}

func (c *Cards) SubmitTag(ctx context.Context, id int, name string) (Result, error) {
	return c.busy(id, func() (Result, error) { return c.list.AddTag(ctx, id, name) })
}

func (c *Cards) RemoveTag(ctx context.Context, id int, name string) (Result, error) {
	return c.busy(id, func() (Result, error) { return c.list.RemoveTag(ctx, id, name) })
}

func (c *Cards) SetTagSentiment(ctx context.Context, id int, tag string, s backend.Sentiment) (Result, error) {
	return c.busy(id, func() (Result, error) { return c.list.SetTagSentiment(ctx, id, tag, s) })
}

func (c *Cards) SubmitQuote(ctx context.Context, id int, quote, person string, s backend.Sentiment) (Result, error) {
	return c.busy(id, func() (Result, error) { return c.list.AddQuote(ctx, id, quote, person, s) })
}

// SubmitField saves the open inline editor and closes it on success.
func (c *Cards) SubmitField(ctx context.Context, id int, field backend.Field, value string) (Result, error) {
	res, err := c.busy(id, func() (Result, error) { return c.list.UpdateField(ctx, id, field, value) })
	if err == nil {
		c.CloseEditor(id)
	}
	return res, err
}

// RequestDelete deletes the article only when the editor confirmed the prompt.
func (c *Cards) RequestDelete(ctx context.Context, id int, confirmed bool) (Result, error) {
	if !confirmed {
		a, _ := c.list.Article(id)
		return Result{Article: a}, nil
	}

	res, err := c.busy(id, func() (Result, error) { return c.list.Delete(ctx, id) })
	if res.Applied {
		c.mu.Lock()
		delete(c.states, id)
		c.mu.Unlock()
	}
	return res, err
}

func (c *Cards) update(id int, fn func(s *CardState)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.states[id]
	fn(&s)
	if s == (CardState{}) {
		delete(c.states, id)
		return
	}
	c.states[id] = s
}

func (c *Cards) busy(id int, fn func() (Result, error)) (Result, error) {
	c.update(id, func(s *CardState) { s.Updating = true })
	defer c.update(id, func(s *CardState) { s.Updating = false })
	return fn()
}
