// Package session models one user's conversation with the explorer as a
// value: a transcript plus an optional selected asset. Every transition
// returns a new State and leaves the receiver untouched.
package session

import (
	"strings"

	"catalog-explorer/internal/domain"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Greeting is the assistant's opening message.
const Greeting = "Hi! Ask me about datasets, columns, owners, PII, or lineage. Example: ‘show datasets with PII in sales’"

// Message is one transcript entry.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// State is an immutable snapshot of a session.
type State struct {
	searcher   domain.Searcher
	transcript []Message
	selection  *domain.Asset
}

// New starts a session whose questions are answered by searcher.
func New(searcher domain.Searcher) State {
	return State{
		searcher:   searcher,
		transcript: []Message{{Role: RoleAssistant, Content: Greeting}},
	}
}

// Transcript returns a copy of the messages so far, oldest first.
func (s State) Transcript() []Message {
	return append([]Message(nil), s.transcript...)
}

// Selection returns the selected asset, if any.
func (s State) Selection() (domain.Asset, bool) {
	if s.selection == nil {
		return domain.Asset{}, false
	}
	return s.selection.Clone(), true
}

// Ask records a user question and the assistant's answer. A blank question
// leaves the state as it was.
func (s State) Ask(question string) State {
	q := strings.TrimSpace(question)
	if q == "" {
		return s
	}
	reply := FormatReply(s.searcher.Search(q))
	next := s
	next.transcript = make([]Message, 0, len(s.transcript)+2)
	next.transcript = append(next.transcript, s.transcript...)
	next.transcript = append(next.transcript,
		Message{Role: RoleUser, Content: q},
		Message{Role: RoleAssistant, Content: reply},
	)
	return next
}

// LastReply returns the content of the most recent assistant message.
func (s State) LastReply() string {
	for i := len(s.transcript) - 1; i >= 0; i-- {
		if s.transcript[i].Role == RoleAssistant {
			return s.transcript[i].Content
		}
	}
	return ""
}

// Select focuses the asset with the given id. On lookup failure the error
// is returned together with the unchanged state.
func (s State) Select(id string, getter domain.AssetGetter) (State, error) {
	a, err := getter.GetAsset(id)
	if err != nil {
		return s, err
	}
	next := s
	next.selection = a
	return next, nil
}

// ClearSelection drops the selected asset.
func (s State) ClearSelection() State {
	next := s
	next.selection = nil
	return next
}
