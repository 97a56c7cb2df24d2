// Package prompt assembles the outbound conversation sent to the
// completion provider: persona injection, history bounding, and role
// normalization.
package prompt

import (
	"strings"

	"github.com/nehal404/portfolio-chatbot-backend/pkg/llm"
)

// Builder assembles conversations around a fixed persona prompt.
// The zero value disables both the persona and the history bound.
type Builder struct {
	// Persona is the system prompt establishing the assistant's identity.
	Persona string
	// HistoryLimit caps how many prior turns are forwarded upstream.
	// Zero means unlimited.
	HistoryLimit int
}

// FromMessage builds the conversation for the single-message contract:
// persona, then the most recent history turns, then the new user message.
func (b Builder) FromMessage(history []llm.Message, message string) []llm.Message {
	bounded := b.bound(history)

	out := make([]llm.Message, 0, len(bounded)+2)
	if b.Persona != "" {
		out = append(out, llm.Message{Role: llm.RoleSystem, Content: b.Persona})
	}
	for _, turn := range bounded {
		if strings.TrimSpace(turn.Content) == "" {
			continue
		}
		out = append(out, llm.Message{Role: normalizeRole(turn.Role), Content: turn.Content})
	}
	out = append(out, llm.Message{Role: llm.RoleUser, Content: message})
	return out
}

// FromThread builds the conversation for the full-thread contract. A
// thread that opens with its own system turn is forwarded verbatim so the
// caller's prompt is not doubled up with the persona; otherwise the
// persona is prepended and roles are normalized.
func (b Builder) FromThread(thread []llm.Message) []llm.Message {
	if len(thread) == 0 {
		return nil
	}

	if thread[0].Role == llm.RoleSystem {
		out := make([]llm.Message, len(thread))
		copy(out, thread)
		return out
	}

	out := make([]llm.Message, 0, len(thread)+1)
	if b.Persona != "" {
		out = append(out, llm.Message{Role: llm.RoleSystem, Content: b.Persona})
	}
	for _, turn := range thread {
		if strings.TrimSpace(turn.Content) == "" {
			continue
		}
		out = append(out, llm.Message{Role: normalizeRole(turn.Role), Content: turn.Content})
	}
	return out
}

// HasUserTurn reports whether the assembled conversation contains at
// least one user message.
func HasUserTurn(messages []llm.Message) bool {
	for _, m := range messages {
		if m.Role == llm.RoleUser {
			return true
		}
	}
	return false
}

// bound keeps the most recent HistoryLimit turns, dropping older ones.
func (b Builder) bound(history []llm.Message) []llm.Message {
	if b.HistoryLimit <= 0 || len(history) <= b.HistoryLimit {
		return history
	}
	return history[len(history)-b.HistoryLimit:]
}

// normalizeRole collapses anything that is not a user turn to assistant.
// Callers cannot smuggle extra system prompts through history.
func normalizeRole(role string) string {
	if role == llm.RoleUser {
		return llm.RoleUser
	}
	return llm.RoleAssistant
}
