package handler

import (
	"fmt"
	"unicode/utf8"

	"bizform/internal/assistant"
	dErrors "bizform/pkg/domain-errors"
)

const (
	maxMessageLength = 2000
	maxHistoryTurns  = 20
)

// ChatMessage is one prior conversation turn in a chat request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the HTTP request body for POST /api/assistant/chat.
type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history"`
	Tier    string        `json:"tier"`

	// Parsed values (populated by Validate)
	parsedTier    assistant.Tier
	parsedHistory []assistant.Message
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ChatRequest) Validate() error {
	if r.Message == "" {
		return dErrors.New(dErrors.CodeValidation, "message is required")
	}
	if utf8.RuneCountInString(r.Message) > maxMessageLength {
		return dErrors.Newf(dErrors.CodeValidation, "message exceeds %d characters", maxMessageLength)
	}
	if len(r.History) > maxHistoryTurns {
		return dErrors.Newf(dErrors.CodeValidation, "history exceeds %d turns", maxHistoryTurns)
	}

	if r.Tier == "" {
		r.parsedTier = assistant.TierGeneral
	} else {
		tier := assistant.Tier(r.Tier)
		if !tier.IsValid() {
			return dErrors.New(dErrors.CodeValidation, "tier must be one of general, npd, ip, ooo")
		}
		r.parsedTier = tier
	}

	r.parsedHistory = make([]assistant.Message, 0, len(r.History))
	for i, turn := range r.History {
		if turn.Role != assistant.RoleUser && turn.Role != assistant.RoleAssistant {
			return dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("history[%d].role must be user or assistant", i))
		}
		if turn.Content == "" {
			return dErrors.Newf(dErrors.CodeValidation, "history[%d].content is required", i)
		}
		r.parsedHistory = append(r.parsedHistory, assistant.Message{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	return nil
}

// ParsedTier returns the validated tier.
func (r *ChatRequest) ParsedTier() assistant.Tier {
	return r.parsedTier
}

// ParsedHistory returns the validated conversation history.
func (r *ChatRequest) ParsedHistory() []assistant.Message {
	return r.parsedHistory
}
