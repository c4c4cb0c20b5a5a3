package handler

import (
	"bizform/internal/assistant"
)

// ChatResponse is the HTTP response body for POST /api/assistant/chat.
type ChatResponse struct {
	Reply    string `json:"reply"`
	Cached   bool   `json:"cached"`
	Fallback bool   `json:"fallback,omitempty"`
}

// FromReply converts a service reply to its HTTP representation.
func FromReply(reply *assistant.Reply) ChatResponse {
	return ChatResponse{
		Reply:    reply.Text,
		Cached:   reply.Cached,
		Fallback: reply.Fallback,
	}
}
