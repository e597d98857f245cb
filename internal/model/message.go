// Package model defines data structures shared across the platform.
package model

import (
	"time"
)

// Role represents the role of a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents one turn in an assistant conversation. Messages are
// immutable once created; IDs are UUIDv7, so creation order sorts them.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// SendMessageRequest is the request to send a conversation message.
type SendMessageRequest struct {
	Message string `json:"message"`
}

// ConversationSnapshot is the response shape for a conversation log.
type ConversationSnapshot struct {
	Messages []Message `json:"messages"`
	Pending  int       `json:"pending"`
}
