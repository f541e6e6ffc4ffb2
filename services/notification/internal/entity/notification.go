package entity

import "time"

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Notification is one entry in a member's inbox.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ActorID   string    `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	Type      string    `json:"type"`
	PostID    string    `json:"post_id,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Page struct {
	Limit  int
	Offset int
}

func NewPage(limit, offset int) Page {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}

type NotificationPage struct {
	Notifications []Notification `json:"notifications"`
	Count         int            `json:"count"`
	Total         int64          `json:"total"`
	Limit         int            `json:"limit"`
	Offset        int            `json:"offset"`
	Message       string         `json:"message,omitempty"`
}

type Conversation struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	LastMessage  string    `json:"last_message"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Inbox is the direct-messages surface. It has no conversations yet.
type Inbox struct {
	Conversations []Conversation `json:"conversations"`
	Message       string         `json:"message"`
}
