package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type EventType string

const (
	EventLike    EventType = "like"
	EventSave    EventType = "save"
	EventFollow  EventType = "follow"
	EventNewPost EventType = "new_post"
)

var EventTypes = []EventType{EventLike, EventSave, EventFollow, EventNewPost}

const MaxPriority = 10

var ErrInvalidEvent = errors.New("invalid event")

// Event is an activity another member should hear about.
// UserID is the recipient, ActorID the member who acted.
type Event struct {
	Type      EventType `json:"type"`
	UserID    string    `json:"user_id"`
	ActorID   string    `json:"actor_id"`
	PostID    string    `json:"post_id,omitempty"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

func (e Event) Validate() error {
	known := false
	for _, t := range EventTypes {
		if e.Type == t {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
	if e.UserID == "" || e.ActorID == "" {
		return fmt.Errorf("%w: user_id and actor_id are required", ErrInvalidEvent)
	}
	if e.Type != EventFollow && e.PostID == "" {
		return fmt.Errorf("%w: post_id is required for %s", ErrInvalidEvent, e.Type)
	}
	return nil
}

func DecodeEvent(body []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if err := event.Validate(); err != nil {
		return Event{}, err
	}
	return event, nil
}

func ClampPriority(priority int) uint8 {
	if priority < 0 {
		return 0
	}
	if priority > MaxPriority {
		return MaxPriority
	}
	return uint8(priority)
}
