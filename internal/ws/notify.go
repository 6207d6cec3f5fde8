package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NotificationEvent is the payload pushed to a user's open sockets whenever a
// notification is created for them.
type NotificationEvent struct {
	Type      string    `json:"type"`
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp string    `json:"timestamp"`
}

// Notifier adapts the hub to the usecase layer's push interface.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyUser(userID uuid.UUID, notificationID uuid.UUID, kind, title, message string) {
	if n == nil || n.hub == nil {
		return
	}
	evt := NotificationEvent{
		Type:      "notification",
		ID:        notificationID,
		Kind:      kind,
		Title:     title,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Push(userID, b)
}
