package events

import (
	"context"
	"time"
)

// Type: тип события об изменении каталога.
type Type string

const (
	ItemCreated Type = "item.created"
	ItemUpdated Type = "item.updated"
	ItemDeleted Type = "item.deleted"
)

// ItemEvent: сообщение об изменении одной вещи.
type ItemEvent struct {
	Type Type      `json:"type"`
	ID   int64     `json:"id"`
	At   time.Time `json:"at"`
}

// NewItemEvent создаёт событие с текущим временем (UTC).
func NewItemEvent(typ Type, id int64) ItemEvent {
	return ItemEvent{Type: typ, ID: id, At: time.Now().UTC()}
}

// Publisher публикует события об изменениях.
type Publisher interface {
	Publish(ctx context.Context, ev ItemEvent) error
}
