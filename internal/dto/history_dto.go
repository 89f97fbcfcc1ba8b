package dto

import (
	"time"

	"gorm.io/datatypes"
)

type CreateHistoryRequest struct {
	InteractionId    string         `json:"interactionId,omitempty"`
	EntityId         string         `json:"entityId" validate:"required"`
	EntityType       string         `json:"entityType" validate:"required,oneof=subscriber subscription group account"`
	Description      string         `json:"description,omitempty"`
	Direction        string         `json:"direction,omitempty"`
	Reason           string         `json:"reason,omitempty"`
	Status           string         `json:"status,omitempty"`
	Channel          string         `json:"channel,omitempty"`
	InteractionStart *time.Time     `json:"interactionStart,omitempty"`
	InteractionEnd   *time.Time     `json:"interactionEnd,omitempty"`
	Attachment       datatypes.JSON `json:"attachment,omitempty"`
}

type HistoryResponse struct {
	InteractionId    string          `json:"interactionId"`
	EntityId         string          `json:"entityId"`
	EntityType       string          `json:"entityType"`
	CreationDate     time.Time       `json:"creationDate"`
	Description      string          `json:"description,omitempty"`
	Direction        string          `json:"direction,omitempty"`
	Reason           string          `json:"reason,omitempty"`
	Status           string          `json:"status,omitempty"`
	Channel          string          `json:"channel,omitempty"`
	InteractionDate  InteractionDate `json:"interactionDate"`
	Attachment       datatypes.JSON  `json:"attachment,omitempty"`
	Version          int             `json:"version"`
}

type InteractionDate struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// TransitionEventMessage is published on the event bus after a lifecycle
// transition commits.
type TransitionEventMessage struct {
	EntityId      string    `json:"entityId"`
	EntityType    string    `json:"entityType"`
	FromState     string    `json:"fromState"`
	ToState       string    `json:"toState"`
	InteractionId string    `json:"interactionId"`
	OccurredAt    time.Time `json:"occurredAt"`
}
