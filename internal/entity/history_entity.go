package entity

import (
	"time"

	"gorm.io/datatypes"
)

type HistoryEntityType string

const (
	HistoryEntitySubscriber   HistoryEntityType = "subscriber"
	HistoryEntitySubscription HistoryEntityType = "subscription"
	HistoryEntityGroup        HistoryEntityType = "group"
	HistoryEntityAccount      HistoryEntityType = "account"
)

// AccountHistory is one immutable audit interaction. InteractionId and
// CreationDate never change after the first write; every other field may be
// patched, each patch bumping Version.
type AccountHistory struct {
	InteractionId    string
	EntityId         string
	EntityType       HistoryEntityType
	CreationDate     time.Time
	Description      string
	Direction        string
	Reason           string
	Status           string
	Channel          string
	InteractionStart *time.Time
	InteractionEnd   *time.Time
	Attachment       datatypes.JSON
	Version          int
}
