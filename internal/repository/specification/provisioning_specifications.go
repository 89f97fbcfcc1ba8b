package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByMsisdn struct {
	Msisdn string
}

func (s ByMsisdn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("msisdn = ?", s.Msisdn)
}

type ByImsi struct {
	Imsi string
}

func (s ByImsi) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("imsi = ?", s.Imsi)
}

type BySubscriberID struct {
	SubscriberID uuid.UUID
}

func (s BySubscriberID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscriber_id = ?", s.SubscriberID)
}

type BySubscriptionID struct {
	SubscriptionID uuid.UUID
}

func (s BySubscriptionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscription_id = ?", s.SubscriptionID)
}

type ByState struct {
	State string
}

func (s ByState) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("state = ?", s.State)
}

type ByEntityID struct {
	EntityID string
}

func (s ByEntityID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entity_id = ?", s.EntityID)
}

type ByInteractionID struct {
	InteractionID string
}

func (s ByInteractionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("interaction_id = ?", s.InteractionID)
}

// OrderByInteractionStart sorts history newest-first. Records without an
// explicit interaction start fall back to their creation instant.
type OrderByInteractionStart struct{}

func (s OrderByInteractionStart) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("COALESCE(interaction_start, creation_date) DESC, interaction_id DESC")
}
