// FILE: internal/entity/subscription_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionState string
type CycleLengthType string

const (
	SubscriptionStatePending   SubscriptionState = "pending"
	SubscriptionStateActive    SubscriptionState = "active"
	SubscriptionStateSuspended SubscriptionState = "suspended"
	SubscriptionStateCancelled SubscriptionState = "cancelled"
	SubscriptionStateExpired   SubscriptionState = "expired"

	CycleLengthDays   CycleLengthType = "days"
	CycleLengthWeeks  CycleLengthType = "weeks"
	CycleLengthMonths CycleLengthType = "months"
)

// ExpirationSentinel is stored when a caller does not supply an expiration
// date. Far enough out to mean "never expires" for provisioning purposes.
var ExpirationSentinel = time.Date(2037, time.December, 31, 23, 59, 59, 0, time.UTC)

type Subscription struct {
	Id                       uuid.UUID
	SubscriberId             uuid.UUID
	OfferId                  *string
	OfferName                *string
	SubscriptionType         *string
	State                    SubscriptionState
	PreviousState            *SubscriptionState
	Recurring                bool
	MaxRecurringCycles       *int
	RecurringCyclesCompleted int
	CycleLengthUnits         int
	CycleLengthType          CycleLengthType
	ActivationDate           *time.Time
	RenewalDate              *time.Time
	ExpirationDate           time.Time
	CustomParameters         datatypes.JSON
	CreationDate             time.Time
	LastModifiedDate         *time.Time
}
