package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriberState string

const (
	SubscriberStatePreProvisioned SubscriberState = "pre-provisioned"
	SubscriberStateActive         SubscriberState = "active"
	SubscriberStateSuspended      SubscriberState = "suspended"
	SubscriberStateDeactivated    SubscriberState = "deactivated"
	// Terminated is never stored: terminating a subscriber hard-deletes the
	// record. It exists so audit descriptions can name the target state.
	SubscriberStateTerminated SubscriberState = "terminated"
)

type Subscriber struct {
	Id                 uuid.UUID
	BusinessAccountId  *string
	Msisdn             string
	Imsi               string
	IccId              *string
	SubscriberType     *string
	State              SubscriberState
	PreviousState      *SubscriberState
	CreationDate       time.Time
	LastTransitionDate *time.Time
	ActivationDate     *time.Time
	ExpirationDate     time.Time
	PersonalInfo       datatypes.JSON
	Billing            datatypes.JSON
	LastModifiedDate   *time.Time
}
