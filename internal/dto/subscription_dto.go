package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateSubscriptionRequest struct {
	SubscriberId       uuid.UUID      `json:"subscriberId" validate:"required"`
	OfferId            *string        `json:"offerId,omitempty"`
	OfferName          *string        `json:"offerName,omitempty"`
	SubscriptionType   *string        `json:"subscriptionType,omitempty"`
	Recurring          *bool          `json:"recurring,omitempty"`
	MaxRecurringCycles *int           `json:"maxRecurringCycles,omitempty" validate:"omitempty,min=1"`
	CycleLengthUnits   *int           `json:"cycleLengthUnits,omitempty" validate:"omitempty,min=1"`
	CycleLengthType    *string        `json:"cycleLengthType,omitempty" validate:"omitempty,oneof=days weeks months"`
	ExpirationDate     *time.Time     `json:"expirationDate,omitempty"`
	CustomParameters   datatypes.JSON `json:"customParameters,omitempty"`
}

type SubscriptionResponse struct {
	SubscriptionId           uuid.UUID      `json:"subscriptionId"`
	SubscriberId             uuid.UUID      `json:"subscriberId"`
	OfferId                  *string        `json:"offerId,omitempty"`
	OfferName                *string        `json:"offerName,omitempty"`
	SubscriptionType         *string        `json:"subscriptionType,omitempty"`
	State                    string         `json:"state"`
	PreviousState            *string        `json:"previousState,omitempty"`
	Recurring                bool           `json:"recurring"`
	MaxRecurringCycles       *int           `json:"maxRecurringCycles,omitempty"`
	RecurringCyclesCompleted int            `json:"recurringCyclesCompleted"`
	CycleLengthUnits         int            `json:"cycleLengthUnits"`
	CycleLengthType          string         `json:"cycleLengthType"`
	ActivationDate           *time.Time     `json:"activationDate,omitempty"`
	RenewalDate              *time.Time     `json:"renewalDate,omitempty"`
	ExpirationDate           time.Time      `json:"expirationDate"`
	CustomParameters         datatypes.JSON `json:"customParameters,omitempty"`
	CreationDate             time.Time      `json:"creationDate"`
	LastModifiedDate         *time.Time     `json:"lastModifiedDate,omitempty"`
}
