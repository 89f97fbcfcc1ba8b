package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateSubscriberRequest struct {
	Msisdn            string         `json:"msisdn" validate:"required,numeric,min=11,max=15"`
	Imsi              string         `json:"imsi" validate:"required,numeric,min=12,max=15"`
	BusinessAccountId *string        `json:"businessAccountId,omitempty"`
	IccId             *string        `json:"iccId,omitempty"`
	SubscriberType    *string        `json:"subscriberType,omitempty"`
	ExpirationDate    *time.Time     `json:"expirationDate,omitempty"`
	PersonalInfo      datatypes.JSON `json:"personalInfo,omitempty"`
	Billing           datatypes.JSON `json:"billing,omitempty"`
}

type SubscriberResponse struct {
	SubscriberId       uuid.UUID      `json:"subscriberId"`
	BusinessAccountId  *string        `json:"businessAccountId,omitempty"`
	Msisdn             string         `json:"msisdn"`
	Imsi               string         `json:"imsi"`
	IccId              *string        `json:"iccId,omitempty"`
	SubscriberType     *string        `json:"subscriberType,omitempty"`
	CurrentState       string         `json:"currentState"`
	PreviousState      *string        `json:"previousState,omitempty"`
	CreationDate       time.Time      `json:"creationDate"`
	LastTransitionDate *time.Time     `json:"lastTransitionDate,omitempty"`
	ActivationDate     *time.Time     `json:"activationDate,omitempty"`
	ExpirationDate     time.Time      `json:"expirationDate"`
	PersonalInfo       datatypes.JSON `json:"personalInfo,omitempty"`
	Billing            datatypes.JSON `json:"billing,omitempty"`
	LastModifiedDate   *time.Time     `json:"lastModifiedDate,omitempty"`
}

// PatchOperation is one field edit in a patch request. FieldValue is decoded
// by the allow-listed setter for FieldName; unknown names are rejected.
type PatchOperation struct {
	FieldName  string      `json:"fieldName" validate:"required"`
	FieldValue interface{} `json:"fieldValue"`
}

type TransitionRequest struct {
	Action string `json:"action" validate:"required,oneof=activate suspend cancel renew"`
}
