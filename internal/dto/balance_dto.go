package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBalanceRequest struct {
	BalanceType        string     `json:"balanceType" validate:"required"`
	UnitType           string     `json:"unitType" validate:"required,oneof=BYTES EVENTS SECONDS MICROCENTS MICROUNITS"`
	BalanceAmount      float64    `json:"balanceAmount" validate:"gte=0"`
	BalanceAvailable   *float64   `json:"balanceAvailable,omitempty" validate:"omitempty,gte=0"`
	IsGroupBalance     bool       `json:"isGroupBalance,omitempty"`
	IsRecurring        bool       `json:"isRecurring,omitempty"`
	CycleLengthUnits   *int       `json:"cycleLengthUnits,omitempty" validate:"omitempty,min=1"`
	CycleLengthType    *string    `json:"cycleLengthType,omitempty" validate:"omitempty,oneof=days weeks months"`
	MaxRecurringCycles *int       `json:"maxRecurringCycles,omitempty" validate:"omitempty,min=1"`
	MaxRolloverAmount  *float64   `json:"maxRolloverAmount,omitempty" validate:"omitempty,gte=0"`
	IsRolloverAllowed  bool       `json:"isRolloverAllowed,omitempty"`
	EffectiveDate      *time.Time `json:"effectiveDate,omitempty"`
	ExpirationDate     *time.Time `json:"expirationDate,omitempty"`
}

type BalanceResponse struct {
	BalanceId                uuid.UUID  `json:"balanceId"`
	SubscriptionId           uuid.UUID  `json:"subscriptionId"`
	BalanceType              string     `json:"balanceType"`
	UnitType                 string     `json:"unitType"`
	BalanceAmount            float64    `json:"balanceAmount"`
	BalanceAvailable         float64    `json:"balanceAvailable"`
	IsGroupBalance           bool       `json:"isGroupBalance"`
	IsRecurring              bool       `json:"isRecurring"`
	CycleLengthUnits         int        `json:"cycleLengthUnits"`
	CycleLengthType          string     `json:"cycleLengthType"`
	MaxRecurringCycles       *int       `json:"maxRecurringCycles,omitempty"`
	RecurringCyclesCompleted int        `json:"recurringCyclesCompleted"`
	RolloverAmount           float64    `json:"rolloverAmount"`
	MaxRolloverAmount        *float64   `json:"maxRolloverAmount,omitempty"`
	IsRolloverAllowed        bool       `json:"isRolloverAllowed"`
	EffectiveDate            *time.Time `json:"effectiveDate,omitempty"`
	ExpirationDate           time.Time  `json:"expirationDate"`
	CreationDate             time.Time  `json:"creationDate"`
	LastModifiedDate         *time.Time `json:"lastModifiedDate,omitempty"`
}
