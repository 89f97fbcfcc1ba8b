// FILE: internal/entity/balance_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type BalanceUnitType string

const (
	BalanceUnitBytes      BalanceUnitType = "BYTES"
	BalanceUnitEvents     BalanceUnitType = "EVENTS"
	BalanceUnitSeconds    BalanceUnitType = "SECONDS"
	BalanceUnitMicrocents BalanceUnitType = "MICROCENTS"
	BalanceUnitMicrounits BalanceUnitType = "MICROUNITS"
)

// Balance is one allowance bucket attached to a subscription. The engine
// manages the bucket's lifecycle only; rating and consumption happen in the
// charging domain.
type Balance struct {
	Id                       uuid.UUID
	SubscriptionId           uuid.UUID
	BalanceType              string
	UnitType                 BalanceUnitType
	BalanceAmount            float64
	BalanceAvailable         float64
	IsGroupBalance           bool
	IsRecurring              bool
	CycleLengthUnits         int
	CycleLengthType          CycleLengthType
	MaxRecurringCycles       *int
	RecurringCyclesCompleted int
	RolloverAmount           float64
	MaxRolloverAmount        *float64
	IsRolloverAllowed        bool
	EffectiveDate            *time.Time
	ExpirationDate           time.Time
	CreationDate             time.Time
	LastModifiedDate         *time.Time
}
