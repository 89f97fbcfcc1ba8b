package model

import (
	"time"

	"github.com/google/uuid"
)

type Balance struct {
	Id                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubscriptionId           uuid.UUID `gorm:"type:uuid;not null;index"`
	BalanceType              string    `gorm:"type:varchar(50);not null"`
	UnitType                 string    `gorm:"type:varchar(20);not null"`
	BalanceAmount            float64   `gorm:"not null"`
	BalanceAvailable         float64   `gorm:"not null"`
	IsGroupBalance           bool      `gorm:"default:false"`
	IsRecurring              bool      `gorm:"default:false"`
	CycleLengthUnits         int       `gorm:"default:1"`
	CycleLengthType          string    `gorm:"type:varchar(10)"`
	MaxRecurringCycles       *int
	RecurringCyclesCompleted int     `gorm:"default:0"`
	RolloverAmount           float64 `gorm:"default:0"`
	MaxRolloverAmount        *float64
	IsRolloverAllowed        bool `gorm:"default:false"`
	EffectiveDate            *time.Time
	ExpirationDate           time.Time `gorm:"not null"`
	CreationDate             time.Time `gorm:"not null"`
	LastModifiedDate         *time.Time
}

func (Balance) TableName() string {
	return "balances"
}
