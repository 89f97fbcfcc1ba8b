package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Subscription struct {
	Id                       uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubscriberId             uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferId                  *string   `gorm:"type:varchar(64);index"`
	OfferName                *string   `gorm:"type:varchar(255)"`
	SubscriptionType         *string   `gorm:"type:varchar(50)"`
	State                    string    `gorm:"type:varchar(20);not null;index"`
	PreviousState            *string   `gorm:"type:varchar(20)"`
	Recurring                bool      `gorm:"default:false"`
	MaxRecurringCycles       *int
	RecurringCyclesCompleted int    `gorm:"default:0"`
	CycleLengthUnits         int    `gorm:"default:1"`
	CycleLengthType          string `gorm:"type:varchar(10)"`
	ActivationDate           *time.Time
	RenewalDate              *time.Time
	ExpirationDate           time.Time `gorm:"not null"`
	CustomParameters         datatypes.JSON
	CreationDate             time.Time `gorm:"not null"`
	LastModifiedDate         *time.Time
}

func (Subscription) TableName() string {
	return "subscriptions"
}
