package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Subscriber struct {
	Id                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BusinessAccountId  *string    `gorm:"type:varchar(64);index"`
	Msisdn             string     `gorm:"type:varchar(15);uniqueIndex;not null"`
	Imsi               string     `gorm:"type:varchar(15);uniqueIndex;not null"`
	IccId              *string    `gorm:"type:varchar(22)"`
	SubscriberType     *string    `gorm:"type:varchar(50)"`
	State              string     `gorm:"type:varchar(20);not null;index"`
	PreviousState      *string    `gorm:"type:varchar(20)"`
	CreationDate       time.Time  `gorm:"not null"`
	LastTransitionDate *time.Time
	ActivationDate     *time.Time
	ExpirationDate     time.Time `gorm:"not null"`
	PersonalInfo       datatypes.JSON
	Billing            datatypes.JSON
	LastModifiedDate   *time.Time
}

func (Subscriber) TableName() string {
	return "subscribers"
}
