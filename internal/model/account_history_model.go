package model

import (
	"time"

	"gorm.io/datatypes"
)

type AccountHistory struct {
	InteractionId    string    `gorm:"type:varchar(64);primaryKey"`
	EntityId         string    `gorm:"type:varchar(64);not null;index"`
	EntityType       string    `gorm:"type:varchar(20);not null"`
	CreationDate     time.Time `gorm:"not null"`
	Description      string    `gorm:"type:text"`
	Direction        string    `gorm:"type:varchar(20)"`
	Reason           string    `gorm:"type:varchar(255)"`
	Status           string    `gorm:"type:varchar(50)"`
	Channel          string     `gorm:"type:varchar(50)"`
	InteractionStart *time.Time `gorm:"index"`
	InteractionEnd   *time.Time
	Attachment       datatypes.JSON
	Version          int `gorm:"default:1;not null"`
}

func (AccountHistory) TableName() string {
	return "account_history"
}
