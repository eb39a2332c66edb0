package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UUID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Email        string    `gorm:"size:254;uniqueIndex;not null"`
	Username     string    `gorm:"size:150;uniqueIndex;not null"`
	FirstName    string    `gorm:"size:150;not null"`
	LastName     string    `gorm:"size:150;not null"`
	PasswordHash string    `gorm:"not null"`
	Avatar       string
}

// Subscription records that UserID follows SubscribedToID.
type Subscription struct {
	ID             uint `gorm:"primarykey"`
	CreatedAt      time.Time
	UserID         uint `gorm:"not null;uniqueIndex:idx_subscription_user_author;check:chk_subscription_not_self,user_id <> subscribed_to_id"`
	SubscribedToID uint `gorm:"not null;uniqueIndex:idx_subscription_user_author;index"`

	User         User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	SubscribedTo User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
