package schema

import (
	"time"

	"github.com/google/uuid"
)

// Notification feed item categories.
const (
	NotificationRain       = "rain"
	NotificationOutbreak   = "outbreak"
	NotificationPrediction = "prediction"
	NotificationTip        = "tip"
	NotificationAlert      = "alert"
)

// NotificationMessage is an append-only in-app feed item, independent
// of the call delivery logs.
type NotificationMessage struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Title     string    `json:"title"`
	Body      string    `json:"body" gorm:"type:text"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"timestamp"`
}

func (NotificationMessage) TableName() string {
	return "notifications"
}
