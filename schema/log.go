package schema

import (
	"time"

	"github.com/google/uuid"
)

// Recipient responses recorded against a delivery log. A second
// response overwrites the first one.
const (
	ResponseFever = "fever"
	ResponseFine  = "fine"
)

// Log is the durable record of one outreach attempt. Response stays
// nil until the recipient answers the call menu or the in-app prompt.
type Log struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	RiskType  string    `json:"risk_type"`
	Script    string    `json:"script" gorm:"type:text"`
	AudioURL  *string   `json:"audio_url"`
	Response  *string   `json:"response"`
	CreatedAt time.Time `json:"timestamp"`
}

func (Log) TableName() string {
	return "logs"
}
