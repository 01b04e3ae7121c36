package schema

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered alert recipient. The phone number is the
// uniqueness key; everything except the personality is immutable
// after registration.
type User struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Name        string    `json:"name" gorm:"not null"`
	Phone       string    `json:"phone" gorm:"not null;unique_index"`
	LGA         string    `json:"lga" gorm:"not null"`
	Personality string    `json:"ai_personality" gorm:"column:ai_personality"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
