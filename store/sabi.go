package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/sabi-health/sabi-api/schema"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrLogNotFound          = errors.New("call log not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPhoneTaken           = errors.New("phone number already registered")
)

// SabiCore is the main datastore
type SabiCore interface {
	Ping() error

	// User
	CreateUser(name, phone, lga, personality string) (*schema.User, error)
	GetUser(id uuid.UUID) (*schema.User, error)
	ListUsers() ([]schema.User, error)
	UpdateUserPersonality(id uuid.UUID, personality string) error

	// Log
	CreateLog(userID uuid.UUID, riskType, script string, audioURL *string) (*schema.Log, error)
	GetLog(id uuid.UUID) (*schema.Log, error)
	ListLogs() ([]schema.Log, error)
	ListLogsByUser(userID uuid.UUID) ([]schema.Log, error)
	UpdateLogResponse(id uuid.UUID, response string) error

	// Symptom
	CreateSymptomRecord(record *schema.SymptomRecord) (*schema.SymptomRecord, error)
	ListSymptomsByUser(userID uuid.UUID, limit int) ([]schema.SymptomRecord, error)

	// Notification
	CreateNotification(userID uuid.UUID, title, body, notificationType string) (*schema.NotificationMessage, error)
	ListNotificationsByUser(userID uuid.UUID) ([]schema.NotificationMessage, error)
	MarkNotificationRead(id uuid.UUID) error
}

// SabiStore is an implementation of SabiCore
type SabiStore struct {
	ormDB *gorm.DB
}

func NewSabiStore(ormDB *gorm.DB) *SabiStore {
	return &SabiStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *SabiStore) Ping() error {
	return s.ormDB.DB().Ping()
}
