package store

import (
	"github.com/google/uuid"

	"github.com/sabi-health/sabi-api/schema"
)

// CreateNotification appends an in-app feed item.
func (s *SabiStore) CreateNotification(userID uuid.UUID, title, body, notificationType string) (*schema.NotificationMessage, error) {
	n := schema.NotificationMessage{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
		Body:   body,
		Type:   notificationType,
	}

	if err := s.ormDB.Create(&n).Error; err != nil {
		return nil, err
	}

	return &n, nil
}

func (s *SabiStore) ListNotificationsByUser(userID uuid.UUID) ([]schema.NotificationMessage, error) {
	var messages []schema.NotificationMessage
	if err := s.ormDB.Where("user_id = ?", userID).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *SabiStore) MarkNotificationRead(id uuid.UUID) error {
	result := s.ormDB.Model(&schema.NotificationMessage{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
