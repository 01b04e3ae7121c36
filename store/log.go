package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/sabi-health/sabi-api/schema"
)

// CreateLog records one outreach attempt at send time.
func (s *SabiStore) CreateLog(userID uuid.UUID, riskType, script string, audioURL *string) (*schema.Log, error) {
	l := schema.Log{
		ID:       uuid.New(),
		UserID:   userID,
		RiskType: riskType,
		Script:   script,
		AudioURL: audioURL,
	}

	if err := s.ormDB.Create(&l).Error; err != nil {
		return nil, err
	}

	return &l, nil
}

func (s *SabiStore) GetLog(id uuid.UUID) (*schema.Log, error) {
	var l schema.Log
	if err := s.ormDB.Where("id = ?", id).First(&l).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (s *SabiStore) ListLogs() ([]schema.Log, error) {
	var logs []schema.Log
	if err := s.ormDB.Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *SabiStore) ListLogsByUser(userID uuid.UUID) ([]schema.Log, error) {
	var logs []schema.Log
	if err := s.ormDB.Where("user_id = ?", userID).Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// UpdateLogResponse stores the recipient's self-reported status. The
// write is a plain overwrite: repeating it with the same or a new value
// succeeds, so duplicate webhook deliveries stay idempotent.
func (s *SabiStore) UpdateLogResponse(id uuid.UUID, response string) error {
	result := s.ormDB.Model(&schema.Log{}).Where("id = ?", id).Update("response", response)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}
