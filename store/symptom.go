package store

import (
	"github.com/google/uuid"

	"github.com/sabi-health/sabi-api/schema"
)

// CreateSymptomRecord appends one self-reported check-in. Records are
// never updated or deleted.
func (s *SabiStore) CreateSymptomRecord(record *schema.SymptomRecord) (*schema.SymptomRecord, error) {
	record.ID = uuid.New()

	if err := s.ormDB.Create(record).Error; err != nil {
		return nil, err
	}

	return record, nil
}

// ListSymptomsByUser returns records newest first. A non-positive
// limit returns all of them.
func (s *SabiStore) ListSymptomsByUser(userID uuid.UUID, limit int) ([]schema.SymptomRecord, error) {
	q := s.ormDB.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var records []schema.SymptomRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
