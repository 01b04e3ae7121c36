package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/sabi-health/sabi-api/schema"
)

// CreateUser registers a new alert recipient. The phone number is the
// uniqueness key.
func (s *SabiStore) CreateUser(name, phone, lga, personality string) (*schema.User, error) {
	var existing schema.User
	err := s.ormDB.Where("phone = ?", phone).First(&existing).Error
	if err == nil {
		return nil, ErrPhoneTaken
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	u := schema.User{
		ID:          uuid.New(),
		Name:        name,
		Phone:       phone,
		LGA:         lga,
		Personality: personality,
	}

	if err := s.ormDB.Create(&u).Error; err != nil {
		return nil, err
	}

	return &u, nil
}

// GetUser returns the user with the given id
func (s *SabiStore) GetUser(id uuid.UUID) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *SabiStore) ListUsers() ([]schema.User, error) {
	var users []schema.User
	if err := s.ormDB.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserPersonality is the only mutable user attribute after
// registration.
func (s *SabiStore) UpdateUserPersonality(id uuid.UUID, personality string) error {
	result := s.ormDB.Model(&schema.User{}).Where("id = ?", id).Update("ai_personality", personality)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
