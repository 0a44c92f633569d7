package store

import (
	"github.com/bingoboard-dev/bingoboard/internal/models"
)

func (s *Store) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *Store) UserByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Store) UserByEmail(email string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// UserByIdentifier resolves a user by email or handle.
func (s *Store) UserByIdentifier(identifier string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ? OR handle = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// EmailInUse reports whether another user already claims the email.
func (s *Store) EmailInUse(email string, excludeID uint) (bool, error) {
	var count int64

	err := s.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error

	return count > 0, err
}

// HandleInUse reports whether another user already claims the handle.
func (s *Store) HandleInUse(handle string, excludeID uint) (bool, error) {
	var count int64

	err := s.db.Model(&models.User{}).
		Where("handle = ? AND id <> ?", handle, excludeID).
		Count(&count).Error

	return count > 0, err
}

func (s *Store) UpdateUser(user *models.User, updates map[string]interface{}) error {
	return s.db.Model(user).Updates(updates).Error
}

// ListUsersExcept returns every user other than the given one, for the
// directory endpoint.
func (s *Store) ListUsersExcept(id uint) ([]models.User, error) {
	var users []models.User

	if err := s.db.Where("id <> ?", id).Order("name").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User

	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}
