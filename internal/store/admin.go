package store

import (
	"github.com/bingoboard-dev/bingoboard/internal/models"
)

func (s *Store) CountNonAdminUsers() (int64, error) {
	var count int64

	err := s.db.Model(&models.User{}).
		Where("is_admin = ?", false).
		Count(&count).Error

	return count, err
}

func (s *Store) CountCards() (int64, error) {
	var count int64
	err := s.db.Model(&models.Card{}).Count(&count).Error
	return count, err
}

func (s *Store) CountGroups() (int64, error) {
	var count int64
	err := s.db.Model(&models.Group{}).Count(&count).Error
	return count, err
}

// CountAllComments is the combined card-comment and group-comment count.
func (s *Store) CountAllComments() (int64, error) {
	var cardComments, groupComments int64

	if err := s.db.Model(&models.Comment{}).Count(&cardComments).Error; err != nil {
		return 0, err
	}

	if err := s.db.Model(&models.GroupComment{}).Count(&groupComments).Error; err != nil {
		return 0, err
	}

	return cardComments + groupComments, nil
}
