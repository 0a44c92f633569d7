package store

import (
	"github.com/bingoboard-dev/bingoboard/internal/models"
)

// FriendshipBetween finds the row for the unordered pair {a, b} in any status.
// The pair has no canonical column ordering, so both directions are checked.
func (s *Store) FriendshipBetween(a, b uint) (*models.Friendship, error) {
	var friendship models.Friendship

	err := s.db.
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)", a, b, b, a).
		First(&friendship).Error

	if err != nil {
		return nil, err
	}

	return &friendship, nil
}

func (s *Store) CreateFriendship(friendship *models.Friendship) error {
	return s.db.Create(friendship).Error
}

func (s *Store) FriendshipByID(id uint) (*models.Friendship, error) {
	var friendship models.Friendship

	if err := s.db.First(&friendship, id).Error; err != nil {
		return nil, err
	}

	return &friendship, nil
}

func (s *Store) SaveFriendship(friendship *models.Friendship) error {
	return s.db.Save(friendship).Error
}

func (s *Store) DeleteFriendship(friendship *models.Friendship) error {
	return s.db.Delete(friendship).Error
}

// PendingRequestsFor returns pending rows where the user is the addressee,
// with the requester preloaded for the response projection.
func (s *Store) PendingRequestsFor(userID uint) ([]models.Friendship, error) {
	var requests []models.Friendship

	err := s.db.
		Preload("Requester").
		Where("addressee_id = ? AND status = ?", userID, models.FriendshipStatusPending).
		Order("created_at").
		Find(&requests).Error

	if err != nil {
		return nil, err
	}

	return requests, nil
}

// AcceptedFriendshipsOf returns every accepted row touching the user,
// regardless of which column holds them.
func (s *Store) AcceptedFriendshipsOf(userID uint) ([]models.Friendship, error) {
	var friendships []models.Friendship

	err := s.db.
		Preload("Requester").
		Preload("Addressee").
		Where("(requester_id = ? OR addressee_id = ?) AND status = ?", userID, userID, models.FriendshipStatusAccepted).
		Order("created_at").
		Find(&friendships).Error

	if err != nil {
		return nil, err
	}

	return friendships, nil
}

func (s *Store) CountAcceptedFriends(userID uint) (int64, error) {
	var count int64

	err := s.db.Model(&models.Friendship{}).
		Where("(requester_id = ? OR addressee_id = ?) AND status = ?", userID, userID, models.FriendshipStatusAccepted).
		Count(&count).Error

	return count, err
}
