package store

import (
	"errors"

	"github.com/bingoboard-dev/bingoboard/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func (s *Store) CardByOwner(ownerID uint) (*models.Card, error) {
	var card models.Card

	if err := s.db.Where("owner_id = ?", ownerID).First(&card).Error; err != nil {
		return nil, err
	}

	return &card, nil
}

// UpsertCard creates the owner's card or overwrites it in place. Overwrite is
// destructive; no historical versions are kept.
func (s *Store) UpsertCard(ownerID uint, size int, grid, completion datatypes.JSON) (*models.Card, error) {
	var card models.Card

	err := s.db.Where("owner_id = ?", ownerID).First(&card).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		card = models.Card{
			OwnerID:    ownerID,
			Size:       size,
			Grid:       grid,
			Completion: completion,
		}

		if err := s.db.Create(&card).Error; err != nil {
			return nil, err
		}

		return &card, nil
	}

	if err != nil {
		return nil, err
	}

	card.Size = size
	card.Grid = grid
	card.Completion = completion

	if err := s.db.Save(&card).Error; err != nil {
		return nil, err
	}

	return &card, nil
}

// DeleteCardByOwner is idempotent: deleting a card that does not exist is not
// an error.
func (s *Store) DeleteCardByOwner(ownerID uint) error {
	return s.db.Where("owner_id = ?", ownerID).Delete(&models.Card{}).Error
}
