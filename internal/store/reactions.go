package store

import (
	"github.com/bingoboard-dev/bingoboard/internal/models"
)

func (s *Store) CreateReaction(reaction *models.Reaction) error {
	return s.db.Create(reaction).Error
}

func (s *Store) DeleteReaction(commentID, userID uint, emoji string) (int64, error) {
	result := s.db.
		Where("comment_id = ? AND user_id = ? AND emoji = ?", commentID, userID, emoji).
		Delete(&models.Reaction{})

	return result.RowsAffected, result.Error
}

func (s *Store) ReactionsForComment(commentID uint) ([]models.Reaction, error) {
	var reactions []models.Reaction

	err := s.db.
		Preload("User").
		Where("comment_id = ?", commentID).
		Order("created_at").
		Find(&reactions).Error

	if err != nil {
		return nil, err
	}

	return reactions, nil
}
