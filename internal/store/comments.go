package store

import (
	"github.com/bingoboard-dev/bingoboard/internal/models"
)

func (s *Store) CreateComment(comment *models.Comment) error {
	return s.db.Create(comment).Error
}

// CommentsForCard returns every comment attached to the owner's card,
// unfiltered. Callers must apply the private-visibility filter before exposing
// the result.
func (s *Store) CommentsForCard(cardOwnerID uint) ([]models.Comment, error) {
	var comments []models.Comment

	err := s.db.
		Preload("Author").
		Where("card_owner_id = ?", cardOwnerID).
		Order("created_at").
		Find(&comments).Error

	if err != nil {
		return nil, err
	}

	return comments, nil
}

// CommentsForCell narrows CommentsForCard to one cell coordinate. The
// coordinates are not validated against the live grid.
func (s *Store) CommentsForCell(cardOwnerID uint, row, col int) ([]models.Comment, error) {
	var comments []models.Comment

	err := s.db.
		Preload("Author").
		Where("card_owner_id = ? AND cell_row = ? AND cell_col = ?", cardOwnerID, row, col).
		Order("created_at").
		Find(&comments).Error

	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (s *Store) CommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment

	if err := s.db.First(&comment, id).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// DeleteCommentByAuthor deletes a comment only when the id and author both
// match; deleting someone else's comment matches zero rows.
func (s *Store) DeleteCommentByAuthor(commentID, authorID uint) (int64, error) {
	result := s.db.
		Where("id = ? AND author_id = ?", commentID, authorID).
		Delete(&models.Comment{})

	return result.RowsAffected, result.Error
}
