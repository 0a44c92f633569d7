package store

import (
	"github.com/bingoboard-dev/bingoboard/internal/models"
)

func (s *Store) CreateGroupComment(comment *models.GroupComment) error {
	return s.db.Create(comment).Error
}

// GroupComments returns every comment in the group, unfiltered; callers apply
// the private-visibility filter.
func (s *Store) GroupComments(groupID uint) ([]models.GroupComment, error) {
	var comments []models.GroupComment

	err := s.db.
		Preload("Author").
		Where("group_id = ?", groupID).
		Order("created_at").
		Find(&comments).Error

	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (s *Store) GroupCommentByID(id uint) (*models.GroupComment, error) {
	var comment models.GroupComment

	if err := s.db.First(&comment, id).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

func (s *Store) DeleteGroupCommentByAuthor(commentID, authorID uint) (int64, error) {
	result := s.db.
		Where("id = ? AND author_id = ?", commentID, authorID).
		Delete(&models.GroupComment{})

	return result.RowsAffected, result.Error
}

func (s *Store) CreateGroupCommentReaction(reaction *models.GroupCommentReaction) error {
	return s.db.Create(reaction).Error
}

func (s *Store) DeleteGroupCommentReaction(commentID, userID uint, emoji string) (int64, error) {
	result := s.db.
		Where("group_comment_id = ? AND user_id = ? AND emoji = ?", commentID, userID, emoji).
		Delete(&models.GroupCommentReaction{})

	return result.RowsAffected, result.Error
}

func (s *Store) ReactionsForGroupComment(commentID uint) ([]models.GroupCommentReaction, error) {
	var reactions []models.GroupCommentReaction

	err := s.db.
		Preload("User").
		Where("group_comment_id = ?", commentID).
		Order("created_at").
		Find(&reactions).Error

	if err != nil {
		return nil, err
	}

	return reactions, nil
}
