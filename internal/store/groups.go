package store

import (
	"github.com/bingoboard-dev/bingoboard/internal/models"
	"gorm.io/gorm"
)

// CreateGroup creates the group and its creator membership (admin, accepted)
// in one transaction.
func (s *Store) CreateGroup(group *models.Group) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}

		membership := models.GroupMembership{
			GroupID: group.ID,
			UserID:  group.CreatorID,
			Role:    models.GroupRoleAdmin,
			Status:  models.MembershipStatusAccepted,
		}

		return tx.Create(&membership).Error
	})
}

func (s *Store) GroupByID(id uint) (*models.Group, error) {
	var group models.Group

	if err := s.db.First(&group, id).Error; err != nil {
		return nil, err
	}

	return &group, nil
}

func (s *Store) DeleteGroup(group *models.Group) error {
	return s.db.Delete(group).Error
}

func (s *Store) Membership(groupID, userID uint) (*models.GroupMembership, error) {
	var membership models.GroupMembership

	err := s.db.
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&membership).Error

	if err != nil {
		return nil, err
	}

	return &membership, nil
}

func (s *Store) CreateMembership(membership *models.GroupMembership) error {
	return s.db.Create(membership).Error
}

func (s *Store) SaveMembership(membership *models.GroupMembership) error {
	return s.db.Save(membership).Error
}

func (s *Store) DeleteMembership(membership *models.GroupMembership) error {
	return s.db.Delete(membership).Error
}

// MembershipsOf returns the user's memberships, pending invites included, with
// the group preloaded.
func (s *Store) MembershipsOf(userID uint) ([]models.GroupMembership, error) {
	var memberships []models.GroupMembership

	err := s.db.
		Preload("Group").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&memberships).Error

	if err != nil {
		return nil, err
	}

	return memberships, nil
}

func (s *Store) AcceptedMembers(groupID uint) ([]models.GroupMembership, error) {
	var members []models.GroupMembership

	err := s.db.
		Preload("User").
		Where("group_id = ? AND status = ?", groupID, models.MembershipStatusAccepted).
		Order("created_at").
		Find(&members).Error

	if err != nil {
		return nil, err
	}

	return members, nil
}

func (s *Store) CountGroupAdmins(groupID uint) (int64, error) {
	var count int64

	err := s.db.Model(&models.GroupMembership{}).
		Where("group_id = ? AND role = ? AND status = ?", groupID, models.GroupRoleAdmin, models.MembershipStatusAccepted).
		Count(&count).Error

	return count, err
}

func (s *Store) CountAcceptedMembers(groupID uint) (int64, error) {
	var count int64

	err := s.db.Model(&models.GroupMembership{}).
		Where("group_id = ? AND status = ?", groupID, models.MembershipStatusAccepted).
		Count(&count).Error

	return count, err
}

// GroupNamesFor returns the names of groups where the user is an accepted
// member, for the admin per-user drill-down.
func (s *Store) GroupNamesFor(userID uint) ([]string, error) {
	var names []string

	err := s.db.Model(&models.GroupMembership{}).
		Joins("JOIN groups ON groups.id = group_memberships.group_id").
		Where("group_memberships.user_id = ? AND group_memberships.status = ?", userID, models.MembershipStatusAccepted).
		Pluck("groups.name", &names).Error

	if err != nil {
		return nil, err
	}

	return names, nil
}
