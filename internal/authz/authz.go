// Package authz holds the friendship-and-visibility rules. Every predicate
// re-derives authorization from current relationship state at request time;
// nothing is cached across requests, so revoking a friendship or membership
// takes effect on the next request.
package authz

import (
	"errors"

	"github.com/bingoboard-dev/bingoboard/internal/models"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"gorm.io/gorm"
)

type Rules struct {
	store *store.Store
}

func New(st *store.Store) *Rules {
	return &Rules{store: st}
}

// IsAcceptedFriend reports whether a friendship row exists for the unordered
// pair {a, b} with status accepted. Symmetric: the result does not depend on
// which column holds which id.
func (r *Rules) IsAcceptedFriend(a, b uint) (bool, error) {
	friendship, err := r.store.FriendshipBetween(a, b)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return friendship.Status == models.FriendshipStatusAccepted, nil
}

// HasAnyFriendship reports whether any row exists for the pair in either
// direction, pending or accepted. Gates re-requests.
func (r *Rules) HasAnyFriendship(a, b uint) (bool, error) {
	_, err := r.store.FriendshipBetween(a, b)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

// CanViewCard allows the owner and accepted friends.
func (r *Rules) CanViewCard(requesterID, ownerID uint) (bool, error) {
	if requesterID == ownerID {
		return true, nil
	}

	return r.IsAcceptedFriend(requesterID, ownerID)
}

// IsGroupMember requires an accepted membership; a pending invite grants
// nothing.
func (r *Rules) IsGroupMember(userID, groupID uint) (bool, error) {
	membership, err := r.store.Membership(groupID, userID)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return membership.Status == models.MembershipStatusAccepted, nil
}

// IsGroupAdmin requires an accepted membership with the admin role.
func (r *Rules) IsGroupAdmin(userID, groupID uint) (bool, error) {
	membership, err := r.store.Membership(groupID, userID)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return membership.Status == models.MembershipStatusAccepted &&
		membership.Role == models.GroupRoleAdmin, nil
}

// FilterComments applies the private-visibility rule after fetch: a private
// comment is kept only when the requester is its author or the card owner.
// Callers must never expose the unfiltered slice.
func FilterComments(comments []models.Comment, requesterID, cardOwnerID uint) []models.Comment {
	visible := make([]models.Comment, 0, len(comments))

	for _, comment := range comments {
		if comment.Private && comment.AuthorID != requesterID && requesterID != cardOwnerID {
			continue
		}
		visible = append(visible, comment)
	}

	return visible
}

// FilterGroupComments is the group-scoped counterpart; the group creator is
// the context owner.
func FilterGroupComments(comments []models.GroupComment, requesterID, creatorID uint) []models.GroupComment {
	visible := make([]models.GroupComment, 0, len(comments))

	for _, comment := range comments {
		if comment.Private && comment.AuthorID != requesterID && requesterID != creatorID {
			continue
		}
		visible = append(visible, comment)
	}

	return visible
}
