package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/bingoboard-dev/bingoboard/internal/authz"
	"github.com/bingoboard-dev/bingoboard/internal/logger"
	"github.com/bingoboard-dev/bingoboard/internal/models"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/bingoboard-dev/bingoboard/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

type InviteRequest struct {
	Identifier string `json:"identifier" binding:"required"` // email or handle
}

type GroupResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatorID uint      `json:"creator_id"`
	CreatedAt time.Time `json:"created_at"`
}

type MembershipResponse struct {
	Group  GroupResponse `json:"group"`
	Role   string        `json:"role"`
	Status string        `json:"status"`
}

type MemberResponse struct {
	User Friend `json:"user"`
	Role string `json:"role"`
}

type GroupsHandler struct {
	store *store.Store
	rules *authz.Rules
}

func NewGroupsHandler(st *store.Store, rules *authz.Rules) *GroupsHandler {
	return &GroupsHandler{store: st, rules: rules}
}

func newGroupResponse(group *models.Group) GroupResponse {
	return GroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		CreatorID: group.CreatorID,
		CreatedAt: group.CreatedAt,
	}
}

// Create makes a group; the creator becomes an accepted admin in the same
// transaction.
func (h *GroupsHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateGroupRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	group := models.Group{
		Name:      req.Name,
		CreatorID: userID,
	}

	if err := h.store.CreateGroup(&group); err != nil {
		logger.Get().Error().Err(err).Msg("failed to create group")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
		return
	}

	ctx.JSON(http.StatusCreated, newGroupResponse(&group))
}

// List returns the caller's memberships, pending invites included.
func (h *GroupsHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	memberships, err := h.store.MembershipsOf(userID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to list memberships")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]MembershipResponse, 0, len(memberships))

	for i := range memberships {
		response = append(response, MembershipResponse{
			Group:  newGroupResponse(&memberships[i].Group),
			Role:   memberships[i].Role,
			Status: memberships[i].Status,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"groups": response})
}

func (h *GroupsHandler) Get(ctx *gin.Context) {
	_, groupID, group, ok := h.requireMember(ctx)

	if !ok {
		return
	}

	members, err := h.store.AcceptedMembers(groupID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to list members")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]MemberResponse, 0, len(members))

	for i := range members {
		response = append(response, MemberResponse{
			User: newFriend(&members[i].User),
			Role: members[i].Role,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"group":   newGroupResponse(group),
		"members": response,
	})
}

// Invite creates a pending membership for a user resolved by email or handle.
// Group admins only.
func (h *GroupsHandler) Invite(ctx *gin.Context) {
	_, groupID, _, ok := h.requireAdmin(ctx)

	if !ok {
		return
	}

	var req InviteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifier is required"})
		return
	}

	target, err := h.store.UserByIdentifier(strings.TrimSpace(req.Identifier))

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to resolve invite target")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if _, err := h.store.Membership(groupID, target.ID); err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "User is already a member or invited"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Get().Error().Err(err).Msg("failed to check membership")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	membership := models.GroupMembership{
		GroupID: groupID,
		UserID:  target.ID,
		Role:    models.GroupRoleMember,
		Status:  models.MembershipStatusPending,
	}

	if err := h.store.CreateMembership(&membership); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "User is already a member or invited"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to create membership")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": membership.ID})
}

// AcceptInvite promotes the caller's own pending membership to accepted.
func (h *GroupsHandler) AcceptInvite(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	groupID, err := utils.ParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.store.Membership(groupID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Invitation not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to fetch membership")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	membership.Status = models.MembershipStatusAccepted

	if err := h.store.SaveMembership(membership); err != nil {
		logger.Get().Error().Err(err).Msg("failed to accept invitation")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": membership.Status})
}

func (h *GroupsHandler) Members(ctx *gin.Context) {
	_, groupID, _, ok := h.requireMember(ctx)

	if !ok {
		return
	}

	members, err := h.store.AcceptedMembers(groupID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to list members")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]MemberResponse, 0, len(members))

	for i := range members {
		response = append(response, MemberResponse{
			User: newFriend(&members[i].User),
			Role: members[i].Role,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"members": response})
}

// Promote raises an accepted member to admin. This is the transfer-adminship
// path that unblocks a sole admin who wants to leave.
func (h *GroupsHandler) Promote(ctx *gin.Context) {
	_, groupID, _, ok := h.requireAdmin(ctx)

	if !ok {
		return
	}

	targetID, err := utils.ParamID(ctx, "userId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.store.Membership(groupID, targetID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to fetch membership")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if membership.Status != models.MembershipStatusAccepted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	membership.Role = models.GroupRoleAdmin

	if err := h.store.SaveMembership(membership); err != nil {
		logger.Get().Error().Err(err).Msg("failed to promote member")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"role": membership.Role})
}

// Leave removes the caller's membership. A sole admin cannot leave while other
// members remain; adminship must be transferred or the group deleted first.
func (h *GroupsHandler) Leave(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	groupID, err := utils.ParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.store.Membership(groupID, userID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Membership not found"})
			return
		}
		logger.Get().Error().Err(err).Msg("failed to fetch membership")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if membership.Role == models.GroupRoleAdmin && membership.Status == models.MembershipStatusAccepted {
		admins, err := h.store.CountGroupAdmins(groupID)

		if err != nil {
			logger.Get().Error().Err(err).Msg("failed to count admins")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		members, err := h.store.CountAcceptedMembers(groupID)

		if err != nil {
			logger.Get().Error().Err(err).Msg("failed to count members")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if admins == 1 && members > 1 {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Transfer adminship or delete the group before leaving"})
			return
		}
	}

	if err := h.store.DeleteMembership(membership); err != nil {
		logger.Get().Error().Err(err).Msg("failed to delete membership")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete removes the group; memberships and comments cascade.
func (h *GroupsHandler) Delete(ctx *gin.Context) {
	_, _, group, ok := h.requireAdmin(ctx)

	if !ok {
		return
	}

	if err := h.store.DeleteGroup(group); err != nil {
		logger.Get().Error().Err(err).Msg("failed to delete group")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// requireMember resolves the group from the path and rejects callers without
// an accepted membership. A non-member gets NotFound for the group itself and
// Forbidden for member-only views, matching the taxonomy in the handlers above.
func (h *GroupsHandler) requireMember(ctx *gin.Context) (uint, uint, *models.Group, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, 0, nil, false
	}

	groupID, err := utils.ParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, 0, nil, false
	}

	group, err := h.store.GroupByID(groupID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return 0, 0, nil, false
		}
		logger.Get().Error().Err(err).Msg("failed to fetch group")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return 0, 0, nil, false
	}

	member, err := h.rules.IsGroupMember(userID, groupID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to check membership")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return 0, 0, nil, false
	}

	if !member {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Group members only"})
		return 0, 0, nil, false
	}

	return userID, groupID, group, true
}

func (h *GroupsHandler) requireAdmin(ctx *gin.Context) (uint, uint, *models.Group, bool) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, 0, nil, false
	}

	groupID, err := utils.ParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, 0, nil, false
	}

	group, err := h.store.GroupByID(groupID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return 0, 0, nil, false
		}
		logger.Get().Error().Err(err).Msg("failed to fetch group")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return 0, 0, nil, false
	}

	admin, err := h.rules.IsGroupAdmin(userID, groupID)

	if err != nil {
		logger.Get().Error().Err(err).Msg("failed to check admin role")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return 0, 0, nil, false
	}

	if !admin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Group admins only"})
		return 0, 0, nil, false
	}

	return userID, groupID, group, true
}
