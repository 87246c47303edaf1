package dto

import (
	"time"

	"github.com/fairsplit/fairsplit/internal/core/domain"
)

// CreateGroupRequest defines the data needed to create a group.
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description"`
}

// AddMemberRequest adds a user to a group.
type AddMemberRequest struct {
	UserID string            `json:"userID" binding:"required"`
	Role   domain.MemberRole `json:"role" binding:"omitempty,oneof=ADMIN MEMBER"`
}

// GroupResponse is the public shape of a group.
type GroupResponse struct {
	GroupID     string `json:"groupID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ToGroupResponse converts a domain.Group to its response DTO.
func ToGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:     g.GroupID,
		Name:        g.Name,
		Description: g.Description,
	}
}

// ListGroupsResponse wraps the list of groups.
type ListGroupsResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// ToListGroupsResponse converts a slice of domain.Group to ListGroupsResponse.
func ToListGroupsResponse(groups []domain.Group) ListGroupsResponse {
	out := make([]GroupResponse, len(groups))
	for i := range groups {
		out[i] = ToGroupResponse(&groups[i])
	}
	return ListGroupsResponse{Groups: out}
}

// MemberResponse is the public shape of a group membership.
type MemberResponse struct {
	UserID   string            `json:"userID"`
	Role     domain.MemberRole `json:"role"`
	JoinedAt time.Time         `json:"joinedAt"`
}

// ToMemberResponses converts membership rows to response DTOs.
func ToMemberResponses(members []domain.GroupMember) []MemberResponse {
	out := make([]MemberResponse, len(members))
	for i, m := range members {
		out[i] = MemberResponse{UserID: m.UserID, Role: m.Role, JoinedAt: m.JoinedAt}
	}
	return out
}
