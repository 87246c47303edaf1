package services

import (
	"context"

	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/fairsplit/fairsplit/internal/dto"
)

// GroupAuthorizerSvc verifies group membership before group-scoped operations.
type GroupAuthorizerSvc interface {
	// AuthorizeMember returns nil if the user belongs to the group,
	// apperrors.ErrForbidden if not, apperrors.ErrNotFound if the group
	// does not exist.
	AuthorizeMember(ctx context.Context, groupID string, userID string) error
}

// GroupSvcFacade exposes group lifecycle and membership operations.
type GroupSvcFacade interface {
	GroupAuthorizerSvc

	// CreateGroup creates a group with the creator as its first admin member.
	CreateGroup(ctx context.Context, req dto.CreateGroupRequest, creatorUserID string) (*domain.Group, error)

	// GetGroupByID retrieves a group the user belongs to.
	GetGroupByID(ctx context.Context, groupID string, userID string) (*domain.Group, error)

	// ListGroupsForUser retrieves all groups the user belongs to.
	ListGroupsForUser(ctx context.Context, userID string) ([]domain.Group, error)

	// AddMember adds a user to the group; only admins may do this.
	AddMember(ctx context.Context, groupID string, req dto.AddMemberRequest, actorUserID string) error

	// RemoveMember removes a user from the group; only admins may do this.
	RemoveMember(ctx context.Context, groupID string, memberUserID string, actorUserID string) error

	// ListMembers retrieves the group's membership.
	ListMembers(ctx context.Context, groupID string, userID string) ([]domain.GroupMember, error)
}
