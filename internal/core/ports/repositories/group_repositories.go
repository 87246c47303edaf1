package repositories

import (
	"context"

	"github.com/fairsplit/fairsplit/internal/core/domain"
)

// GroupReader defines read operations for group data
type GroupReader interface {
	// FindGroupByID retrieves a group by its unique identifier.
	FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error)

	// ListGroupsForUser retrieves all groups the user is a member of.
	ListGroupsForUser(ctx context.Context, userID string) ([]domain.Group, error)

	// ListMembers retrieves the membership rows of a group.
	ListMembers(ctx context.Context, groupID string) ([]domain.GroupMember, error)

	// FindMembership returns the membership of a user in a group, or
	// apperrors.ErrNotFound if the user is not a member.
	FindMembership(ctx context.Context, groupID string, userID string) (*domain.GroupMember, error)
}

// GroupWriter defines write operations for group data
type GroupWriter interface {
	// SaveGroup inserts or updates a group.
	SaveGroup(ctx context.Context, group domain.Group) error

	// AddMember adds a user to a group.
	AddMember(ctx context.Context, member domain.GroupMember) error

	// RemoveMember removes a user from a group.
	RemoveMember(ctx context.Context, groupID string, userID string) error
}

// GroupRepositoryFacade combines all group repository interfaces.
type GroupRepositoryFacade interface {
	GroupReader
	GroupWriter
}
