package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fairsplit/fairsplit/internal/apperrors"
	"github.com/fairsplit/fairsplit/internal/core/domain"
	portsrepo "github.com/fairsplit/fairsplit/internal/core/ports/repositories"
	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/dto"
	"github.com/google/uuid"
)

// groupService manages groups and their membership.
type groupService struct {
	groupRepo portsrepo.GroupRepositoryFacade
	userRepo  portsrepo.UserReader
}

// NewGroupService creates a new GroupSvcFacade.
func NewGroupService(groupRepo portsrepo.GroupRepositoryFacade, userRepo portsrepo.UserReader) portssvc.GroupSvcFacade {
	return &groupService{groupRepo: groupRepo, userRepo: userRepo}
}

var _ portssvc.GroupSvcFacade = (*groupService)(nil)

// AuthorizeMember returns nil when the user belongs to the group.
func (s *groupService) AuthorizeMember(ctx context.Context, groupID string, userID string) error {
	_, err := s.groupRepo.FindMembership(ctx, groupID, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	// Distinguish an unknown group from a non-member.
	if _, gerr := s.groupRepo.FindGroupByID(ctx, groupID); gerr != nil {
		return gerr
	}
	return fmt.Errorf("%w: user %s is not a member of group %s", apperrors.ErrForbidden, userID, groupID)
}

// authorizeAdmin returns nil when the user is an admin of the group.
func (s *groupService) authorizeAdmin(ctx context.Context, groupID string, userID string) error {
	membership, err := s.groupRepo.FindMembership(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if _, gerr := s.groupRepo.FindGroupByID(ctx, groupID); gerr != nil {
				return gerr
			}
			return fmt.Errorf("%w: user %s is not a member of group %s", apperrors.ErrForbidden, userID, groupID)
		}
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if membership.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: admin role required", apperrors.ErrForbidden)
	}
	return nil
}

// CreateGroup creates a group with the creator as its first admin member.
func (s *groupService) CreateGroup(ctx context.Context, req dto.CreateGroupRequest, creatorUserID string) (*domain.Group, error) {
	now := time.Now().UTC()
	group := domain.Group{
		GroupID:     uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.groupRepo.SaveGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to save group: %w", err)
	}
	member := domain.GroupMember{
		GroupID:  group.GroupID,
		UserID:   creatorUserID,
		Role:     domain.RoleAdmin,
		JoinedAt: now,
	}
	if err := s.groupRepo.AddMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to add creator to group: %w", err)
	}
	return &group, nil
}

// GetGroupByID retrieves a group the user belongs to.
func (s *groupService) GetGroupByID(ctx context.Context, groupID string, userID string) (*domain.Group, error) {
	if err := s.AuthorizeMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	return s.groupRepo.FindGroupByID(ctx, groupID)
}

// ListGroupsForUser retrieves all groups the user belongs to.
func (s *groupService) ListGroupsForUser(ctx context.Context, userID string) ([]domain.Group, error) {
	return s.groupRepo.ListGroupsForUser(ctx, userID)
}

// AddMember adds a user to the group; only admins may do this.
func (s *groupService) AddMember(ctx context.Context, groupID string, req dto.AddMemberRequest, actorUserID string) error {
	if err := s.authorizeAdmin(ctx, groupID, actorUserID); err != nil {
		return err
	}
	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		return err
	}
	if _, err := s.groupRepo.FindMembership(ctx, groupID, req.UserID); err == nil {
		return fmt.Errorf("%w: user %s is already a member", apperrors.ErrDuplicate, req.UserID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check membership: %w", err)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleMember
	}
	return s.groupRepo.AddMember(ctx, domain.GroupMember{
		GroupID:  groupID,
		UserID:   req.UserID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	})
}

// RemoveMember removes a user from the group; admins may remove anyone,
// members may remove themselves.
func (s *groupService) RemoveMember(ctx context.Context, groupID string, memberUserID string, actorUserID string) error {
	if actorUserID != memberUserID {
		if err := s.authorizeAdmin(ctx, groupID, actorUserID); err != nil {
			return err
		}
	} else if err := s.AuthorizeMember(ctx, groupID, actorUserID); err != nil {
		return err
	}
	return s.groupRepo.RemoveMember(ctx, groupID, memberUserID)
}

// ListMembers retrieves the group's membership.
func (s *groupService) ListMembers(ctx context.Context, groupID string, userID string) ([]domain.GroupMember, error) {
	if err := s.AuthorizeMember(ctx, groupID, userID); err != nil {
		return nil, err
	}
	return s.groupRepo.ListMembers(ctx, groupID)
}
