package services_test

import (
	"context"
	"testing"

	"github.com/fairsplit/fairsplit/internal/apperrors"
	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/fairsplit/fairsplit/internal/core/services"
	"github.com/fairsplit/fairsplit/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateUserOnlySelf(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)
	name := "Mallory"

	_, err := svc.UpdateUser(ctx, "alice", dto.UpdateUserRequest{Name: &name}, "mallory")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	mockRepo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
}

func TestUpdateUserName(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)
	name := "Alice B."
	stored := &domain.User{UserID: "alice", Name: "Alice", Email: "alice@example.com"}

	mockRepo.On("FindUserByID", ctx, "alice").Return(stored, nil).Once()
	mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "alice" && u.Name == "Alice B." && u.LastUpdatedBy == "alice"
	})).Return(nil).Once()

	updated, err := svc.UpdateUser(ctx, "alice", dto.UpdateUserRequest{Name: &name}, "alice")

	assert.NoError(t, err)
	assert.Equal(t, "Alice B.", updated.Name)
	mockRepo.AssertExpectations(t)
}

func TestDeleteUserOnlySelf(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)

	err := svc.DeleteUser(ctx, "alice", "mallory")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	mockRepo.AssertNotCalled(t, "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteUserSoftDeletes(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)

	mockRepo.On("FindUserByID", ctx, "alice").Return(&domain.User{UserID: "alice"}, nil).Once()
	mockRepo.On("MarkUserDeleted", ctx, "alice", "alice", mock.Anything).Return(nil).Once()

	assert.NoError(t, svc.DeleteUser(ctx, "alice", "alice"))
	mockRepo.AssertExpectations(t)
}

func TestListUsersClampsPaging(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)

	mockRepo.On("ListUsers", ctx, 20, 0).Return([]domain.User{}, nil).Once()

	_, err := svc.ListUsers(ctx, 0, -3)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
