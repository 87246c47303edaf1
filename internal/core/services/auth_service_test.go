package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fairsplit/fairsplit/internal/apperrors"
	"github.com/fairsplit/fairsplit/internal/core/domain"
	portssvc "github.com/fairsplit/fairsplit/internal/core/ports/services"
	"github.com/fairsplit/fairsplit/internal/core/services"
	"github.com/fairsplit/fairsplit/internal/dto"
	"github.com/fairsplit/fairsplit/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	cfg          *config.Config
	service      portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTIssuer:         "fairsplit",
		JWTExpiryDuration: time.Hour,
	}
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.cfg)
}

func (suite *AuthServiceTestSuite) TestRegisterIssuesToken() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "alice@example.com" &&
			u.PasswordHash != "" &&
			u.PasswordHash != "hunter22"
	})).Return(nil).Once()

	resp, err := suite.service.Register(ctx, req)

	suite.NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal("alice@example.com", resp.User.Email)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	suite.NoError(err)
	suite.Equal(resp.User.UserID, claims.Subject)
	suite.Equal("fairsplit", claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsDuplicateEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u1", Email: "alice@example.com"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(existing, nil).Once()

	_, err := suite.service.Register(ctx, dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	suite.Require().NoError(err)
	user := &domain.User{UserID: "u1", Name: "Alice", Email: "alice@example.com", PasswordHash: string(hash)}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "alice@example.com").Return(user, nil)

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: "alice@example.com", Password: "hunter22"})
	suite.NoError(err)
	suite.NotEmpty(resp.Token)

	_, err = suite.service.Login(ctx, dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(ctx, dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	// Unknown account and bad password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
