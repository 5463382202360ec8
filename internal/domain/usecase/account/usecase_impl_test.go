package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"weather-favorites/internal/domain/entity"
	"weather-favorites/internal/mocks"
	"weather-favorites/pkg/apperr"
)

type AccountUseCaseTestSuite struct {
	suite.Suite
	users     *mocks.MockUserGateway
	publisher *mocks.MockEventPublisher
	useCase   UseCase
	ctx       context.Context
}

func (s *AccountUseCaseTestSuite) SetupTest() {
	s.users = mocks.NewMockUserGateway(s.T())
	s.publisher = mocks.NewMockEventPublisher(s.T())
	s.useCase = NewAccountUseCase(s.users, s.publisher)
	s.ctx = context.Background()
}

func eventOf(eventType entity.AccountEventType) interface{} {
	return mock.MatchedBy(func(event entity.AccountEvent) bool {
		return event.Type == eventType && event.ID != ""
	})
}

func storedUser(password string) *entity.User {
	salt := "0011223344556677"
	return &entity.User{ID: "u-1", Username: "alice", Salt: salt, PasswordHash: hashPassword(salt, password)}
}

func (s *AccountUseCaseTestSuite) TestCreateUserHashesWithSalt() {
	var created entity.User
	s.users.On("Create", mock.Anything, mock.AnythingOfType("entity.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(entity.User) }).
		Return(&entity.User{ID: "u-1", Username: "alice"}, nil)
	s.publisher.On("Publish", mock.Anything, eventOf(entity.UserCreated)).Return(nil)

	err := s.useCase.CreateUser(s.ctx, "alice", "pw123")

	s.Require().NoError(err)
	s.Len(created.Salt, 32)
	s.Equal(hashPassword(created.Salt, "pw123"), created.PasswordHash)
	s.NotEqual("pw123", created.PasswordHash)
	s.NotEmpty(created.ID)
}

func (s *AccountUseCaseTestSuite) TestCreateUserValidation() {
	s.ErrorIs(s.useCase.CreateUser(s.ctx, "", "pw"), apperr.ErrInvalidArgument)
	s.ErrorIs(s.useCase.CreateUser(s.ctx, "alice", ""), apperr.ErrInvalidArgument)
}

func (s *AccountUseCaseTestSuite) TestCreateUserDuplicate() {
	s.users.On("Create", mock.Anything, mock.Anything).Return(nil, apperr.AlreadyExists("User alice already exists."))

	err := s.useCase.CreateUser(s.ctx, "alice", "pw123")

	s.ErrorIs(err, apperr.ErrAlreadyExists)
	s.publisher.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}

func (s *AccountUseCaseTestSuite) TestCreateUserSurvivesPublishFailure() {
	s.users.On("Create", mock.Anything, mock.Anything).Return(&entity.User{ID: "u-1"}, nil)
	s.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("queue down"))

	s.NoError(s.useCase.CreateUser(s.ctx, "alice", "pw123"))
}

func (s *AccountUseCaseTestSuite) TestLogin() {
	s.users.On("FindByUsername", mock.Anything, "alice").Return(storedUser("pw123"), nil)

	result, err := s.useCase.Login(s.ctx, "alice", "pw123")
	s.Require().NoError(err)
	s.True(result.Success)
	s.Equal("Login Successful!", result.Message)
	s.Equal("u-1", result.UserID)

	result, err = s.useCase.Login(s.ctx, "alice", "wrong")
	s.Require().NoError(err)
	s.False(result.Success)
	s.Equal("Sorry, incorrect username or password", result.Message)
	s.Empty(result.UserID)
}

func (s *AccountUseCaseTestSuite) TestLoginUnknownOrDeleted() {
	deleted := storedUser("pw123")
	deleted.Deleted = true
	s.users.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)
	s.users.On("FindByUsername", mock.Anything, "bob").Return(deleted, nil)

	_, err := s.useCase.Login(s.ctx, "ghost", "pw")
	s.ErrorIs(err, apperr.ErrNotFound)
	s.Equal("User ghost not found.", err.Error())

	_, err = s.useCase.Login(s.ctx, "bob", "pw123")
	s.ErrorIs(err, apperr.ErrNotFound)
}

func (s *AccountUseCaseTestSuite) TestRemoveUser() {
	s.users.On("FindByUsername", mock.Anything, "alice").Return(storedUser("pw"), nil)
	s.users.On("SoftDelete", mock.Anything, "alice").Return(true, nil)
	s.publisher.On("Publish", mock.Anything, eventOf(entity.UserRemoved)).Return(nil)

	s.NoError(s.useCase.RemoveUser(s.ctx, "alice"))
}

func (s *AccountUseCaseTestSuite) TestRemoveUserRace() {
	s.users.On("FindByUsername", mock.Anything, "alice").Return(storedUser("pw"), nil)
	s.users.On("SoftDelete", mock.Anything, "alice").Return(false, nil)

	s.ErrorIs(s.useCase.RemoveUser(s.ctx, "alice"), apperr.ErrNotFound)
}

func (s *AccountUseCaseTestSuite) TestChangePassword() {
	s.users.On("FindByUsername", mock.Anything, "alice").Return(storedUser("old"), nil)
	s.users.On("UpdatePassword", mock.Anything, "alice", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			s.Equal(hashPassword(args.String(3), "new"), args.String(2))
		}).
		Return(true, nil)
	s.publisher.On("Publish", mock.Anything, eventOf(entity.UserPasswordChanged)).Return(nil)

	s.NoError(s.useCase.ChangePassword(s.ctx, "alice", "new"))
}

func (s *AccountUseCaseTestSuite) TestChangePasswordUnknownUser() {
	s.users.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

	s.ErrorIs(s.useCase.ChangePassword(s.ctx, "ghost", "new"), apperr.ErrNotFound)
}

func (s *AccountUseCaseTestSuite) TestPurgeDeleted() {
	cutoff := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	s.users.On("PurgeDeleted", mock.Anything, cutoff).Return(int64(4), nil)

	purged, err := s.useCase.PurgeDeleted(s.ctx, cutoff)

	s.Require().NoError(err)
	s.EqualValues(4, purged)
}

func TestAccountUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(AccountUseCaseTestSuite))
}

func TestPasswordMatches(t *testing.T) {
	salt, err := newSalt()
	if err != nil {
		t.Fatal(err)
	}
	other, _ := newSalt()

	if !passwordMatches(salt, "pw123", hashPassword(salt, "pw123")) {
		t.Fatal("expected match")
	}
	if passwordMatches(other, "pw123", hashPassword(salt, "pw123")) {
		t.Fatal("different salt must not match")
	}
}
