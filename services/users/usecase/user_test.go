package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/users"
	"github.com/ticketswapper/ticketswapper/services/users/mocks"
)

func TestGetUserByID_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	user := &models.User{
		ID:       uuid.New(),
		MSISDN:   "919876543210",
		FullName: "Priya Sharma",
	}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID.String()).Return(user, nil)

	// Act
	got, err := uc.GetUserByID(context.Background(), user.ID.String())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestGetUserByID_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("user not found"))

	// Act
	got, err := uc.GetUserByID(context.Background(), uuid.New().String())

	// Assert
	assert.ErrorIs(t, err, users.ErrUserNotFound)
	assert.Nil(t, got)
}

func TestUpdateProfile_EmailChangeTriggersConfirmation(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	user := &models.User{
		ID:             uuid.New(),
		MSISDN:         "919876543210",
		FullName:       "Priya Sharma",
		Email:          "old@example.com",
		EmailConfirmed: true,
	}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID.String()).Return(user, nil)
	mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			assert.Equal(t, "new@example.com", u.Email)
			assert.False(t, u.EmailConfirmed)
			return nil
		})
	mockRepo.EXPECT().StoreEmailToken(gomock.Any(), user.ID.String(), gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().SendEmailConfirmation(gomock.Any(), "new@example.com", gomock.Any()).Return(nil)

	// Act
	got, err := uc.UpdateProfile(context.Background(), user.ID.String(), &models.UpdateProfileRequest{
		FullName: "Priya Sharma",
		Email:    "new@example.com",
	})

	// Assert
	assert.NoError(t, err)
	assert.False(t, got.EmailConfirmed)
}

func TestUpdateProfile_SameEmailSkipsConfirmation(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	user := &models.User{
		ID:             uuid.New(),
		MSISDN:         "919876543210",
		FullName:       "Priya Sharma",
		Email:          "priya@example.com",
		EmailConfirmed: true,
	}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID.String()).Return(user, nil)
	mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	got, err := uc.UpdateProfile(context.Background(), user.ID.String(), &models.UpdateProfileRequest{
		FullName: "Priya S Sharma",
		Email:    "priya@example.com",
	})

	// Assert
	assert.NoError(t, err)
	assert.True(t, got.EmailConfirmed)
	assert.Equal(t, "Priya S Sharma", got.FullName)
}

func TestUpdateProfile_InvalidEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	// Act
	got, err := uc.UpdateProfile(context.Background(), uuid.New().String(), &models.UpdateProfileRequest{
		FullName: "Priya Sharma",
		Email:    "not-an-email",
	})

	// Assert
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestConfirmEmail_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	userID := uuid.New().String()

	mockRepo.EXPECT().ResolveEmailToken(gomock.Any(), "token-abc").Return(userID, nil)
	mockRepo.EXPECT().SetEmailConfirmed(gomock.Any(), userID).Return(nil)
	mockRepo.EXPECT().DeleteEmailToken(gomock.Any(), "token-abc").Return(nil)

	// Act
	err := uc.ConfirmEmail(context.Background(), "token-abc")

	// Assert
	assert.NoError(t, err)
}

func TestConfirmEmail_InvalidToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().ResolveEmailToken(gomock.Any(), "bad-token").Return("", errors.New("redis: nil"))

	// Act
	err := uc.ConfirmEmail(context.Background(), "bad-token")

	// Assert
	assert.ErrorIs(t, err, users.ErrEmailTokenInvalid)
}
