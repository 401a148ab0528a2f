package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/users"
	"github.com/ticketswapper/ticketswapper/services/users/mocks"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
	}
}

func TestGenerateOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().CountOTPRequests(gomock.Any(), "919876543210", gomock.Any()).Return(int64(1), nil)
	mockRepo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, otp *models.OTP) error {
			assert.Equal(t, "919876543210", otp.MSISDN)
			assert.NotEmpty(t, otp.CodeHash)
			assert.True(t, otp.ExpiresAt.After(time.Now()))
			return nil
		})
	mockGW.EXPECT().SendOTP(gomock.Any(), "919876543210", gomock.Any()).Return(nil)

	// Act
	err := uc.GenerateOTP(context.Background(), "9876543210")

	// Assert
	assert.NoError(t, err)
}

func TestGenerateOTP_InvalidMSISDN(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	// Act
	err := uc.GenerateOTP(context.Background(), "12345")

	// Assert
	assert.ErrorIs(t, err, users.ErrInvalidMSISDN)
}

func TestGenerateOTP_RateLimited(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().CountOTPRequests(gomock.Any(), "919876543210", gomock.Any()).Return(int64(6), nil)

	// Act
	err := uc.GenerateOTP(context.Background(), "9876543210")

	// Assert
	assert.ErrorIs(t, err, users.ErrTooManyOTPRequests)
}

func TestGenerateOTP_AtLimitStillAllowed(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	// The counter includes the current request, so the fifth send in the
	// window observes count 5 and is still allowed.
	mockRepo.EXPECT().CountOTPRequests(gomock.Any(), "919876543210", gomock.Any()).Return(int64(otpRateLimit), nil)
	mockRepo.EXPECT().CreateOTP(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().SendOTP(gomock.Any(), "919876543210", gomock.Any()).Return(nil)

	// Act
	err := uc.GenerateOTP(context.Background(), "9876543210")

	// Assert
	assert.NoError(t, err)
}

func TestVerifyOTP_Success_ExistingUser(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	assert.NoError(t, err)

	otp := &models.OTP{
		ID:        uuid.New().String(),
		MSISDN:    "919876543210",
		CodeHash:  string(hash),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	user := &models.User{
		ID:       uuid.New(),
		MSISDN:   "919876543210",
		Role:     "user",
		IsActive: true,
	}

	mockRepo.EXPECT().GetLatestOTP(gomock.Any(), "919876543210").Return(otp, nil)
	mockRepo.EXPECT().MarkOTPVerified(gomock.Any(), otp.ID).Return(nil)
	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), "919876543210").Return(user, nil)

	// Act
	auth, err := uc.VerifyOTP(context.Background(), "9876543210", "123456")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, user.ID.String(), auth.UserID)
	assert.Equal(t, "user", auth.Role)
}

func TestVerifyOTP_Success_NewUserRegistered(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	assert.NoError(t, err)

	otp := &models.OTP{
		ID:        uuid.New().String(),
		MSISDN:    "919876543210",
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	mockRepo.EXPECT().GetLatestOTP(gomock.Any(), "919876543210").Return(otp, nil)
	mockRepo.EXPECT().MarkOTPVerified(gomock.Any(), otp.ID).Return(nil)
	mockRepo.EXPECT().GetUserByMSISDN(gomock.Any(), "919876543210").Return(nil, errors.New("user not found"))
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			assert.Equal(t, "919876543210", u.MSISDN)
			assert.Equal(t, "user", u.Role)
			assert.True(t, u.IsActive)
			return nil
		})
	mockGW.EXPECT().PublishUserRegistered(gomock.Any()).Return(nil)

	// Act
	auth, err := uc.VerifyOTP(context.Background(), "9876543210", "123456")

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	assert.NoError(t, err)

	otp := &models.OTP{
		ID:        uuid.New().String(),
		MSISDN:    "919876543210",
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	mockRepo.EXPECT().GetLatestOTP(gomock.Any(), "919876543210").Return(otp, nil)

	// Act
	auth, err := uc.VerifyOTP(context.Background(), "9876543210", "654321")

	// Assert
	assert.ErrorIs(t, err, users.ErrOTPInvalid)
	assert.Nil(t, auth)
}

func TestVerifyOTP_Expired(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockUserGW(ctrl)
	uc := NewUserUC(mockRepo, mockGW, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	assert.NoError(t, err)

	otp := &models.OTP{
		ID:        uuid.New().String(),
		MSISDN:    "919876543210",
		CodeHash:  string(hash),
		ExpiresAt: time.Now().Add(-1 * time.Minute),
	}

	mockRepo.EXPECT().GetLatestOTP(gomock.Any(), "919876543210").Return(otp, nil)

	// Act
	auth, err := uc.VerifyOTP(context.Background(), "9876543210", "123456")

	// Assert
	assert.ErrorIs(t, err, users.ErrOTPExpired)
	assert.Nil(t, auth)
}
