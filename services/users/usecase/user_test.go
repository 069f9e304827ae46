package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/churchpool/churchpool/internal/pkg/jwt"
	"github.com/churchpool/churchpool/internal/pkg/models"
	"github.com/churchpool/churchpool/services/users/mocks"
)

func authTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "churchpool-test",
		},
	}
}

func setupUserUCTest(t *testing.T) (*UserUC, *mocks.MockUserRepo, func()) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(authTestConfig(), mockRepo)

	return uc, mockRepo, ctrl.Finish
}

func TestRegister_Success(t *testing.T) {
	uc, mockRepo, finish := setupUserUCTest(t)
	defer finish()

	churchID := uuid.New()

	mockRepo.EXPECT().
		GetChurchByID(gomock.Any(), churchID.String()).
		Return(&models.Church{ID: churchID, Name: "Grace Community"}, nil)
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, "anna@example.org", user.Email)
			assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2hunter2")))
			assert.True(t, user.IsActive)
			return nil
		})

	auth, err := uc.Register(context.Background(), models.RegisterRequest{
		Email:    " Anna@Example.org ",
		FullName: "Anna Passenger",
		Password: "hunter2hunter2",
		Role:     models.RolePassenger,
		ChurchID: churchID.String(),
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, auth.Token)

	claims, err := jwtpkg.ValidateToken(auth.Token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, models.RolePassenger, (*claims)["role"])
}

func TestRegister_EmailTaken(t *testing.T) {
	uc, mockRepo, finish := setupUserUCTest(t)
	defer finish()

	churchID := uuid.New()

	mockRepo.EXPECT().
		GetChurchByID(gomock.Any(), churchID.String()).
		Return(&models.Church{ID: churchID}, nil)
	mockRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.ErrEmailTaken)

	auth, err := uc.Register(context.Background(), models.RegisterRequest{
		Email:    "taken@example.org",
		FullName: "Anna Passenger",
		Password: "hunter2hunter2",
		Role:     models.RolePassenger,
		ChurchID: churchID.String(),
	})

	assert.ErrorIs(t, err, models.ErrEmailTaken)
	assert.Nil(t, auth)
}

func TestRegister_InvalidRole(t *testing.T) {
	uc, _, finish := setupUserUCTest(t)
	defer finish()

	auth, err := uc.Register(context.Background(), models.RegisterRequest{
		Email:    "anna@example.org",
		FullName: "Anna Passenger",
		Password: "hunter2hunter2",
		Role:     "admin",
		ChurchID: uuid.New().String(),
	})

	assert.Error(t, err)
	assert.Nil(t, auth)
}

func TestLogin_Success(t *testing.T) {
	uc, mockRepo, finish := setupUserUCTest(t)
	defer finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "anna@example.org",
		FullName:     "Anna Passenger",
		PasswordHash: string(hash),
		Role:         models.RolePassenger,
		IsActive:     true,
	}

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "anna@example.org").
		Return(user, nil)

	auth, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "Anna@Example.org",
		Password: "hunter2hunter2",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, user.ID, auth.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, mockRepo, finish := setupUserUCTest(t)
	defer finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "anna@example.org").
		Return(&models.User{PasswordHash: string(hash), IsActive: true}, nil)

	auth, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "anna@example.org",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Nil(t, auth)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, mockRepo, finish := setupUserUCTest(t)
	defer finish()

	mockRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "ghost@example.org").
		Return(nil, models.ErrUserNotFound)

	auth, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "ghost@example.org",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	assert.Nil(t, auth)
}

func TestGetProfile_AttachesVehicle(t *testing.T) {
	uc, mockRepo, finish := setupUserUCTest(t)
	defer finish()

	userID := uuid.New()
	vehicle := &models.Vehicle{UserID: userID, Model: "Toyota Avanza", Plate: "B 1234 XY", Seats: 6}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID.String()).
		Return(&models.User{ID: userID, Role: models.RoleDriver}, nil)
	mockRepo.EXPECT().
		GetVehicle(gomock.Any(), userID.String()).
		Return(vehicle, nil)

	user, err := uc.GetProfile(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, vehicle, user.Vehicle)
}

func TestRegisterVehicle_PassengerRejected(t *testing.T) {
	uc, mockRepo, finish := setupUserUCTest(t)
	defer finish()

	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID.String()).
		Return(&models.User{ID: userID, Role: models.RolePassenger}, nil)

	vehicle, err := uc.RegisterVehicle(context.Background(), userID, models.VehicleRequest{
		Model: "Toyota Avanza",
		Plate: "B 1234 XY",
		Seats: 6,
	})

	assert.Error(t, err)
	assert.Nil(t, vehicle)
}

func TestRegisterVehicle_Success(t *testing.T) {
	uc, mockRepo, finish := setupUserUCTest(t)
	defer finish()

	userID := uuid.New()

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID.String()).
		Return(&models.User{ID: userID, Role: models.RoleDriver}, nil)
	mockRepo.EXPECT().
		UpsertVehicle(gomock.Any(), &models.Vehicle{
			UserID: userID,
			Model:  "Toyota Avanza",
			Plate:  "B 1234 XY",
			Seats:  6,
		}).
		Return(nil)

	vehicle, err := uc.RegisterVehicle(context.Background(), userID, models.VehicleRequest{
		Model: "Toyota Avanza",
		Plate: "B 1234 XY",
		Seats: 6,
	})

	assert.NoError(t, err)
	assert.Equal(t, 6, vehicle.Seats)
}
