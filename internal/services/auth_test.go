package services_test

import (
	"context"
	"errors"
	"testing"

	"authflow/internal/models"
	"authflow/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const maxAttempts = 5

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			email:    "alice@example.com",
			password: "pass123",
		},
		{
			name:         "user already exists",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil, nil, maxAttempts, zap.NewNop().Sugar())

			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.email, gomock.Any()).
					Return(tt.writerErr)
			}

			err := svc.Register(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	email := "alice@example.com"
	password := "pass123"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &models.UserDB{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}

	t.Run("successful login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockJWT := services.NewMockJWTGenerator(ctrl)
		mockAttempts := services.NewMockLoginAttemptLimiter(ctrl)
		mockEvents := services.NewMockKafkaWriter(ctrl)

		svc := services.NewAuthService(mockReader, nil, mockJWT, mockAttempts, mockEvents, maxAttempts, zap.NewNop().Sugar())

		mockAttempts.EXPECT().Count(gomock.Any(), email).Return(int64(0), nil)
		mockReader.EXPECT().GetByEmail(gomock.Any(), email).Return(user, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), user.UserID, email).Return("JWT_TOKEN", nil)
		mockAttempts.EXPECT().Reset(gomock.Any(), email).Return(nil)
		mockEvents.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		token, err := svc.Login(context.Background(), email, password)
		assert.NoError(t, err)
		assert.Equal(t, "JWT_TOKEN", token)
	})

	t.Run("wrong password records a failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockJWT := services.NewMockJWTGenerator(ctrl)
		mockAttempts := services.NewMockLoginAttemptLimiter(ctrl)
		mockEvents := services.NewMockKafkaWriter(ctrl)

		svc := services.NewAuthService(mockReader, nil, mockJWT, mockAttempts, mockEvents, maxAttempts, zap.NewNop().Sugar())

		mockAttempts.EXPECT().Count(gomock.Any(), email).Return(int64(1), nil)
		mockReader.EXPECT().GetByEmail(gomock.Any(), email).Return(user, nil)
		mockAttempts.EXPECT().Increment(gomock.Any(), email).Return(int64(2), nil)
		mockEvents.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		token, err := svc.Login(context.Background(), email, "wrongpass")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("unknown email records a failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockAttempts := services.NewMockLoginAttemptLimiter(ctrl)
		mockEvents := services.NewMockKafkaWriter(ctrl)

		svc := services.NewAuthService(mockReader, nil, nil, mockAttempts, mockEvents, maxAttempts, zap.NewNop().Sugar())

		mockAttempts.EXPECT().Count(gomock.Any(), email).Return(int64(0), nil)
		mockReader.EXPECT().GetByEmail(gomock.Any(), email).Return(nil, nil)
		mockAttempts.EXPECT().Increment(gomock.Any(), email).Return(int64(1), nil)
		mockEvents.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		token, err := svc.Login(context.Background(), email, password)
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
		assert.Empty(t, token)
	})

	t.Run("throttled after too many failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockAttempts := services.NewMockLoginAttemptLimiter(ctrl)
		mockEvents := services.NewMockKafkaWriter(ctrl)

		svc := services.NewAuthService(mockReader, nil, nil, mockAttempts, mockEvents, maxAttempts, zap.NewNop().Sugar())

		mockAttempts.EXPECT().Count(gomock.Any(), email).Return(int64(maxAttempts), nil)
		mockEvents.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		token, err := svc.Login(context.Background(), email, password)
		assert.ErrorIs(t, err, services.ErrTooManyAttempts)
		assert.Empty(t, token)
	})

	t.Run("counter read error does not block login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockJWT := services.NewMockJWTGenerator(ctrl)
		mockAttempts := services.NewMockLoginAttemptLimiter(ctrl)

		svc := services.NewAuthService(mockReader, nil, mockJWT, mockAttempts, nil, maxAttempts, zap.NewNop().Sugar())

		mockAttempts.EXPECT().Count(gomock.Any(), email).Return(int64(0), errors.New("redis down"))
		mockReader.EXPECT().GetByEmail(gomock.Any(), email).Return(user, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), user.UserID, email).Return("JWT_TOKEN", nil)
		mockAttempts.EXPECT().Reset(gomock.Any(), email).Return(nil)

		token, err := svc.Login(context.Background(), email, password)
		assert.NoError(t, err)
		assert.Equal(t, "JWT_TOKEN", token)
	})

	t.Run("jwt error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockJWT := services.NewMockJWTGenerator(ctrl)

		svc := services.NewAuthService(mockReader, nil, mockJWT, nil, nil, maxAttempts, zap.NewNop().Sugar())

		mockReader.EXPECT().GetByEmail(gomock.Any(), email).Return(user, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), user.UserID, email).Return("", errors.New("signing error"))

		token, err := svc.Login(context.Background(), email, password)
		assert.EqualError(t, err, "signing error")
		assert.Empty(t, token)
	})

	t.Run("nil limiter and event writer are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReader := services.NewMockUserReader(ctrl)
		mockJWT := services.NewMockJWTGenerator(ctrl)

		svc := services.NewAuthService(mockReader, nil, mockJWT, nil, nil, maxAttempts, zap.NewNop().Sugar())

		mockReader.EXPECT().GetByEmail(gomock.Any(), email).Return(user, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), user.UserID, email).Return("JWT_TOKEN", nil)

		token, err := svc.Login(context.Background(), email, password)
		assert.NoError(t, err)
		assert.Equal(t, "JWT_TOKEN", token)
	})
}

func TestAuthService_Login_EventPublishFailureIsSwallowed(t *testing.T) {
	email := "alice@example.com"
	password := "pass123"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &models.UserDB{UserID: uuid.New(), Email: email, PasswordHash: string(hash)}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockEvents := services.NewMockKafkaWriter(ctrl)

	svc := services.NewAuthService(mockReader, nil, mockJWT, nil, mockEvents, maxAttempts, zap.NewNop().Sugar())

	mockReader.EXPECT().GetByEmail(gomock.Any(), email).Return(user, nil)
	mockJWT.EXPECT().Generate(gomock.Any(), user.UserID, email).Return("JWT_TOKEN", nil)
	mockEvents.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

	token, err := svc.Login(context.Background(), email, password)
	assert.NoError(t, err, "audit publishing must not affect the login result")
	assert.Equal(t, "JWT_TOKEN", token)
}
