package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"authflow/internal/models"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrUserDoesNotExist   = errors.New("email does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email string, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// LoginAttemptLimiter tracks failed login attempts per email.
type LoginAttemptLimiter interface {
	Increment(ctx context.Context, email string) (int64, error) // Records one failure, returns the running count
	Count(ctx context.Context, email string) (int64, error)     // Returns the current failure count
	Reset(ctx context.Context, email string) error              // Clears the counter after a successful login
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuthService handles registration and login. The attempt limiter and the
// event writer are both optional; a nil value disables the corresponding
// feature.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	attempts    LoginAttemptLimiter
	events      KafkaWriter
	maxAttempts int64
	log         *zap.SugaredLogger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	jwt JWTGenerator,
	attempts LoginAttemptLimiter,
	events KafkaWriter,
	maxAttempts int64,
	log *zap.SugaredLogger,
) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		attempts:    attempts,
		events:      events,
		maxAttempts: maxAttempts,
		log:         log,
	}
}

// Register registers a new user.
func (svc *AuthService) Register(ctx context.Context, email, password string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		svc.log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		svc.log.Errorw("user already exists", "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		svc.log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, email, string(hashedPassword)); err != nil {
		svc.log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if svc.attempts != nil {
		count, err := svc.attempts.Count(ctx, email)
		if err != nil {
			// Throttling is best-effort: a broken counter must not lock
			// everyone out.
			svc.log.Errorw("failed to read login attempts", "email", email, "err", err)
		} else if count >= svc.maxAttempts {
			svc.log.Errorw("too many failed login attempts", "email", email, "count", count)
			svc.publishLoginEvent(ctx, email, false)
			return "", ErrTooManyAttempts
		}
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		svc.log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		svc.log.Errorw("user does not exist", "email", email)
		svc.recordFailure(ctx, email)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		svc.log.Errorw("invalid credentials", "email", email)
		svc.recordFailure(ctx, email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		svc.log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	if svc.attempts != nil {
		if err := svc.attempts.Reset(ctx, email); err != nil {
			svc.log.Errorw("failed to reset login attempts", "email", email, "err", err)
		}
	}
	svc.publishLoginEvent(ctx, email, true)

	return token, nil
}

// recordFailure bumps the attempt counter and publishes an audit event.
func (svc *AuthService) recordFailure(ctx context.Context, email string) {
	if svc.attempts != nil {
		if _, err := svc.attempts.Increment(ctx, email); err != nil {
			svc.log.Errorw("failed to record login attempt", "email", email, "err", err)
		}
	}
	svc.publishLoginEvent(ctx, email, false)
}

// publishLoginEvent publishes a login audit event to Kafka.
func (svc *AuthService) publishLoginEvent(ctx context.Context, email string, success bool) {
	if svc.events == nil {
		return
	}

	event := models.LoginEvent{
		EventID:   uuid.NewString(),
		Email:     email,
		Success:   success,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		svc.log.Errorw("failed to marshal login event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.events.WriteMessages(ctx, msg); err != nil {
		svc.log.Errorw("failed to publish login event", "event_id", event.EventID, "error", err)
	} else {
		svc.log.Infow("login event published", "event_id", event.EventID, "success", success)
	}
}
