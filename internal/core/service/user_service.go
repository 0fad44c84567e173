package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/surveykit/questionnaire/internal/core/domain"
	"github.com/surveykit/questionnaire/internal/core/ports"
	"github.com/surveykit/questionnaire/internal/pkg/metrics"
)

type userService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

// NewUserService returns the user factory, superuser promotion and login.
// Tokens are signed with jwtSecret and expire after tokenTTL.
func NewUserService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) ports.UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &userService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// CreateUser normalizes the email, hashes the password and persists a new
// user. An empty email fails with domain.ErrEmailRequired before anything is
// written. An empty password produces an account that cannot log in.
func (s *userService) CreateUser(ctx context.Context, email, password string, extra ports.UserFields) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrEmailRequired
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        domain.NormalizeEmail(email),
		Name:         extra.Name,
		PasswordHash: hash,
		IsActive:     !extra.Inactive,
		IsStaff:      extra.IsStaff,
		IsSuperuser:  extra.IsSuperuser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.WithLabelValues("user").Inc()
	s.log.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

// CreateSuperuser creates a regular user and promotes it to staff and
// superuser in a second save.
func (s *userService) CreateSuperuser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.CreateUser(ctx, email, password, ports.UserFields{})
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.WithLabelValues("superuser").Inc()
	s.log.Info().Int64("user_id", user.ID).Msg("user promoted to superuser")
	return user, nil
}

// CheckPassword reports whether password matches the user's stored hash.
func (s *userService) CheckPassword(user *domain.User, password string) bool {
	if user == nil {
		return false
	}
	return checkPassword(user.PasswordHash, password)
}

// Login verifies the credentials of an active user and returns a signed token.
// Unknown emails, wrong passwords and inactive accounts all yield
// domain.ErrInvalidCredentials.
func (s *userService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.IsActive || !checkPassword(user.PasswordHash, password) {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := s.repo.Update(ctx, user); err != nil {
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to record last login")
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return token, user, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Delete removes the user; storage cascades to their answers and reports.
func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *userService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"role":  user.Role(),
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
