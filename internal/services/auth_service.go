package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yashrajoria/shop-service/internal/apperrors"
	"github.com/yashrajoria/shop-service/internal/models"
	"github.com/yashrajoria/shop-service/internal/repository"
	"github.com/yashrajoria/shop-service/internal/session"
)

const (
	msgUsernameTaken    = "Username already registered"
	msgBadCredentials   = "Incorrect username or password"
	msgNotAuthenticated = "Not authenticated"
	msgPasswordTooLong  = "Password is too long"
)

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token string
	User  models.UserResponse
}

// AuthService handles accounts and sessions.
type AuthService interface {
	Register(ctx context.Context, req models.CredentialsRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req models.CredentialsRequest) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*session.Session, error)
	Me(ctx context.Context, userID uint) (*models.UserResponse, error)
}

type authService struct {
	users    repository.UserRepository
	sessions session.Store
	cost     int
	logger   *zap.Logger

	// dummyHash is compared against when the username is unknown so both
	// login failures cost one bcrypt comparison.
	dummyHash []byte
}

// NewAuthService hashes passwords with bcrypt at cost. A cost outside
// bcrypt's range falls back to bcrypt.DefaultCost.
func NewAuthService(users repository.UserRepository, sessions session.Store, cost int, logger *zap.Logger) AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("shop-service-dummy-password"), cost)
	if err != nil {
		// Only reachable with an invalid cost, which is ruled out above.
		panic(fmt.Sprintf("bcrypt dummy hash: %v", err))
	}
	return &authService{users: users, sessions: sessions, cost: cost, logger: logger, dummyHash: dummyHash}
}

func (s *authService) Register(ctx context.Context, req models.CredentialsRequest) (*models.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperrors.BadRequest(msgPasswordTooLong)
	}
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("hash password: %w", err))
	}

	user := &models.User{Username: req.Username, PasswordHash: string(hash)}
	err = s.users.Transaction(ctx, func(tx repository.UserRepository) error {
		_, err := tx.FindByUsername(ctx, req.Username)
		if err == nil {
			return apperrors.BadRequest(msgUsernameTaken)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(ctx, user)
	})
	if err != nil {
		if apperrors.Is(err, http.StatusBadRequest) {
			return nil, err
		}
		// A concurrent registration can still trip the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.BadRequest(msgUsernameTaken)
		}
		s.logger.Error("failed to register user", zap.String("username", req.Username), zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("user registered", zap.Uint("user_id", user.ID))
	resp := user.Response()
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req models.CredentialsRequest) (*LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		return nil, apperrors.BadRequest(msgBadCredentials)
	}
	if err != nil {
		s.logger.Error("failed to load user", zap.String("username", req.Username), zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.BadRequest(msgBadCredentials)
	}

	token, err := s.sessions.Create(ctx, user.ID, user.Username)
	if err != nil {
		s.logger.Error("failed to create session", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("user logged in", zap.Uint("user_id", user.ID))
	return &LoginResult{Token: token, User: user.Response()}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("failed to delete session", zap.Error(err))
		return apperrors.Internal(err)
	}
	return nil
}

// Authenticate resolves token to a live session, or 403.
func (s *authService) Authenticate(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, apperrors.Forbidden(msgNotAuthenticated)
	}
	sess, err := s.sessions.Get(ctx, token)
	if errors.Is(err, session.ErrSessionNotFound) {
		return nil, apperrors.Forbidden(msgNotAuthenticated)
	}
	if err != nil {
		s.logger.Error("failed to load session", zap.Error(err))
		return nil, apperrors.Internal(err)
	}
	return sess, nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*models.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Forbidden(msgNotAuthenticated)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	resp := user.Response()
	return &resp, nil
}
