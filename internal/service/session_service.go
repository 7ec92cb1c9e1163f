package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/restapis/internal/auth"
	"github.com/mmynk/restapis/internal/models"
)

// MsgLoggedIn acknowledges a successful login.
const MsgLoggedIn = "User logged in."


// UserLookup fetches a user by id for the authenticated endpoints.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// SessionService implements signup, login and the current-user lookup.
type SessionService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         UserLookup
	logger        *slog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, users UserLookup, logger *slog.Logger) *SessionService {
	return &SessionService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
		logger:        logger,
	}
}

// Signup creates a new user account. The returned view never carries the hash.
func (s *SessionService) Signup(ctx context.Context, req models.SignupRequest) (*models.PublicUser, error) {
	s.logger.Info("Signup request", "user_name", req.UserName)

	if err := validate(&req); err != nil {
		return nil, err
	}

	user, err := s.authenticator.Register(ctx, req.UserName, req.EmailAddress, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameInUse):
			s.logger.Warn("Signup rejected", "user_name", req.UserName, "error", err)
			return nil, ErrUsernameInUse
		case errors.Is(err, auth.ErrPasswordTooLong), errors.Is(err, auth.ErrEmptyPassword):
			return nil, credentialError(err)
		}
		s.logger.Error("Signup failed", "user_name", req.UserName, "error", err)
		return nil, err
	}

	public := user.Public()
	s.logger.Info("User registered successfully", "user_id", user.ID, "user_name", user.UserName)
	return &public, nil
}

// Login verifies credentials and issues a session token.
func (s *SessionService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login request", "user_name", req.UserName)

	if err := validate(&req); err != nil {
		return nil, err
	}

	user, err := s.authenticator.Authenticate(ctx, req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.Warn("Login failed", "user_name", req.UserName)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login failed", "user_name", req.UserName, "error", err)
		return nil, err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, err
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID)
	return &models.LoginResponse{Message: MsgLoggedIn, Token: token}, nil
}

// Me returns the user the session token was issued to.
func (s *SessionService) Me(ctx context.Context, userID string) (*models.PublicUser, error) {
	if userID == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// The account is gone but the token is still valid.
		return nil, ErrUserNotFound
	}

	public := user.Public()
	return &public, nil
}
