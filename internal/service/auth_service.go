package service

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"math/big"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/herbarium/herbarium-backend/internal/models"
	"github.com/herbarium/herbarium-backend/pkg/bcrypt"
	"github.com/herbarium/herbarium-backend/pkg/token"
)

// AuthService owns credential verification, the single-active-session
// registry and the forgot-password code flow.
type AuthService struct {
	users  UserStore
	tokens TokenService
	emails EmailSender
	logger *zap.Logger
}

func NewAuthService(users UserStore, tokens TokenService, emails EmailSender, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		emails: emails,
		logger: logger,
	}
}

// Login verifies the credentials and rotates the user's session token.
// Whatever token the user held before stops working here.
func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(user)
}

// Authenticate checks a bearer token against both its signature/expiry
// and the token currently on file for the user. A cryptographically valid
// token that is not the stored one fails with ErrSessionRevoked.
func (s *AuthService) Authenticate(tokenString string) (*token.Claims, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Token == "" || user.Token != tokenString {
		return nil, ErrSessionRevoked
	}

	return claims, nil
}

// Logout clears the stored token, revoking the session immediately.
func (s *AuthService) Logout(userID uint) error {
	return s.users.ClearToken(userID)
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.UserProfile, error) {
	exists, err := s.users.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		RoleID:   req.RoleID,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	profile := user.Profile()
	return &profile, nil
}

// ChangePassword requires the current password before storing a new one.
func (s *AuthService) ChangePassword(userID uint, req models.ChangePasswordRequest) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.ComparePassword(user.Password, req.CurrentPassword); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(userID, hashedPassword)
}

// RequestPasswordCode issues a fresh 6-digit recovery code and mails it.
// An unknown address and a failed delivery both come back as
// ErrCodeNotSent so the endpoint cannot confirm which emails exist.
func (s *AuthService) RequestPasswordCode(email string) error {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Info("recovery code requested for unknown email")
			return ErrCodeNotSent
		}
		return err
	}

	code, err := generateRecoveryCode()
	if err != nil {
		return err
	}

	if err := s.users.UpdateForgotPasswordCode(user.ID, code); err != nil {
		return err
	}

	if err := s.emails.SendForgotPasswordCode(user.Email, code); err != nil {
		s.logger.Error("recovery code delivery failed",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		return ErrCodeNotSent
	}

	return nil
}

// ValidatePasswordCode consumes the stored code and, on a match, opens a
// session exactly as Login does. A validated code both proves identity
// and logs the user in; the follow-up password reset rides that session.
func (s *AuthService) ValidatePasswordCode(email, code string) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	if user.ForgotPasswordCode == "" ||
		subtle.ConstantTimeCompare([]byte(user.ForgotPasswordCode), []byte(code)) != 1 {
		return nil, ErrInvalidCode
	}

	if err := s.users.ClearForgotPasswordCode(user.ID); err != nil {
		return nil, err
	}

	return s.openSession(user)
}

// ResetPassword stores a new password without a current-password check.
// It is only reachable after ValidatePasswordCode has proven control of
// the mailbox.
func (s *AuthService) ResetPassword(userID uint, newPassword string) error {
	hashedPassword, err := bcrypt.HashPassword(newPassword)
	if err != nil {
		return err
	}

	err = s.users.UpdatePassword(userID, hashedPassword)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *AuthService) openSession(user *models.User) (*models.AuthResponse, error) {
	sessionToken, err := s.tokens.Issue(user.ID, user.RoleID)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateToken(user.ID, sessionToken); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: sessionToken,
		User:  user.Profile(),
	}, nil
}

// generateRecoveryCode returns a uniformly random code in
// [100000, 999999].
func generateRecoveryCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
