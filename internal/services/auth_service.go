package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/atakanyildirim/taskdeck/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be at least 6 characters long")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrGoogleIDConflict   = errors.New("account is already linked to a different Google identity")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// GoogleProfile is the subset of the Google userinfo response the account
// flow needs.
type GoogleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates a password-credentialed account. Emails are
// case-normalized before both the uniqueness check and the insert.
func (s *AuthService) Register(email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hashStr := string(hash)
	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: &hashStr,
		AuthProvider: "password",
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Login verifies a password credential. A missing account, an account
// without a password, and a wrong password all return the same error so
// callers cannot enumerate accounts.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	email = normalizeEmail(email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.HasPassword() {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// SignInGoogle finds or creates the account for a verified Google profile.
// A fresh email gets an OAuth-only account with no password credential; an
// existing unlinked account gets the Google identity attached; an account
// already linked to a different Google identity is a conflict.
func (s *AuthService) SignInGoogle(profile GoogleProfile) (*models.User, error) {
	email := normalizeEmail(profile.Email)
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}

		user = models.User{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: nil,
			GoogleID:     &profile.ID,
			Name:         profile.Name,
			Picture:      profile.Picture,
			AuthProvider: "google",
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return &user, nil
	}

	if user.GoogleID == nil {
		updates := map[string]interface{}{"google_id": profile.ID}
		if user.Name == "" && profile.Name != "" {
			updates["name"] = profile.Name
		}
		if user.Picture == "" && profile.Picture != "" {
			updates["picture"] = profile.Picture
		}
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to link Google account: %w", err)
		}
		user.GoogleID = &profile.ID
		return &user, nil
	}

	if *user.GoogleID != profile.ID {
		return nil, ErrGoogleIDConflict
	}

	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
