package handler

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/msp-tools/tenant-console/internal/repositories/sql/user"
)

const sessionDuration = 24 * time.Hour

type AuthHandler struct {
	userRepo user.Repository
	jwtKey   []byte
}

// validatePassword enforces the account password policy
func (a *AuthHandler) validatePassword(password string) error {
	var failedRules []string

	if len(password) < 8 {
		failedRules = append(failedRules, "At least 8 characters")
	}
	if matched, _ := regexp.MatchString(`[A-Z]`, password); !matched {
		failedRules = append(failedRules, "One uppercase letter (A-Z)")
	}
	if matched, _ := regexp.MatchString(`[a-z]`, password); !matched {
		failedRules = append(failedRules, "One lowercase letter (a-z)")
	}
	if matched, _ := regexp.MatchString(`\d`, password); !matched {
		failedRules = append(failedRules, "One number (0-9)")
	}
	if strings.Contains(password, " ") {
		failedRules = append(failedRules, "No spaces allowed")
	}

	if len(failedRules) > 0 {
		return fmt.Errorf("password validation failed: %s", strings.Join(failedRules, ", "))
	}

	return nil
}

// Register creates a console operator account with a bcrypt-hashed password.
func (a *AuthHandler) Register(u *User) error {
	if err := a.validatePassword(u.Password); err != nil {
		log.Error().Msgf("Password validation failed: %v", err)
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Msgf("Failed to hash password: %v", err)
		return err
	}

	record := user.Table{
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		PasswordHash: string(hashedPassword),
		Role:         "operator",
		IsActive:     true,
	}

	if _, err = a.userRepo.CreateUser(&record); err != nil {
		log.Error().Msgf("Failed to register user: %v", err)
		return err
	}

	log.Info().Msgf("User %s registered successfully", u.Email)
	return nil
}

// Login verifies credentials and issues a session JWT.
func (a *AuthHandler) Login(l *Login) (*LoginResponse, error) {
	record, err := a.userRepo.GetUserByEmail(l.Email)
	if err != nil {
		log.Error().Msgf("User not found with email: %s", l.Email)
		return nil, fmt.Errorf("invalid email or password")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(l.Password)); err != nil {
		log.Error().Msg("Password mismatch")
		return nil, fmt.Errorf("invalid email or password")
	}
	if !record.IsActive {
		log.Error().Msgf("User %s is not active", record.Email)
		return nil, fmt.Errorf("user is not active, contact an admin to activate the account")
	}

	expirationTime := time.Now().Add(sessionDuration)
	claims := &Claims{
		Email: record.Email,
		Role:  record.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.jwtKey)
	if err != nil {
		log.Error().Msgf("Failed to generate JWT token: %v", err)
		return nil, fmt.Errorf("failed to generate token")
	}

	log.Info().Msgf("User %s logged in successfully", record.Email)
	return &LoginResponse{
		Email: record.Email,
		Role:  record.Role,
		Token: tokenString,
	}, nil
}
