package services

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"storefront-backend/internal/models"
	"storefront-backend/internal/utils"
)

// AuthService handles admin authentication
type AuthService struct {
	db            *sql.DB
	jwtSecret     string
	jwtExpiration time.Duration

	// In-memory blacklist for logged-out tokens
	blacklistedTokens map[string]time.Time
	blacklistMutex    sync.RWMutex
}

// NewAuthService creates a new auth service
func NewAuthService(db *sql.DB, jwtSecret string, jwtExpirationSeconds int) *AuthService {
	return &AuthService{
		db:                db,
		jwtSecret:         jwtSecret,
		jwtExpiration:     time.Duration(jwtExpirationSeconds) * time.Second,
		blacklistedTokens: make(map[string]time.Time),
	}
}

// JWTClaims represents JWT token claims
type JWTClaims struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// Login verifies admin credentials and returns a signed token
func (s *AuthService) Login(email, password string) (string, *models.AdminUser, error) {
	email = utils.NormalizeEmail(email)

	var admin models.AdminUser
	err := s.db.QueryRow(
		"SELECT id, email, password_hash, created_at FROM admin_users WHERE email = ?",
		email,
	).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if err == sql.ErrNoRows {
		return "", nil, fmt.Errorf("invalid email or password")
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid email or password")
	}

	token, err := s.GenerateToken(&admin)
	if err != nil {
		return "", nil, err
	}
	return token, &admin, nil
}

// GenerateToken generates a JWT token for an admin user
func (s *AuthService) GenerateToken(admin *models.AdminUser) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "storefront",
			Subject:   admin.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the claims
func (s *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	if s.IsTokenBlacklisted(tokenString) {
		return nil, fmt.Errorf("token has been revoked")
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// BlacklistToken marks a token as revoked until its natural expiry
func (s *AuthService) BlacklistToken(tokenString string) {
	s.blacklistMutex.Lock()
	defer s.blacklistMutex.Unlock()
	s.blacklistedTokens[tokenString] = time.Now().Add(s.jwtExpiration)

	// Drop entries past their expiry while we hold the lock
	now := time.Now()
	for token, expiry := range s.blacklistedTokens {
		if now.After(expiry) {
			delete(s.blacklistedTokens, token)
		}
	}
}

// IsTokenBlacklisted checks whether a token has been revoked
func (s *AuthService) IsTokenBlacklisted(tokenString string) bool {
	s.blacklistMutex.RLock()
	defer s.blacklistMutex.RUnlock()
	expiry, exists := s.blacklistedTokens[tokenString]
	return exists && time.Now().Before(expiry)
}
