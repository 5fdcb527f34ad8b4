package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/infrastructure/config"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/pkg/logger"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/utils"
)

// InterfaceJWTService defines the authentication service.
type InterfaceJWTService interface {
	GenerateToken(userID, tokenID string) (string, error)
	ParseClaims(tokenString string) (*TokenClaims, error)
	Authenticate(tokenString string) (*Caller, *models.AuthToken, error)
	Login(email, password, userAgent, remoteAddr string) (*LoginResult, error)
	Logout(tokenID string) error
}

// TokenClaims is the JWT payload: the session row id, the user id and the
// registered expiry.
type TokenClaims struct {
	TokenID string `json:"token_id"`
	UserID  string `json:"user_id"`
	jwt.RegisteredClaims
}

// LoginResult is returned to a successfully signed-in client.
type LoginResult struct {
	Token       string                `json:"token"`
	UserID      string                `json:"user_id"`
	EntityID    string                `json:"entity_id"`
	EntityType  models.UserEntityType `json:"entity_type"`
	Role        models.RoleType       `json:"role"`
	CommunityID *string               `json:"community_id,omitempty"`
	Email       string                `json:"email"`
}

// JWTService issues and validates session tokens. Sessions live in the
// auth_tokens table; the JWT only carries enough to find the row.
type JWTService struct {
	secretKey  string
	issuer     string
	expiryDays int
	DB         *gorm.DB
}

// NewJWTService creates a new authentication service.
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey:  cfg.JWTSecretKey,
		issuer:     "mycondominium-backend",
		expiryDays: cfg.JWTExpiryDays,
		DB:         db,
	}
}

// GenerateToken signs a JWT for an auth-token row.
func (s *JWTService) GenerateToken(userID, tokenID string) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		TokenID: tokenID,
		UserID:  userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expiryDays) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ParseClaims verifies the signature and expiry and returns the claims.
func (s *JWTService) ParseClaims(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// Authenticate resolves a bearer token into the caller and its session row.
// Every failure collapses into ErrUnauthorized; the client learns nothing
// about which step rejected it.
func (s *JWTService) Authenticate(tokenString string) (*Caller, *models.AuthToken, error) {
	claims, err := s.ParseClaims(tokenString)
	if err != nil {
		return nil, nil, ErrUnauthorized
	}

	var token models.AuthToken
	if err := s.DB.Where("id = ?", claims.TokenID).First(&token).Error; err != nil {
		return nil, nil, ErrUnauthorized
	}
	if !token.Active || token.UserID != claims.UserID {
		return nil, nil, ErrUnauthorized
	}

	var role models.UserRole
	if err := s.DB.Where("user_id = ?", claims.UserID).First(&role).Error; err != nil {
		return nil, nil, ErrUnauthorized
	}

	var user models.User
	if err := s.DB.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		return nil, nil, ErrUnauthorized
	}

	// Best effort; a stale last_used_at must not fail the request.
	if err := s.DB.Model(&token).Update("last_used_at", time.Now()).Error; err != nil {
		logger.Warning("failed to touch last_used_at for token %s: %v", token.ID, err)
	}

	caller := &Caller{
		UserID:      user.ID,
		EntityID:    user.EntityID,
		EntityType:  user.EntityType,
		Role:        role.Role,
		CommunityID: role.CommunityID,
	}
	return caller, &token, nil
}

// Login verifies email and password and issues a fresh session. The email is
// looked up in the admin table first, then residents; emails are unique
// across both.
func (s *JWTService) Login(email, password, userAgent, remoteAddr string) (*LoginResult, error) {
	user, err := FindUserByEmail(s.DB, email)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrUnauthorized
	}

	var role models.UserRole
	if err := s.DB.Where("user_id = ?", user.ID).First(&role).Error; err != nil {
		return nil, ErrUnauthorized
	}

	authToken := models.AuthToken{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		Active:     true,
		UserAgent:  userAgent,
		RemoteAddr: remoteAddr,
		LastUsedAt: time.Now(),
	}
	if err := s.DB.Create(&authToken).Error; err != nil {
		return nil, err
	}

	signed, err := s.GenerateToken(user.ID, authToken.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:       signed,
		UserID:      user.ID,
		EntityID:    user.EntityID,
		EntityType:  user.EntityType,
		Role:        role.Role,
		CommunityID: role.CommunityID,
		Email:       email,
	}, nil
}

// Logout deactivates the session row. The row stays behind as a revocation
// record.
func (s *JWTService) Logout(tokenID string) error {
	result := s.DB.Model(&models.AuthToken{}).
		Where("id = ? AND active = ?", tokenID, true).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUnauthorized
	}
	return nil
}
