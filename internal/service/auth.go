package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/forkful/forkful-backend/internal/models"
	"github.com/forkful/forkful-backend/internal/store"
	"github.com/forkful/forkful-backend/internal/types"
)

// tokenTTL is the lifetime of an issued bearer token.
const tokenTTL = time.Hour

// AuthService handles registration, login and token issue/verify.
type AuthService struct {
	users      store.UserStore
	jwtSecret  string
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users store.UserStore, jwtSecret string, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  jwtSecret,
		bcryptCost: bcryptCost,
	}
}

// Register creates a user with a bcrypt-hashed password and returns a fresh
// token. Fails with ErrEmailTaken when the email is already registered.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return "", err
	}
	user.ID = id

	return s.generateToken(user)
}

// Login verifies the credentials and returns a token plus the user's public
// fields. ErrUserNotFound and ErrBadCredentials are reported separately so
// the API can answer 404 vs 401.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil, ErrUserNotFound
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrBadCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &types.TokenClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken checks signature, structure and expiry, then confirms the
// subject still exists in the users collection.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnknownSubject
		}
		return nil, err
	}

	return claims, nil
}
