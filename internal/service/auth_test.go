package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful-backend/internal/service"
	"github.com/forkful/forkful-backend/internal/store"
	"github.com/forkful/forkful-backend/internal/types"
)

const testSecret = "test-secret"

func newAuthService() (*service.AuthService, *store.Memory) {
	st := store.NewMemory()
	return service.NewAuthService(st.Users(), testSecret, 4), st
}

func TestRegisterThenLogin(t *testing.T) {
	authSvc, st := newAuthService()
	ctx := context.Background()

	token, err := authSvc.Register(ctx, "cook@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// The issued token's subject resolves back to the stored user.
	claims, err := authSvc.ValidateToken(ctx, token)
	require.NoError(t, err)
	stored, err := st.Users().FindByEmail(ctx, "cook@example.com")
	require.NoError(t, err)
	assert.Equal(t, stored.ID.Hex(), claims.UserID)
	assert.Equal(t, "cook@example.com", claims.Email)

	// The stored document holds a hash, never the password itself.
	assert.NotEqual(t, "secret123", stored.PasswordHash)

	loginToken, user, err := authSvc.Login(ctx, "cook@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, stored.ID, user.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	authSvc, _ := newAuthService()
	ctx := context.Background()

	_, err := authSvc.Register(ctx, "cook@example.com", "secret123")
	require.NoError(t, err)

	_, err = authSvc.Register(ctx, "cook@example.com", "another456")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	authSvc, _ := newAuthService()
	ctx := context.Background()

	_, err := authSvc.Register(ctx, "cook@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = authSvc.Login(ctx, "cook@example.com", "wrongpass")
	assert.ErrorIs(t, err, service.ErrBadCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	authSvc, _ := newAuthService()

	_, _, err := authSvc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestValidateTokenGarbage(t *testing.T) {
	authSvc, _ := newAuthService()

	_, err := authSvc.ValidateToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestValidateTokenExpired(t *testing.T) {
	authSvc, st := newAuthService()
	ctx := context.Background()

	_, err := authSvc.Register(ctx, "cook@example.com", "secret123")
	require.NoError(t, err)
	user, err := st.Users().FindByEmail(ctx, "cook@example.com")
	require.NoError(t, err)

	expired := signToken(t, &types.TokenClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err = authSvc.ValidateToken(ctx, expired)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestValidateTokenUnknownSubject(t *testing.T) {
	authSvc, _ := newAuthService()

	// Well-signed token for a subject that was never registered.
	orphan := signToken(t, &types.TokenClaims{
		UserID: primitive.NewObjectID().Hex(),
		Email:  "ghost@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := authSvc.ValidateToken(context.Background(), orphan)
	assert.ErrorIs(t, err, service.ErrUnknownSubject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	authSvc, _ := newAuthService()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.TokenClaims{
		UserID: primitive.NewObjectID().Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = authSvc.ValidateToken(context.Background(), signed)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func signToken(t *testing.T, claims *types.TokenClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}
