package auth

import (
	"testing"
	"time"

	"adreach/config"
	"adreach/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestService(t *testing.T) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims service.Claims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return signed
}

func validClaims(userID uuid.UUID, roles ...string) service.Claims {
	return service.Claims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID, "vendor"))

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"vendor"}, claims.Roles)
}

func TestJWTService_ValidateToken_Rejects(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	expired := validClaims(userID, "user")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims(userID, "user")
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"malformed", "clearly-not-a-jwt-token-format"},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims(userID))},
		{"expired", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"missing expiry", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{"missing user id", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(uuid.Nil))},
		{"none algorithm", signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims(userID))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
