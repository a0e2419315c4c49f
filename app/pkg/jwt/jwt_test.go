package jwt_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/school-platform/app/internal/config"
	"backend/school-platform/app/pkg/jwt"
)

func newTestJwt(secret string) jwt.Jwt {
	return jwt.NewJwt(config.JwtConfig{
		SecretKey:        secret,
		Issuer:           "school-platform-test",
		AccessExpiration: time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	manager := newTestJwt("test-secret")

	userID := uuid.New()
	schoolID := uuid.New()
	name := "Ani"
	email := "ani@example.com"
	role := "admin"

	token, err := manager.GenerateAccessToken(&userID, &name, &email, &role, &schoolID)
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiredAt, time.Minute)

	claims, err := manager.ValidateToken(token.Token)
	require.NoError(t, err)
	require.NotNil(t, claims.UserID)
	assert.Equal(t, userID, *claims.UserID)
	require.NotNil(t, claims.Role)
	assert.Equal(t, role, *claims.Role)
	require.NotNil(t, claims.SchoolID)
	assert.Equal(t, schoolID, *claims.SchoolID)
	assert.Equal(t, "school-platform-test", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	signer := newTestJwt("secret-one")
	verifier := newTestJwt("secret-two")

	userID := uuid.New()
	role := "admin"
	token, err := signer.GenerateAccessToken(&userID, nil, nil, &role, nil)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token.Token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	manager := newTestJwt("test-secret")

	_, err := manager.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestGetClaimsFromRequestHeader(t *testing.T) {
	manager := newTestJwt("test-secret")

	userID := uuid.New()
	role := "admin"
	token, err := manager.GenerateAccessToken(&userID, nil, nil, &role, nil)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	ctx := e.NewContext(req, httptest.NewRecorder())

	claims, err := manager.GetClaims(ctx)
	require.NoError(t, err)
	require.NotNil(t, claims.UserID)
	assert.Equal(t, userID, *claims.UserID)

	ctx = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, err = manager.GetClaims(ctx)
	assert.Error(t, err)
}

func TestGetExpirationTime(t *testing.T) {
	manager := newTestJwt("test-secret")
	assert.Equal(t, int64(3600), manager.GetExpirationTime())
}
