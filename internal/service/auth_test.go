package service_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sivacabs/backend/internal/service"
)

// testPasswordHash is bcrypt("correct horse") at minimum cost, generated once
// per test binary to keep the suite fast.
var testPasswordHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return h
}()

var testSecret = []byte("test-signing-secret")

func newAuthService() *service.AuthService {
	return service.NewAuthService("operator", testPasswordHash, testSecret)
}

func TestAuthService_Login_Valid(t *testing.T) {
	svc := newAuthService()

	token, err := svc.Login("operator", "correct horse")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token must verify against the same secret and carry the username.
	parsed, err := jwt.Parse(token, func(_ *jwt.Token) (any, error) { return testSecret, nil },
		jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "operator", sub)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, 24*60*60.0, exp.Sub(iat.Time).Seconds(), "tokens expire after 24 hours")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login("operator", "wrong")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongUsername(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login("admin", "correct horse")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login("", "")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_Username(t *testing.T) {
	assert.Equal(t, "operator", newAuthService().Username())
}
