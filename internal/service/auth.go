package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login when the username or password
// does not match the configured operator account.
// Handlers should map this to HTTP 401 without distinguishing which part failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

// tokenTTL is how long an issued session token stays valid.
const tokenTTL = 24 * time.Hour

// AuthService gates access to the application behind the single operator
// account. The credential pair lives in configuration (username plus bcrypt
// password hash); there is no user table and no server-side session state —
// a session is exactly one signed token held by the client.
type AuthService struct {
	username     string
	passwordHash []byte
	secret       []byte
	now          func() time.Time
}

// NewAuthService constructs an AuthService for the configured credential pair.
// passwordHash must be a bcrypt hash; secret signs the issued HS256 tokens.
func NewAuthService(username string, passwordHash, secret []byte) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
		secret:       secret,
		now:          time.Now,
	}
}

// Login verifies the credential pair and returns a signed session token.
// Returns ErrInvalidCredentials on any mismatch.
func (s *AuthService) Login(username, password string) (string, error) {
	// Compare both parts unconditionally so a wrong username costs the
	// same time as a wrong password.
	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !nameOK || passErr != nil {
		return "", ErrInvalidCredentials
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": s.username,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("service.AuthService.Login: sign token: %w", err)
	}
	return signed, nil
}

// Username returns the configured operator username, echoed back to the
// client on a successful login.
func (s *AuthService) Username() string {
	return s.username
}
