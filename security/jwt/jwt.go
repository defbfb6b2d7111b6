// Package jwt issues and decodes the HS256 access tokens returned by login.
package jwt

import (
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
)

// TokenError represents JWT token related errors
type TokenError string

func (e TokenError) Error() string {
	return string(e)
}

const (
	DefaultAccessTokenExpire = time.Hour

	UserIDClaim = "user_id"

	ErrNeedTokenProvider = TokenError("cannot sign token without token provider")
	ErrInvalidToken      = TokenError("invalid token")
	ErrTokenParsing      = TokenError("token parsing error")
)

// TokenManager handles JWT token operations
type TokenManager struct {
	key    string
	expiry time.Duration
	now    func() time.Time
}

// NewTokenManager creates a new TokenManager. A non-positive expiry uses
// DefaultAccessTokenExpire.
func NewTokenManager(key string, expiry time.Duration) *TokenManager {
	if expiry <= 0 {
		expiry = DefaultAccessTokenExpire
	}
	return &TokenManager{key: key, expiry: expiry, now: time.Now}
}

// Expiry returns the access token lifetime.
func (jtm *TokenManager) Expiry() time.Duration {
	return jtm.expiry
}

// validateKey validates the token key
func (jtm *TokenManager) validateKey() error {
	if jtm.key == "" {
		return ErrNeedTokenProvider
	}
	return nil
}

// GenerateAccessToken signs a token carrying userID as its only custom claim.
func (jtm *TokenManager) GenerateAccessToken(userID string) (string, error) {
	if err := jtm.validateKey(); err != nil {
		return "", err
	}

	now := jtm.now()
	claims := jwtstd.MapClaims{
		UserIDClaim: userID,
		"iat":       now.Unix(),
		"exp":       now.Add(jtm.expiry).Unix(),
	}

	t := jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, claims)
	return t.SignedString([]byte(jtm.key))
}

// ValidateToken parses and verifies a JWT token
func (jtm *TokenManager) ValidateToken(tokenString string) (*jwtstd.Token, error) {
	if err := jtm.validateKey(); err != nil {
		return nil, err
	}

	return jwtstd.Parse(tokenString, func(token *jwtstd.Token) (any, error) {
		return []byte(jtm.key), nil
	}, jwtstd.WithValidMethods([]string{jwtstd.SigningMethodHS256.Alg()}), jwtstd.WithTimeFunc(jtm.now))
}

// DecodeToken decodes a JWT token into its claims
func (jtm *TokenManager) DecodeToken(tokenString string) (map[string]any, error) {
	token, err := jtm.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwtstd.MapClaims)
	if !ok {
		return nil, ErrTokenParsing
	}
	return claims, nil
}

// GetUserIDFromToken extracts user ID from token claims
func GetUserIDFromToken(claims map[string]any) string {
	if val, ok := claims[UserIDClaim].(string); ok {
		return val
	}
	return ""
}
