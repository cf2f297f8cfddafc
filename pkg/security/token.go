// Package security contains everything related to the security of user data
package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

var (
	ErrTokenInvalid = errors.New("token is malformed or has a bad signature")
	ErrTokenExpired = errors.New("token is expired")
	ErrWrongPurpose = errors.New("token was issued for a different purpose")
)

// Tokens issues and verifies the signed access and refresh tokens used by
// the auth flow. Stateless, everything is derived from the shared secret.
type Tokens struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokens() *Tokens {
	return &Tokens{
		secret:     []byte(viper.GetString("jwt.secret")),
		accessTTL:  time.Duration(viper.GetInt("jwt.access_ttl_minutes")) * time.Minute,
		refreshTTL: time.Duration(viper.GetInt("jwt.refresh_ttl_hours")) * time.Hour,
	}
}

// IssueAccessToken returns a short-lived token encoding the user's identity
func (t *Tokens) IssueAccessToken(userID string) (string, error) {
	return t.sign(userID, "access", t.accessTTL)
}

// IssueRefreshToken returns a long-lived token meant to be persisted on the
// user record
func (t *Tokens) IssueRefreshToken(userID string) (string, error) {
	return t.sign(userID, "refresh", t.refreshTTL)
}

func (t *Tokens) sign(userID, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"type":    purpose,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	})

	return token.SignedString(t.secret)
}

// VerifyAccess validates the signature and expiry of an access token and
// returns the user ID it carries
func (t *Tokens) VerifyAccess(tokenStr string) (string, error) {
	return t.verify(tokenStr, "access")
}

// VerifyRefresh is the refresh-token counterpart of VerifyAccess
func (t *Tokens) VerifyRefresh(tokenStr string) (string, error) {
	return t.verify(tokenStr, "refresh")
}

func (t *Tokens) verify(tokenStr, purpose string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (any, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", tok.Method.Alg())
		}

		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}

		return "", ErrTokenInvalid
	}

	if !token.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}

	if p, _ := claims["type"].(string); p != purpose {
		return "", ErrWrongPurpose
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrTokenInvalid
	}

	return userID, nil
}
