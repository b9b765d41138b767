package utils

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionCookieName is used until SetSessionCookieName is called.
const DefaultSessionCookieName = "session"

// secretKey and cookieName are set once at startup from config.
var (
	secretKey  []byte
	cookieName = DefaultSessionCookieName
)

func SetSecret(key string) {
	secretKey = []byte(key)
}

// SetSessionCookieName sets the cookie carrying the signed session token.
// Services sharing a host need distinct names since cookies ignore ports.
func SetSessionCookieName(name string) {
	if name != "" {
		cookieName = name
	}
}

// SessionCookieName is the cookie carrying the signed session token.
func SessionCookieName() string {
	return cookieName
}

// GenerateSessionToken signs a token whose subject is the session id.
func GenerateSessionToken(sessionID string, expiry time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", fmt.Errorf("session secret not set")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	})

	return token.SignedString(secretKey)
}

// ValidateSessionToken checks the signature and expiry and returns the session id.
func ValidateSessionToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}

// ExtractSessionID reads and validates the session cookie of a request.
func ExtractSessionID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return "", fmt.Errorf("no session cookie: %w", err)
	}
	return ValidateSessionToken(cookie.Value)
}
