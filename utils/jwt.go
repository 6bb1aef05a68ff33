package utils

import (
	"errors"
	"time"

	"pawcare/config"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "pawcare-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT with the given subject (userID) and kind
// ("access" or "refresh"). The token expires after the specified duration.
// Each token carries a unique jti so two tokens minted in the same second
// are still distinct (refresh rotation depends on this).
func GenerateToken(subject, kind string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"kind": kind,
		"jti":  uuid.New().String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractIDFromToken extracts the ID (subject) from a valid JWT token string.
func ExtractIDFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}

	return sub, nil
}

// TokenExpiry decodes the "exp" claim of a token WITHOUT verifying its
// signature. Callers that only need to know whether a token is still usable
// (e.g. before attaching it to a request) must not need the signing key.
func TokenExpiry(tokenString string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, errors.New("token does not contain an 'exp' claim")
	}
	return time.Unix(int64(exp), 0), nil
}
