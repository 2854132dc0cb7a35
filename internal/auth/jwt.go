package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 30 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

func GenerateToken(secret []byte, userID string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"jti":     uuid.NewString(),
		"exp":     now.Add(tokenTTL).Unix(),
		"iat":     now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func ParseToken(secret []byte, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	data, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	uid, ok := data["user_id"].(string)
	if !ok || uid == "" {
		return "", fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}
	return uid, nil
}
