// File: internal/auth/jwt.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is the identity asserted by a validated token. UserID comes
// from "sub" and is mandatory; the profile claims are optional and used to
// keep the stored user record fresh.
type IdentityClaims struct {
	UserID  string
	Email   string
	Name    string
	Picture string
}

// GenerateToken issues an HS256 token carrying the identity claims.
func GenerateToken(claims IdentityClaims, secretKey []byte, ttl time.Duration) (string, error) {
	if claims.UserID == "" {
		return "", errors.New("user ID cannot be empty")
	}

	mapClaims := jwt.MapClaims{
		"sub": claims.UserID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	if claims.Email != "" {
		mapClaims["email"] = claims.Email
	}
	if claims.Name != "" {
		mapClaims["name"] = claims.Name
	}
	if claims.Picture != "" {
		mapClaims["picture"] = claims.Picture
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(secretKey)
}

// ParseToken validates signature and expiry and extracts the identity claims.
func ParseToken(tokenString string, secretKey []byte) (*IdentityClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("invalid token: missing user ID")
	}

	identity := &IdentityClaims{UserID: sub}
	if v, ok := claims["email"].(string); ok {
		identity.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		identity.Name = v
	}
	if v, ok := claims["picture"].(string); ok {
		identity.Picture = v
	}
	return identity, nil
}
