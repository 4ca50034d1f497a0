// Package auth implements the credential primitives of the service: signed
// expiring bearer tokens and bcrypt password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/secureapi/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken issues an HS256-signed token carrying the subject and an
// expiry of now+validityDuration. The subject is carried as a string to
// avoid numeric-type ambiguity across serialization boundaries.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// SubjectFromToken validates the signature and expiry of tokenString and
// returns its subject claim. Expired tokens yield common.ErrTokenExpired;
// any other defect (bad signature, malformed structure, wrong algorithm)
// yields common.ErrInvalidToken.
func SubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
