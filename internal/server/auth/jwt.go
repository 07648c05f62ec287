// Package auth holds the authentication primitives: JWT issuance/parsing
// and password hashing. Token verification against the session store lives
// in the HTTP layer; this package only deals with the tokens themselves.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered JWT claims plus the user identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken mints an HS256 token for userID valid for validityDuration.
// Access and refresh tokens differ only in lifetime. An empty userID is
// rejected with common.ErrInvalidSubject.
//
// Every token carries a random jti. Timestamps are truncated to whole
// seconds and HS256 is deterministic, so without it two tokens minted for
// the same user in the same second would be identical strings — and session
// replacement relies on a new refresh token differing from the old one.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if userID == "" {
		return "", common.ErrInvalidSubject
	}

	jti, err := common.MakeRandHexString(16)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken verifies the signature and expiry of tokenString and
// returns the embedded user identifier. Expired tokens map to
// common.ErrTokenExpired, a verifiable token without a subject to
// common.ErrInvalidSubject, everything else to common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}
	if claims.UserID == "" {
		return "", common.ErrInvalidSubject
	}

	return claims.UserID, nil
}
