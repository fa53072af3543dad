package jwthelper

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime bounds every issued token to one hour from issuance.
const TokenLifetime = time.Hour

type Claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 token carrying issuer, audience, issued-at
// and expiry claims plus the admin's id.
func GenerateToken(signingKey []byte, issuer, audience string, userID uint, issuedAt time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(signingKey)
}

// VerifyToken parses the compact token and checks signature, issuer,
// audience and time bounds.
func VerifyToken(signingKey []byte, issuer, audience, tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, err
	}

	return claims, nil
}
