package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignupClaims proves that a mobile number passed OTP verification. The
// token gates the profile wizard and the final submission endpoints.
type SignupClaims struct {
	Mobile     string    `json:"mobile"`
	VerifiedAt time.Time `json:"verified_at"`
	jwt.RegisteredClaims
}

// GenerateSignupToken generates a signed token for a verified mobile number
func GenerateSignupToken(mobile string, verifiedAt time.Time, secret string, expirationHours int) (string, error) {
	claims := &SignupClaims{
		Mobile:     mobile,
		VerifiedAt: verifiedAt,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(expirationHours))),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSignupToken validates a signup token and returns the claims
func ValidateSignupToken(tokenString, secret string) (*SignupClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SignupClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SignupClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
