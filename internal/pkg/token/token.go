package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Audience scopes a session token to the kind of subject it authenticates.
// User and admin tokens are signed with different secrets, so a token from
// one audience can never validate against the other.
type Audience string

const (
	AudienceUser  Audience = "user"
	AudienceAdmin Audience = "admin"
)

// Claims represents the session token claims
type Claims struct {
	SubjectID uint     `json:"subject_id"`
	Audience  Audience `json:"scope"`
	jwt.RegisteredClaims
}

// Generate produces a signed session token for the given subject
func Generate(subjectID uint, audience Audience, secret string, expiryDays int) (string, error) {
	claims := Claims{
		SubjectID: subjectID,
		Audience:  audience,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryDays) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "linkedin-design-tool",
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Validate validates a session token against the expected audience and
// returns its claims
func Validate(tokenString string, audience Audience, secret string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Audience != audience {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
