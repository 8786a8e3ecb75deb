package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hrsuite/internal/common"
	"hrsuite/internal/domain/user"
)

type JWTProvider struct {
	secret []byte
}

func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: []byte(secret)}
}

// Claims carries the account identity (tax id) and its role.
type Claims struct {
	Login string    `json:"login"`
	Role  user.Role `json:"role"`
	jwt.RegisteredClaims
}

func (p *JWTProvider) Generate(taxID, login string, role user.Role, ttl time.Duration) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(ttl)
	claims := Claims{
		Login: login,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   taxID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, common.NewError(common.CodeInternal, "failed to sign token", err)
	}
	return signed, expiresAt, nil
}

func (p *JWTProvider) Parse(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.NewError(common.CodeUnauthorized, "unexpected signing method", nil)
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, common.NewError(common.CodeUnauthorized, "invalid token", err)
	}
	return &claims, nil
}
