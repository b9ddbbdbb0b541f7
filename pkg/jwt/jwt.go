package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity es la identidad del actor que viaja en el token: lo justo para
// que la política de roles decida sin consultar la base.
type Identity struct {
	UserID          string
	Role            string
	PremiumVerified bool
	CartID          string
}

// Claims incluye los claims estándar JWT más la identidad del actor.
type Claims struct {
	jwt.RegisteredClaims
	UserID          string `json:"user_id"`
	Role            string `json:"role"` // "user" | "premium" | "admin"
	PremiumVerified bool   `json:"premium_verified"`
	CartID          string `json:"cart_id"`
}

// Generate genera un token JWT firmado con la identidad del actor.
func Generate(secret string, id Identity, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:          id.UserID,
		Role:            id.Role,
		PremiumVerified: id.PremiumVerified,
		CartID:          id.CartID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la identidad del actor. Retorna error
// si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("claims inválidos")
	}
	return Identity{
		UserID:          claims.UserID,
		Role:            claims.Role,
		PremiumVerified: claims.PremiumVerified,
		CartID:          claims.CartID,
	}, nil
}
