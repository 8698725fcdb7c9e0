package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims del token (incluye RBAC simple: EsAdmin)
type Claims struct {
	UsuarioID uint `json:"usuarioId"`
	EsAdmin   bool `json:"esAdmin"`
	jwt.RegisteredClaims
}

// Tiempo de vida del access token
const AccessTTL = 8 * time.Hour

func secreto() ([]byte, error) {
	s := os.Getenv("AUTH_SECRET")
	if s == "" {
		return nil, errors.New("AUTH_SECRET no configurado")
	}
	return []byte(s), nil
}

// GenerarToken emite un JWT HS256 con sub, exp, iat y jti.
func GenerarToken(usuarioID uint, esAdmin bool) (string, error) {
	key, err := secreto()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		UsuarioID: usuarioID,
		EsAdmin:   esAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(usuarioID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        fmt.Sprintf("%d-%d", usuarioID, now.UnixNano()),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(key)
}

// ParseAndValidate valida firma y expiración y devuelve las claims.
func ParseAndValidate(tokenStr string) (*Claims, error) {
	key, err := secreto()
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, errors.New("token inválido")
	}

	c, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}
	if c.ExpiresAt == nil || time.Now().After(c.ExpiresAt.Time) {
		return nil, errors.New("token expirado")
	}

	return c, nil
}
