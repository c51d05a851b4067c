package jwt

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenInvalido es retornado cuando el token no puede validarse
	ErrTokenInvalido = errors.New("token inválido")
	// ErrTokenExpirado es retornado cuando el token venció
	ErrTokenExpirado = errors.New("token expirado")
	// ErrSecretoNoConfigurado es retornado cuando falta JWT_SECRET en el ambiente
	ErrSecretoNoConfigurado = errors.New("clave secreta JWT no configurada")
)

// Claims son las claims del token del administrador del panel
type Claims struct {
	Correo string `json:"correo"`
	jwt.RegisteredClaims
}

// GenerarToken emite un token HS256 para el correo indicado
func GenerarToken(correo string, duracion time.Duration) (string, error) {
	secreto := os.Getenv("JWT_SECRET")
	if secreto == "" {
		return "", ErrSecretoNoConfigurado
	}

	ahora := time.Now()
	claims := Claims{
		Correo: correo,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(ahora.Add(duracion)),
			IssuedAt:  jwt.NewNumericDate(ahora),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secreto))
}

// ValidarToken verifica la firma y vigencia de un token
func ValidarToken(tokenString string) (*Claims, error) {
	secreto := os.Getenv("JWT_SECRET")
	if secreto == "" {
		return nil, ErrSecretoNoConfigurado
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return []byte(secreto), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpirado
		}
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalido
	}

	return claims, nil
}
