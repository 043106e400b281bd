package jwt

import (
	"errors"
	"time"

	"atelier/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// NewToken mints the session token carried in the role cookie. The
// role travels inside a signed HS256 token so a bare string in the
// cookie is never trusted.
func NewToken(user models.User, secret string, duration time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["uid"] = user.ID.String()
	claims["username"] = user.Username
	claims["role"] = user.Role.String()
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(duration).Unix()

	return token.SignedString([]byte(secret))
}

// VerifyRole checks the token signature and expiry and returns the
// embedded role. Any failure yields RoleNone.
func VerifyRole(tokenString, secret string) (models.Role, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.RoleNone, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.RoleNone, ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok {
		return models.RoleNone, ErrInvalidToken
	}

	return models.ParseRole(role), nil
}
