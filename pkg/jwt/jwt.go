package jwt

import (
	"fmt"
	"time"

	"chaugames/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session principal carried by a token. Email is the identity
// key the collection logic trusts.
type Claims struct {
	UserID uint
	Email  string
}

// GenerateToken creates a new JWT for a given user.
func GenerateToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseToken validates a token string and extracts its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userIDFloat, ok := mapClaims["sub"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid token subject")
	}
	email, ok := mapClaims["email"].(string)
	if !ok || email == "" {
		return nil, fmt.Errorf("token has no email claim")
	}

	return &Claims{UserID: uint(userIDFloat), Email: email}, nil
}
