package utils

import (
	"caps-service/internal/app/models"
	"caps-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GeneratePrincipalJWT issues a self-contained HS256 token for the given user.
// The token carries the full principal state; nothing is stored server-side.
func GeneratePrincipalJWT(userID, role, secret string, expTimeInHour int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(time.Duration(expTimeInHour) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	return tokenString, nil
}

// ParsePrincipalJWT verifies the token signature and expiry and rebuilds the
// principal embedded in its claims.
func ParsePrincipalJWT(tokenString, secret string) (*models.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	tokenID, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)
	if userID == "" || role == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	return &models.Principal{
		UserID:    userID,
		Role:      role,
		TokenID:   tokenID,
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}
