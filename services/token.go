package services

import (
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken generates a JWT for the user with their ID and expiration time
func GenerateToken(userID string) (string, error) {
	expirationTime := time.Now().Add(time.Duration(utils.JWTExpirationTime) * time.Second)

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     expirationTime.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(utils.JWTSecretKey))
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
