package utils

import (
	"log"
	"os"
	"strconv"
)

var (
	JWTSecretKey      string
	JWTExpirationTime int64
)

func InitJWT() {
	// For tests, use default values if environment variables aren't set
	if os.Getenv("GO_ENV") == "test" {
		if os.Getenv("JWT_SECRET_KEY") == "" {
			os.Setenv("JWT_SECRET_KEY", "test_secret_key")
		}
		if os.Getenv("JWT_EXPIRATION_TIME") == "" {
			os.Setenv("JWT_EXPIRATION_TIME", "3600")
		}
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	expStr := GetEnvAsString("JWT_EXPIRATION_TIME", "3600")
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		log.Fatalf("Invalid JWT_EXPIRATION_TIME %q: %v", expStr, err)
	}
	JWTExpirationTime = exp
}
