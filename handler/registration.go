package handler

import (
	"errors"
	"log"
	"net/http"

	"main/dto"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	user, err := userService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.TrackAuthAttempt("failure", "register")
		switch {
		case errors.Is(err, usecase.ErrUserExists):
			utils.BadRequest(c, "user already exists")
		case usecase.IsValidation(err):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalError(c, "registration failed")
		}
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "failed to generate token")
		return
	}
	setAuthCookie(c, token)

	platform, device := utils.ParseClientInfo(c.Request.UserAgent())
	log.Printf("New user %s registered from %s (%s)", user.UserID, platform, device)
	utils.TrackAuthAttempt("success", "register")

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": dto.UserResponse{
			ID:    user.UserID,
			Email: user.Email,
		},
	})
}

// setAuthCookie mirrors the http-only cookie the mobile client expects
// alongside the bearer token.
func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("token", token, int(utils.JWTExpirationTime), "/", "", true, true)
}
