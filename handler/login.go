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

func LoginHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	user, err := userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.TrackAuthAttempt("failure", "login")
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			utils.BadRequest(c, "user does not exist")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			utils.BadRequest(c, "invalid credentials")
		default:
			utils.InternalError(c, "login failed")
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
	log.Printf("User %s logged in from %s (%s)", user.UserID, platform, device)
	utils.TrackAuthAttempt("success", "login")

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in successfully",
		"user": dto.UserResponse{
			ID:    user.UserID,
			Email: user.Email,
		},
	})
}
