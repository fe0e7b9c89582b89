package handler

import (
	"errors"
	"net/http"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func CreateReminderHandler(c *gin.Context, svc *usecase.ReminderService) {
	var req dto.CreateReminderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	ctx := c.Request.Context()

	var reminder interface{}
	var err error
	switch {
	case req.Date != nil:
		reminder, err = svc.Create(ctx, req.UserID, req.Reminder, *req.Date, req.Tag)
	case req.Day != "" || req.Time != "":
		reminder, err = svc.CreateFromClockTime(ctx, req.UserID, req.Reminder, req.Day, req.Time, req.Tag)
	default:
		utils.BadRequest(c, "either date or day and time are required")
		return
	}

	if err != nil {
		if usecase.IsValidation(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, "failed to create reminder")
		return
	}

	utils.TrackReminderOperation("create")
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Reminder created successfully",
		"reminder": reminder,
	})
}

func GetRemindersHandler(c *gin.Context, svc *usecase.ReminderService) {
	userID := c.Param("userId")

	reminders, err := svc.LoadAll(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "failed to load reminders")
		return
	}

	utils.TrackReminderOperation("load")
	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

func DeleteReminderHandler(c *gin.Context, svc *usecase.ReminderService) {
	reminderID := c.Param("reminderId")

	if err := svc.Delete(c.Request.Context(), reminderID); err != nil {
		if errors.Is(err, usecase.ErrReminderNotFound) {
			utils.NotFound(c, "Reminder not found")
			return
		}
		utils.InternalError(c, "failed to delete reminder")
		return
	}

	utils.TrackReminderOperation("delete")
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
