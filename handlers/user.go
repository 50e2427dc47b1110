package handlers

import (
	"net/http"

	"maidly/middleware"
	"maidly/models"
	"maidly/services/user"
	"maidly/utils"

	"github.com/gin-gonic/gin"
)

// RegisterUserHandler signs up a customer and returns a session token.
func RegisterUserHandler(service user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.UserRegistrationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid registration payload", err.Error())
			return
		}
		resp, err := service.Register(c.Request.Context(), input)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": resp})
	}
}

// LoginUserHandler authenticates a customer.
func LoginUserHandler(service user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds models.CredentialsInput
		if err := c.ShouldBindJSON(&creds); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid credentials payload", err.Error())
			return
		}
		resp, err := service.Login(c.Request.Context(), creds)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": resp})
	}
}

// GetUserProfileHandler returns the authenticated customer's profile.
func GetUserProfileHandler(service user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := service.GetProfile(c.Request.Context(), c.GetString(middleware.ContextUserID))
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
	}
}

// UpdateUserProfileHandler patches the authenticated customer's profile.
func UpdateUserProfileHandler(service user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.User
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid profile payload", err.Error())
			return
		}
		input.ID = c.GetString(middleware.ContextUserID)

		updated, err := service.UpdateProfile(c.Request.Context(), &input)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
	}
}

// DeleteUserHandler deletes the authenticated customer's account.
func DeleteUserHandler(service user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.DeleteAccount(c.Request.Context(), c.GetString(middleware.ContextUserID)); err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account deleted"})
	}
}
