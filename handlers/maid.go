package handlers

import (
	"net/http"

	"maidly/middleware"
	"maidly/models"
	"maidly/services/maid"
	"maidly/utils"

	"github.com/gin-gonic/gin"
)

// RegisterMaidHandler signs up a maid and returns a session token.
func RegisterMaidHandler(service maid.MaidService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.MaidRegistrationInput
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

// LoginMaidHandler authenticates a maid.
func LoginMaidHandler(service maid.MaidService) gin.HandlerFunc {
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

// GetMaidHandler returns a maid's public profile.
func GetMaidHandler(service maid.MaidService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := service.GetProfile(c.Request.Context(), c.Param("maidID"))
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
	}
}

// UpdateMaidProfileHandler patches the authenticated maid's profile.
func UpdateMaidProfileHandler(service maid.MaidService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Maid
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

// ListMaidsHandler lists active maids, optionally filtered by category.
func ListMaidsHandler(service maid.MaidService) gin.HandlerFunc {
	return func(c *gin.Context) {
		maids, err := service.ListActive(c.Request.Context(), c.Query("categoryId"))
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": maids})
	}
}
