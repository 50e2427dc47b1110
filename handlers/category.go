package handlers

import (
	"net/http"

	"maidly/models"
	"maidly/services/category"
	"maidly/utils"

	"github.com/gin-gonic/gin"
)

// CreateCategoryHandler adds a service category to the catalog.
func CreateCategoryHandler(service category.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid category payload", err.Error())
			return
		}
		created, err := service.Create(c.Request.Context(), input)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
	}
}

// GetCategoryHandler fetches one category.
func GetCategoryHandler(service category.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := service.Get(c.Request.Context(), c.Param("categoryID"))
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cat})
	}
}

// ListCategoriesHandler lists the catalog; pass all=true to include inactive
// categories.
func ListCategoriesHandler(service category.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := c.Query("all") != "true"
		cats, err := service.List(c.Request.Context(), activeOnly)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cats})
	}
}

// UpdateCategoryHandler patches a category.
func UpdateCategoryHandler(service category.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid category payload", err.Error())
			return
		}
		updated, err := service.Update(c.Request.Context(), c.Param("categoryID"), input)
		if err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": updated})
	}
}

// DeleteCategoryHandler removes a category.
func DeleteCategoryHandler(service category.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.Delete(c.Request.Context(), c.Param("categoryID")); err != nil {
			utils.RespondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
	}
}
