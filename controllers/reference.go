// controllers/reference.go - lookup data for the public form and dashboard
package controllers

import (
	"net/http"
	"time"

	"sikap-api/config"
	"sikap-api/models"

	"github.com/gin-gonic/gin"
)

// GetCooperationTypes returns the selectable application types (public form
// shows active only).
func GetCooperationTypes(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	query := config.DB.Model(&models.CooperationType{}).
		Where("delete_at IS NULL")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var types []models.CooperationType
	if err := query.Order("name ASC").Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cooperation types"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"types":   types,
		"total":   len(types),
	})
}

// GetCooperationCategories returns the selectable categories.
func GetCooperationCategories(c *gin.Context) {
	var categories []models.CooperationCategory
	if err := config.DB.
		Where("delete_at IS NULL AND is_active = ?", true).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
		"total":      len(categories),
	})
}

// GetInstitutions returns known partner institutions for the form's
// autocomplete.
func GetInstitutions(c *gin.Context) {
	search := c.Query("search")

	query := config.DB.Model(&models.Institution{}).
		Where("delete_at IS NULL")
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var institutions []models.Institution
	if err := query.Order("name ASC").Limit(50).Find(&institutions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch institutions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"institutions": institutions,
		"total":        len(institutions),
	})
}

// CreateInstitution - admin only
func CreateInstitution(c *gin.Context) {
	type institutionRequest struct {
		Name    string  `json:"name" binding:"required"`
		Address *string `json:"address"`
		Email   *string `json:"email"`
		Phone   *string `json:"phone"`
	}

	var req institutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	institution := models.Institution{
		Name:     req.Name,
		Address:  req.Address,
		Email:    req.Email,
		Phone:    req.Phone,
		CreateAt: &now,
		UpdateAt: &now,
	}

	if err := config.DB.Create(&institution).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create institution"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"institution": institution,
		"message":     "Institution created successfully",
	})
}
