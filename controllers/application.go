// controllers/application.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"sikap-api/config"
	"sikap-api/models"
	"sikap-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ===================== APPLICATION MANAGEMENT =====================

// GetApplications returns a paginated list of applications for the admin
// dashboard, with joined type/institution/category names.
func GetApplications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	status := c.Query("status")
	typeCode := c.Query("type")
	search := c.Query("search")

	query := config.DB.Model(&models.Application{}).
		Joins("LEFT JOIN cooperation_types ON applications.cooperation_type_id = cooperation_types.cooperation_type_id").
		Joins("LEFT JOIN cooperation_categories ON applications.cooperation_category_id = cooperation_categories.cooperation_category_id").
		Select("applications.*, cooperation_types.name AS type_name, cooperation_categories.name AS category_name").
		Preload("CooperationType").
		Preload("Institution").
		Preload("CooperationCategory").
		Where("applications.delete_at IS NULL")

	if status != "" {
		canonical, ok := services.CanonicalStatus(status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		query = query.Where("applications.status = ?", canonical)
	}
	if typeCode != "" {
		query = query.Where("cooperation_types.code = ?", typeCode)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"applications.title LIKE ? OR applications.tracking_number LIKE ? OR applications.institution_name LIKE ? OR applications.contact_person LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count applications"})
		return
	}

	var applications []models.Application
	if err := query.
		Order("applications.submitted_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": applications,
		"pagination": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// GetApplication returns a specific application with documents, histories
// and relations.
func GetApplication(c *gin.Context) {
	applicationID := c.Param("id")

	var application models.Application
	if err := config.DB.
		Preload("CooperationType").
		Preload("Institution").
		Preload("CooperationCategory").
		Preload("PublicSubmission").
		Preload("Documents", "delete_at IS NULL").
		Preload("StatusHistories", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at DESC")
		}).
		Preload("StatusHistories.ChangedByUser").
		Where("application_id = ? AND delete_at IS NULL", applicationID).
		First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"application": application,
	})
}

// UpdateApplicationStatus moves an application to a new status. All writes
// (application row, history, notification) happen in one transaction inside
// the lifecycle service.
func UpdateApplicationStatus(c *gin.Context) {
	applicationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID"})
		return
	}

	type StatusUpdateRequest struct {
		Status string  `json:"status" binding:"required"`
		Notes  *string `json:"notes"`
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid status"})
		return
	}

	var changedBy *int
	if userID, exists := c.Get("userID"); exists {
		if id, ok := userID.(int); ok {
			changedBy = &id
		}
	}

	application, err := getLifecycleService().UpdateStatus(applicationID, req.Status, req.Notes, changedBy)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case errors.Is(err, services.ErrTransitionNotAllowed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status transition not allowed"})
		case errors.Is(err, services.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		default:
			log.Printf("Failed to update status for application %d: %v", applicationID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"application": application,
		"message":     "Application status updated successfully",
	})
}

// DeleteApplication removes an application that has no dependent
// cooperation record. Soft delete, admin only.
func DeleteApplication(c *gin.Context) {
	applicationID := c.Param("id")

	var application models.Application
	if err := config.DB.Where("application_id = ? AND delete_at IS NULL", applicationID).
		First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	var dependents int64
	if err := config.DB.Model(&models.Cooperation{}).
		Where("application_id = ? AND delete_at IS NULL", application.ApplicationID).
		Count(&dependents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check dependent records"})
		return
	}
	if dependents > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Application has a linked cooperation record and cannot be deleted"})
		return
	}

	now := time.Now()
	application.DeleteAt = &now

	if err := config.DB.Save(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Application deleted successfully",
	})
}
