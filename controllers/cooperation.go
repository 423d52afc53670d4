// controllers/cooperation.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"sikap-api/config"
	"sikap-api/models"

	"github.com/gin-gonic/gin"
)

// ===== COOPERATION RECORD CONTROLLERS =====

var cooperationStatuses = map[string]bool{
	"ACTIVE":     true,
	"EXPIRED":    true,
	"TERMINATED": true,
}

// GetCooperations returns executed agreements, optionally filtered by
// status/type, or only the ones expiring within ?expiring_days.
func GetCooperations(c *gin.Context) {
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
	expiringDays, _ := strconv.Atoi(c.Query("expiring_days"))

	query := config.DB.Model(&models.Cooperation{}).
		Joins("LEFT JOIN cooperation_types ON cooperations.cooperation_type_id = cooperation_types.cooperation_type_id").
		Preload("CooperationType").
		Preload("Institution").
		Where("cooperations.delete_at IS NULL")

	if status != "" {
		if !cooperationStatuses[status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		query = query.Where("cooperations.status = ?", status)
	}
	if typeCode != "" {
		query = query.Where("cooperation_types.code = ?", typeCode)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"cooperations.title LIKE ? OR cooperations.cooperation_number LIKE ? OR cooperations.second_party LIKE ?",
			like, like, like,
		)
	}
	if expiringDays > 0 {
		cutoff := time.Now().AddDate(0, 0, expiringDays)
		query = query.Where(
			"cooperations.status = ? AND cooperations.end_date IS NOT NULL AND cooperations.end_date <= ?",
			"ACTIVE", cutoff,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cooperations"})
		return
	}

	var cooperations []models.Cooperation
	if err := query.
		Order("cooperations.start_date DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&cooperations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cooperations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"cooperations": cooperations,
		"pagination": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// GetCooperation returns a single agreement with relations.
func GetCooperation(c *gin.Context) {
	cooperationID := c.Param("id")

	var cooperation models.Cooperation
	if err := config.DB.
		Preload("CooperationType").
		Preload("Institution").
		Preload("Application").
		Preload("Creator").
		Where("cooperation_id = ? AND delete_at IS NULL", cooperationID).
		First(&cooperation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cooperation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"cooperation": cooperation,
	})
}

type cooperationRequest struct {
	CooperationNumber string     `json:"cooperation_number" binding:"required"`
	Title             string     `json:"title" binding:"required"`
	Description       *string    `json:"description"`
	CooperationTypeID int        `json:"cooperation_type_id" binding:"required"`
	InstitutionID     *int       `json:"institution_id"`
	ApplicationID     *int       `json:"application_id"`
	FirstParty        string     `json:"first_party" binding:"required"`
	SecondParty       string     `json:"second_party" binding:"required"`
	StartDate         time.Time  `json:"start_date" binding:"required"`
	EndDate           *time.Time `json:"end_date"`
	Status            *string    `json:"status"`
}

// CreateCooperation - admin only. When linked to an application, the
// application must exist and be approved.
func CreateCooperation(c *gin.Context) {
	userID, _ := c.Get("userID")

	var req cooperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ApplicationID != nil {
		var application models.Application
		if err := config.DB.Where("application_id = ? AND delete_at IS NULL", *req.ApplicationID).
			First(&application).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Linked application not found"})
			return
		}
		if application.Status != "APPROVED" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Linked application is not approved"})
			return
		}
	}

	now := time.Now()
	cooperation := models.Cooperation{
		CooperationNumber: req.CooperationNumber,
		Title:             req.Title,
		Description:       req.Description,
		CooperationTypeID: req.CooperationTypeID,
		InstitutionID:     req.InstitutionID,
		ApplicationID:     req.ApplicationID,
		FirstParty:        req.FirstParty,
		SecondParty:       req.SecondParty,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Status:            "ACTIVE",
		CreatedBy:         userID.(int),
		CreateAt:          now,
		UpdateAt:          now,
	}
	if req.Status != nil {
		if !cooperationStatuses[*req.Status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		cooperation.Status = *req.Status
	}

	if err := config.DB.Create(&cooperation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cooperation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"cooperation": cooperation,
		"message":     "Cooperation created successfully",
	})
}

// UpdateCooperation - admin only
func UpdateCooperation(c *gin.Context) {
	cooperationID := c.Param("id")

	var cooperation models.Cooperation
	if err := config.DB.Where("cooperation_id = ? AND delete_at IS NULL", cooperationID).
		First(&cooperation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cooperation not found"})
		return
	}

	var req cooperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cooperation.CooperationNumber = req.CooperationNumber
	cooperation.Title = req.Title
	cooperation.Description = req.Description
	cooperation.CooperationTypeID = req.CooperationTypeID
	cooperation.InstitutionID = req.InstitutionID
	cooperation.FirstParty = req.FirstParty
	cooperation.SecondParty = req.SecondParty
	cooperation.StartDate = req.StartDate
	cooperation.EndDate = req.EndDate
	if req.Status != nil {
		if !cooperationStatuses[*req.Status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		cooperation.Status = *req.Status
	}
	cooperation.UpdateAt = time.Now()

	if err := config.DB.Save(&cooperation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cooperation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"cooperation": cooperation,
		"message":     "Cooperation updated successfully",
	})
}

// DeleteCooperation - admin only, soft delete
func DeleteCooperation(c *gin.Context) {
	cooperationID := c.Param("id")

	var cooperation models.Cooperation
	if err := config.DB.Where("cooperation_id = ? AND delete_at IS NULL", cooperationID).
		First(&cooperation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cooperation not found"})
		return
	}

	now := time.Now()
	cooperation.DeleteAt = &now

	if err := config.DB.Save(&cooperation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cooperation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cooperation deleted successfully",
	})
}
