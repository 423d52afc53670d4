// controllers/partner.go
package controllers

import (
	"net/http"
	"time"

	"sikap-api/config"
	"sikap-api/models"

	"github.com/gin-gonic/gin"
)

// ===== PARTNER CONTROLLERS =====

// GetPartners - list partners (public site shows active only)
func GetPartners(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	query := config.DB.Model(&models.Partner{}).
		Where("delete_at IS NULL")

	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	query = query.
		Order("display_order IS NULL, display_order ASC").
		Order("name ASC")

	var partners []models.Partner
	if err := query.Find(&partners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch partners"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"partners": partners,
		"total":    len(partners),
	})
}

// GetPartner - single partner
func GetPartner(c *gin.Context) {
	partnerID := c.Param("id")

	var partner models.Partner
	if err := config.DB.Where("partner_id = ? AND delete_at IS NULL", partnerID).
		First(&partner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"partner": partner,
	})
}

type partnerRequest struct {
	Name         string  `json:"name" binding:"required"`
	LogoURL      *string `json:"logo_url"`
	Website      *string `json:"website"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// CreatePartner - admin only
func CreatePartner(c *gin.Context) {
	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	partner := models.Partner{
		Name:         req.Name,
		LogoURL:      req.LogoURL,
		Website:      req.Website,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
		CreateAt:     now,
		UpdateAt:     now,
	}
	if req.IsActive != nil {
		partner.IsActive = *req.IsActive
	}

	if err := config.DB.Create(&partner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"partner": partner,
		"message": "Partner created successfully",
	})
}

// UpdatePartner - admin only
func UpdatePartner(c *gin.Context) {
	partnerID := c.Param("id")

	var partner models.Partner
	if err := config.DB.Where("partner_id = ? AND delete_at IS NULL", partnerID).
		First(&partner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}

	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partner.Name = req.Name
	partner.LogoURL = req.LogoURL
	partner.Website = req.Website
	partner.Description = req.Description
	partner.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		partner.IsActive = *req.IsActive
	}
	partner.UpdateAt = time.Now()

	if err := config.DB.Save(&partner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"partner": partner,
		"message": "Partner updated successfully",
	})
}

// DeletePartner - admin only, soft delete
func DeletePartner(c *gin.Context) {
	partnerID := c.Param("id")

	var partner models.Partner
	if err := config.DB.Where("partner_id = ? AND delete_at IS NULL", partnerID).
		First(&partner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}

	now := time.Now()
	partner.DeleteAt = &now

	if err := config.DB.Save(&partner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete partner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Partner deleted successfully",
	})
}
