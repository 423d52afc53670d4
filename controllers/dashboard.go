// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"sikap-api/config"
	"sikap-api/models"
	"sikap-api/services"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the admin landing-page numbers: application
// counts per status, recent submissions and agreements expiring soon.
func GetDashboardStats(c *gin.Context) {
	statusCounts := make(map[string]int64, len(services.TimelineSequence))
	for _, status := range services.TimelineSequence {
		var count int64
		if err := config.DB.Model(&models.Application{}).
			Where("status = ? AND delete_at IS NULL", status).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
			return
		}
		statusCounts[status] = count
	}

	var totalApplications int64
	if err := config.DB.Model(&models.Application{}).
		Where("delete_at IS NULL").
		Count(&totalApplications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	var activeCooperations int64
	if err := config.DB.Model(&models.Cooperation{}).
		Where("status = ? AND delete_at IS NULL", "ACTIVE").
		Count(&activeCooperations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	var recentApplications []models.Application
	if err := config.DB.
		Preload("CooperationType").
		Where("delete_at IS NULL").
		Order("submitted_at DESC").
		Limit(5).
		Find(&recentApplications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	cutoff := time.Now().AddDate(0, 0, 90)
	var expiringCooperations []models.Cooperation
	if err := config.DB.
		Preload("CooperationType").
		Where("status = ? AND delete_at IS NULL AND end_date IS NOT NULL AND end_date <= ?", "ACTIVE", cutoff).
		Order("end_date ASC").
		Limit(5).
		Find(&expiringCooperations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"total_applications":     totalApplications,
			"applications_by_status": statusCounts,
			"active_cooperations":    activeCooperations,
			"recent_applications":    recentApplications,
			"expiring_cooperations":  expiringCooperations,
		},
	})
}
