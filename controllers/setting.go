// controllers/setting.go
package controllers

import (
	"net/http"
	"time"

	"sikap-api/config"
	"sikap-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ===== SITE SETTINGS CONTROLLERS =====

// GetSettings returns site settings, optionally filtered by ?group. Reads
// go through the injected TTL cache; any write clears it.
func GetSettings(c *gin.Context) {
	group := c.Query("group")
	cacheKey := "group:" + group

	if settings, ok := settingsCache.Get(cacheKey); ok {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"settings": settings,
			"cached":   true,
		})
		return
	}

	query := config.DB.Model(&models.SiteSetting{})
	if group != "" {
		query = query.Where("group_name = ?", group)
	}

	var settings []models.SiteSetting
	if err := query.Order("setting_key ASC").Find(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	settingsCache.Put(cacheKey, settings)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"settings": settings,
	})
}

// UpdateSettings upserts a batch of key/value settings and invalidates the
// cache. Admin only.
func UpdateSettings(c *gin.Context) {
	type settingUpdate struct {
		SettingKey string `json:"setting_key" binding:"required"`
		Value      string `json:"value"`
		GroupName  string `json:"group_name"`
	}
	type settingsUpdateRequest struct {
		Settings []settingUpdate `json:"settings" binding:"required,min=1"`
	}

	var req settingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, update := range req.Settings {
			setting := models.SiteSetting{
				SettingKey: update.SettingKey,
				Value:      update.Value,
				GroupName:  update.GroupName,
				CreateAt:   &now,
				UpdateAt:   &now,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "setting_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "group_name", "update_at"}),
			}).Create(&setting).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	settingsCache.Clear()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Settings updated successfully",
	})
}
