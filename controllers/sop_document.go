// controllers/sop_document.go
package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sikap-api/config"
	"sikap-api/models"

	"github.com/gin-gonic/gin"
)

// ===== SOP DOCUMENT CONTROLLERS =====

// GetSOPDocuments - list SOP kerja sama (public shows active only)
func GetSOPDocuments(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	query := config.DB.Model(&models.SOPDocument{}).
		Preload("Creator").
		Where("delete_at IS NULL")

	if activeOnly {
		query = query.Where("status = ?", "active")
	}

	query = query.
		Order("display_order IS NULL, display_order ASC").
		Order("update_at DESC")

	var documents []models.SOPDocument
	if err := query.Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch SOP documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"documents": documents,
		"total":     len(documents),
	})
}

// CreateSOPDocument - admin only, multipart form with PDF file
func CreateSOPDocument(c *gin.Context) {
	userID, _ := c.Get("userID")

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Document file is required"})
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	targetDir := filepath.Join(uploadPath, "sop-documents")
	if err := os.MkdirAll(targetDir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	storedName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	storedPath := filepath.Join(targetDir, storedName)
	if err := c.SaveUploadedFile(file, storedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	description := c.PostForm("description")
	mimeType := file.Header.Get("Content-Type")
	size := file.Size
	now := time.Now()

	document := models.SOPDocument{
		Title:     title,
		FileName:  file.Filename,
		FilePath:  storedPath,
		FileSize:  &size,
		MimeType:  &mimeType,
		Status:    "active",
		CreatedBy: userID.(int),
		CreateAt:  now,
		UpdateAt:  now,
	}
	if description != "" {
		document.Description = &description
	}

	if err := config.DB.Create(&document).Error; err != nil {
		os.Remove(storedPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create SOP document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"document": document,
		"message":  "SOP document created successfully",
	})
}

// UpdateSOPDocument - admin only, metadata update (file replacement goes
// through delete + create)
func UpdateSOPDocument(c *gin.Context) {
	documentID := c.Param("id")

	var document models.SOPDocument
	if err := config.DB.Where("sop_document_id = ? AND delete_at IS NULL", documentID).
		First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "SOP document not found"})
		return
	}

	type sopDocumentUpdate struct {
		Title        *string `json:"title"`
		Description  *string `json:"description"`
		DisplayOrder *int    `json:"display_order"`
		Status       *string `json:"status"`
	}

	var req sopDocumentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		document.Title = *req.Title
	}
	if req.Description != nil {
		document.Description = req.Description
	}
	if req.DisplayOrder != nil {
		document.DisplayOrder = req.DisplayOrder
	}
	if req.Status != nil {
		if *req.Status != "active" && *req.Status != "inactive" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		document.Status = *req.Status
	}
	document.UpdateAt = time.Now()

	if err := config.DB.Save(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update SOP document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"document": document,
		"message":  "SOP document updated successfully",
	})
}

// DeleteSOPDocument - admin only, soft delete
func DeleteSOPDocument(c *gin.Context) {
	documentID := c.Param("id")

	var document models.SOPDocument
	if err := config.DB.Where("sop_document_id = ? AND delete_at IS NULL", documentID).
		First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "SOP document not found"})
		return
	}

	now := time.Now()
	document.DeleteAt = &now

	if err := config.DB.Save(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete SOP document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "SOP document deleted successfully",
	})
}
