// controllers/legal_document.go
package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sikap-api/config"
	"sikap-api/models"

	"github.com/gin-gonic/gin"
)

// ===== LEGAL DOCUMENT CONTROLLERS =====

var legalDocumentCategories = map[string]bool{
	"undang_undang":        true,
	"peraturan_pemerintah": true,
	"peraturan_daerah":     true,
	"peraturan_walikota":   true,
	"lainnya":              true,
}

// GetLegalDocuments - list dasar hukum (public shows active only)
func GetLegalDocuments(c *gin.Context) {
	category := c.Query("category")
	activeOnly := c.Query("active_only") == "true"

	query := config.DB.Model(&models.LegalDocument{}).
		Preload("Creator").
		Where("delete_at IS NULL")

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if activeOnly {
		query = query.Where("status = ?", "active")
	}

	query = query.
		Order("display_order IS NULL, display_order ASC").
		Order("year DESC, update_at DESC")

	var documents []models.LegalDocument
	if err := query.Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch legal documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"documents": documents,
		"total":     len(documents),
	})
}

// CreateLegalDocument - admin only, multipart form with PDF file
func CreateLegalDocument(c *gin.Context) {
	userID, _ := c.Get("userID")

	title := strings.TrimSpace(c.PostForm("title"))
	documentNumber := strings.TrimSpace(c.PostForm("document_number"))
	category := c.DefaultPostForm("category", "lainnya")
	year, _ := strconv.Atoi(c.PostForm("year"))

	if title == "" || documentNumber == "" || year == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if !legalDocumentCategories[category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
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
	targetDir := filepath.Join(uploadPath, "legal-documents")
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

	document := models.LegalDocument{
		Title:          title,
		DocumentNumber: documentNumber,
		Year:           year,
		Category:       category,
		FileName:       file.Filename,
		FilePath:       storedPath,
		FileSize:       &size,
		MimeType:       &mimeType,
		Status:         "active",
		CreatedBy:      userID.(int),
		CreateAt:       now,
		UpdateAt:       now,
	}
	if description != "" {
		document.Description = &description
	}

	if err := config.DB.Create(&document).Error; err != nil {
		os.Remove(storedPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create legal document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"document": document,
		"message":  "Legal document created successfully",
	})
}

// UpdateLegalDocument - admin only, metadata update (file replacement goes
// through delete + create)
func UpdateLegalDocument(c *gin.Context) {
	documentID := c.Param("id")

	var document models.LegalDocument
	if err := config.DB.Where("legal_document_id = ? AND delete_at IS NULL", documentID).
		First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Legal document not found"})
		return
	}

	type legalDocumentUpdate struct {
		Title          *string `json:"title"`
		DocumentNumber *string `json:"document_number"`
		Year           *int    `json:"year"`
		Description    *string `json:"description"`
		Category       *string `json:"category"`
		DisplayOrder   *int    `json:"display_order"`
		Status         *string `json:"status"`
	}

	var req legalDocumentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title != nil {
		document.Title = *req.Title
	}
	if req.DocumentNumber != nil {
		document.DocumentNumber = *req.DocumentNumber
	}
	if req.Year != nil {
		document.Year = *req.Year
	}
	if req.Description != nil {
		document.Description = req.Description
	}
	if req.Category != nil {
		if !legalDocumentCategories[*req.Category] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		document.Category = *req.Category
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update legal document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"document": document,
		"message":  "Legal document updated successfully",
	})
}

// DeleteLegalDocument - admin only, soft delete
func DeleteLegalDocument(c *gin.Context) {
	documentID := c.Param("id")

	var document models.LegalDocument
	if err := config.DB.Where("legal_document_id = ? AND delete_at IS NULL", documentID).
		First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Legal document not found"})
		return
	}

	now := time.Now()
	document.DeleteAt = &now

	if err := config.DB.Save(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete legal document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Legal document deleted successfully",
	})
}
