// controllers/document.go
package controllers

import (
	"crypto/sha256"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"sikap-api/config"
	"sikap-api/models"

	"github.com/gin-gonic/gin"
)

// ===== APPLICATION DOCUMENT CONTROLLERS =====

const maxDocumentSize = 10 * 1024 * 1024 // 10 MB

// UploadApplicationDocument attaches a file to an application. Admin users
// upload through the dashboard; applicants may upload by presenting the
// public token issued at submission.
func UploadApplicationDocument(c *gin.Context) {
	applicationID := c.Param("id")

	var application models.Application
	if err := config.DB.Where("application_id = ? AND delete_at IS NULL", applicationID).
		First(&application).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	var uploadedBy *int
	if userID, authenticated := c.Get("userID"); authenticated {
		if id, ok := userID.(int); ok {
			uploadedBy = &id
		}
	} else {
		token := c.Query("token")
		if token == "" || token != application.PublicToken {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid public token"})
			return
		}
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if file.Size > maxDocumentSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 10MB limit"})
		return
	}

	document := models.ApplicationDocument{
		ApplicationID:    application.ApplicationID,
		OriginalFilename: file.Filename,
		FileType:         file.Header.Get("Content-Type"),
		FileSize:         file.Size,
	}
	if !document.IsValidDocumentType() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	fileHash, err := generateFileHash(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	targetDir := filepath.Join(uploadPath, "applications", application.TrackingNumber)
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

	document.StoredPath = storedPath
	document.FileHash = fileHash
	document.UploadedBy = uploadedBy
	document.UploadedAt = time.Now()

	if err := config.DB.Create(&document).Error; err != nil {
		os.Remove(storedPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"document": document,
		"message":  "Document uploaded successfully",
	})
}

// GetApplicationDocuments lists document metadata for an application.
func GetApplicationDocuments(c *gin.Context) {
	applicationID := c.Param("id")

	var documents []models.ApplicationDocument
	if err := config.DB.
		Where("application_id = ? AND delete_at IS NULL", applicationID).
		Order("uploaded_at DESC").
		Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"documents": documents,
		"total":     len(documents),
	})
}

// DownloadDocument streams document bytes. Dashboard users pass the JWT;
// public access requires the application's public token.
func DownloadDocument(c *gin.Context) {
	documentID := c.Param("document_id")

	var document models.ApplicationDocument
	if err := config.DB.Preload("Application").
		Where("document_id = ? AND delete_at IS NULL", documentID).
		First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if _, authenticated := c.Get("userID"); !authenticated {
		token := c.Query("token")
		if token == "" || token != document.Application.PublicToken {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid public token"})
			return
		}
	}

	if _, err := os.Stat(document.StoredPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found on server"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", document.OriginalFilename))
	c.Header("Content-Type", document.FileType)
	c.File(document.StoredPath)
}

// DeleteDocument removes a document. Admin only, soft delete.
func DeleteDocument(c *gin.Context) {
	documentID := c.Param("document_id")

	var document models.ApplicationDocument
	if err := config.DB.Where("document_id = ? AND delete_at IS NULL", documentID).
		First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	now := time.Now()
	document.DeleteAt = &now

	if err := config.DB.Save(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Document deleted successfully",
	})
}

// generateFileHash creates SHA256 hash of file content
func generateFileHash(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, src); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
