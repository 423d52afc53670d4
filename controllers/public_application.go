// controllers/public_application.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"sikap-api/services"

	"github.com/gin-gonic/gin"
)

// SubmitApplication handles the unauthenticated intake form. Validation and
// the atomic multi-record write live in the lifecycle service; this handler
// only binds the body and translates errors.
func SubmitApplication(c *gin.Context) {
	var input services.SubmitApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := getLifecycleService().Submit(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingRequiredFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		case errors.Is(err, services.ErrInvalidEmailFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		case errors.Is(err, services.ErrInvalidPhoneFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone format"})
		case errors.Is(err, services.ErrInvalidApplicationType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application type"})
		default:
			log.Printf("Failed to submit application: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"trackingNumber": result.TrackingNumber,
		"publicToken":    result.PublicToken,
		"applicationId":  result.ApplicationID,
		"message":        "Permohonan kerja sama berhasil diajukan. Simpan nomor tracking Anda.",
	})
}
