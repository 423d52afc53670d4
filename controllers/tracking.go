// controllers/tracking.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"sikap-api/services"

	"github.com/gin-gonic/gin"
)

// TrackApplication serves the public tracking page. No authentication; the
// tracking number is the lookup key and a not-found is distinguished from a
// non-public record so a typo is never mistaken for a private application.
func TrackApplication(c *gin.Context) {
	trackingNumber := c.Param("trackingNumber")

	if !services.TrackingNumberPattern.MatchString(trackingNumber) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found with this tracking number"})
		return
	}

	view, err := getTrackingService().Track(trackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found with this tracking number"})
		case errors.Is(err, services.ErrNotPublicSubmission):
			c.JSON(http.StatusForbidden, gin.H{"error": "Application is not accessible publicly"})
		default:
			log.Printf("Failed to track application %s: %v", trackingNumber, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch application"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"application": view,
	})
}
