// controllers/services.go - shared service wiring for handlers
package controllers

import (
	"os"
	"sync"
	"time"

	"sikap-api/config"
	"sikap-api/services"
)

var (
	lifecycleOnce sync.Once
	lifecycleSvc  *services.LifecycleService

	trackingOnce sync.Once
	trackingSvc  *services.TrackingService

	settingsCache = services.NewSettingsCache(5 * time.Minute)
)

func getLifecycleService() *services.LifecycleService {
	lifecycleOnce.Do(func() {
		var sender services.EmailSender = services.NoopSender{}
		if os.Getenv("SMTP_HOST") != "" {
			sender = services.SMTPSender{}
		}
		lifecycleSvc = services.NewLifecycleService(config.DB, sender)
	})
	return lifecycleSvc
}

func getTrackingService() *services.TrackingService {
	trackingOnce.Do(func() {
		trackingSvc = services.NewTrackingService(config.DB)
	})
	return trackingSvc
}
