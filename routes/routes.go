package routes

import (
	"sikap-api/controllers"
	"sikap-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "SIKAP API is running",
				})
			})

			// Public intake form + tracking
			public.POST("/applications", controllers.SubmitApplication)
			public.GET("/track/:trackingNumber", controllers.TrackApplication)

			// Lookup data for the intake form
			public.GET("/cooperation-types", controllers.GetCooperationTypes)
			public.GET("/cooperation-categories", controllers.GetCooperationCategories)
			public.GET("/institutions", controllers.GetInstitutions)

			// Public site content
			public.GET("/partners", controllers.GetPartners)
			public.GET("/legal-documents", controllers.GetLegalDocuments)
			public.GET("/sop-documents", controllers.GetSOPDocuments)
			public.GET("/settings", controllers.GetSettings)

			// Document access shared between dashboard users (JWT) and
			// applicants (public token)
			public.POST("/applications/:id/documents", middleware.OptionalAuthMiddleware(), controllers.UploadApplicationDocument)
			public.GET("/documents/:document_id/download", middleware.OptionalAuthMiddleware(), controllers.DownloadDocument)
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Applications (dashboard)
			applications := protected.Group("/applications")
			{
				applications.GET("", controllers.GetApplications)
				applications.GET("/:id", controllers.GetApplication)
				applications.GET("/:id/documents", controllers.GetApplicationDocuments)
				applications.PUT("/:id/status", controllers.UpdateApplicationStatus)

				// Only admin can delete
				applications.DELETE("/:id", middleware.RequireRole(1), controllers.DeleteApplication) // 1 = admin
			}

			// Documents
			documents := protected.Group("/documents")
			{
				documents.DELETE("/:document_id", middleware.RequireRole(1), controllers.DeleteDocument)
			}

			// Cooperation records
			cooperations := protected.Group("/cooperations")
			{
				cooperations.GET("", controllers.GetCooperations)
				cooperations.GET("/:id", controllers.GetCooperation)
				cooperations.POST("", middleware.RequireRole(1), controllers.CreateCooperation)
				cooperations.PUT("/:id", middleware.RequireRole(1), controllers.UpdateCooperation)
				cooperations.DELETE("/:id", middleware.RequireRole(1), controllers.DeleteCooperation)
			}

			// Reference data management
			protected.POST("/institutions", middleware.RequireRole(1), controllers.CreateInstitution)

			// Partners
			partners := protected.Group("/partners")
			partners.Use(middleware.RequireRole(1))
			{
				partners.GET("/:id", controllers.GetPartner)
				partners.POST("", controllers.CreatePartner)
				partners.PUT("/:id", controllers.UpdatePartner)
				partners.DELETE("/:id", controllers.DeletePartner)
			}

			// Legal documents
			legalDocuments := protected.Group("/legal-documents")
			legalDocuments.Use(middleware.RequireRole(1))
			{
				legalDocuments.POST("", controllers.CreateLegalDocument)
				legalDocuments.PUT("/:id", controllers.UpdateLegalDocument)
				legalDocuments.DELETE("/:id", controllers.DeleteLegalDocument)
			}

			// SOP documents
			sopDocuments := protected.Group("/sop-documents")
			sopDocuments.Use(middleware.RequireRole(1))
			{
				sopDocuments.POST("", controllers.CreateSOPDocument)
				sopDocuments.PUT("/:id", controllers.UpdateSOPDocument)
				sopDocuments.DELETE("/:id", controllers.DeleteSOPDocument)
			}

			// Site settings
			protected.PUT("/settings", middleware.RequireRole(1), controllers.UpdateSettings)

			// Users
			users := protected.Group("/users")
			users.Use(middleware.RequireRole(1))
			{
				users.GET("", controllers.GetUsers)
				users.POST("", controllers.CreateUser)
				users.PUT("/:id", controllers.UpdateUser)
				users.DELETE("/:id", controllers.DeleteUser)
			}

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)
		}
	}
}
