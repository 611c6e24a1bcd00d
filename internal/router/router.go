package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mithramani/vivaha-backend/config"
	"github.com/mithramani/vivaha-backend/internal/app/controller"
	"github.com/mithramani/vivaha-backend/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	catalogController *controller.CatalogController
	inquiryController *controller.InquiryController
	uploadController  *controller.UploadController
	config            *config.Config
}

func NewRouter(
	catalogController *controller.CatalogController,
	inquiryController *controller.InquiryController,
	uploadController *controller.UploadController,
	cfg *config.Config,
) *Router {
	return &Router{
		catalogController: catalogController,
		inquiryController: inquiryController,
		uploadController:  uploadController,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "VIVAHA API is running",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		vendors := v1.Group("/vendors")
		{
			vendors.GET("", r.catalogController.ListVendors)
			vendors.GET("/category/:category/location/:location", r.catalogController.ListVendorsByCategoryLocation)
			vendors.POST("", r.catalogController.CreateVendor)
		}

		// Singular profile route, keyed by slug rather than numeric id
		v1.GET("/vendor/:slug", r.catalogController.GetVendorBySlug)

		v1.GET("/categories", r.catalogController.ListCategories)
		v1.GET("/locations", r.catalogController.ListLocations)

		inquiries := v1.Group("/contact-inquiries")
		{
			inquiries.POST("", r.inquiryController.SubmitInquiry)
			inquiries.GET("", r.inquiryController.ListInquiries)
		}

		if r.uploadController != nil {
			uploads := v1.Group("/uploads")
			{
				uploads.POST("/portfolio-image", r.uploadController.GeneratePresignedURL)
			}
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
