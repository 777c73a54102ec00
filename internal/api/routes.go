package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jinwf531135-cmd/bi-leads/internal/database"
	"github.com/jinwf531135-cmd/bi-leads/internal/logger"
	"github.com/jinwf531135-cmd/bi-leads/internal/services"
	"github.com/jinwf531135-cmd/bi-leads/internal/storage"
	"github.com/jinwf531135-cmd/bi-leads/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *database.DB, cfg *config.Config) error {
	attachments, err := storage.NewAttachmentStore(cfg.UploadsDir)
	if err != nil {
		return fmt.Errorf("failed to create attachment store: %w", err)
	}

	svcs := services.NewServices(db.DB)

	leadsHandler := NewLeadsHandler(svcs.Lead, svcs.Export, attachments, logger.NewSimpleLogger())
	healthHandler := NewHealthHandler(db)

	// Stored attachments are served straight off disk
	r.Static("/uploads", attachments.Dir())

	api := r.Group("/api")
	{
		// Landing page submission
		api.POST("/lead", leadsHandler.SubmitLead)

		// Admin surface
		api.GET("/leads", leadsHandler.ListLeads)
		api.GET("/leads/stats", leadsHandler.GetLeadStats)
		api.DELETE("/leads/:id", leadsHandler.DeleteLead)
		api.GET("/leads-export", leadsHandler.ExportLeads)

		api.GET("/health", healthHandler.GetHealth)
	}

	return nil
}
