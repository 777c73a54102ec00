package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinwf531135-cmd/bi-leads/internal/logger"
	"github.com/jinwf531135-cmd/bi-leads/internal/models"
	"github.com/jinwf531135-cmd/bi-leads/internal/repository"
	"github.com/jinwf531135-cmd/bi-leads/internal/services"
	"github.com/jinwf531135-cmd/bi-leads/internal/storage"
)

// LeadsHandler handles lead capture, listing, deletion and export
type LeadsHandler struct {
	leadService   services.LeadService
	exportService *services.LeadExportService
	attachments   *storage.AttachmentStore
	log           logger.Logger
}

// NewLeadsHandler creates a new leads handler
func NewLeadsHandler(leadService services.LeadService, exportService *services.LeadExportService, attachments *storage.AttachmentStore, log logger.Logger) *LeadsHandler {
	return &LeadsHandler{
		leadService:   leadService,
		exportService: exportService,
		attachments:   attachments,
		log:           log,
	}
}

// SubmitLead accepts a landing-page form submission, scores it and persists
// the lead. An optional attachment file is stored under a generated name.
// No field is required; empty submissions are accepted and score zero.
func (h *LeadsHandler) SubmitLead(c *gin.Context) {
	var form models.LeadSubmission
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	attachmentName := ""
	if file, err := c.FormFile("attachment"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read attachment: " + err.Error()})
			return
		}
		defer src.Close()

		attachmentName, err = h.attachments.Save(src, file.Filename)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store attachment: " + err.Error()})
			return
		}
	}

	lead, err := h.leadService.Submit(&form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save lead: " + err.Error()})
		return
	}

	response := gin.H{
		"success": true,
		"id":      lead.ID,
		"score":   lead.Score,
	}
	if attachmentName != "" {
		response["attachment"] = attachmentName
	}
	c.JSON(http.StatusCreated, response)
}

// ListLeads returns leads matching optional minScore/source filters, most
// recent first.
func (h *LeadsHandler) ListLeads(c *gin.Context) {
	filter := h.parseFilterFromQuery(c)

	leads, err := h.leadService.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list leads: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads":     leads,
		"count":     len(leads),
		"filter":    filter,
		"timestamp": time.Now(),
	})
}

// GetLeadStats returns aggregate statistics about stored leads
func (h *LeadsHandler) GetLeadStats(c *gin.Context) {
	filter := h.parseFilterFromQuery(c)

	stats, err := h.leadService.Stats(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get lead statistics: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":     stats,
		"filter":    filter,
		"timestamp": time.Now(),
	})
}

// DeleteLead removes a lead by id. Deleting an id that does not exist
// responds with the same success shape as deleting a live one.
func (h *LeadsHandler) DeleteLead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead id"})
		return
	}

	if err := h.leadService.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportLeads streams a full dump of the lead table as a download, CSV by
// default or JSON via ?format=json.
func (h *LeadsHandler) ExportLeads(c *gin.Context) {
	var format services.ExportFormat
	// An absent or empty format parameter both mean CSV
	switch c.Query("format") {
	case "", "csv":
		format = services.FormatCSV
	case "json":
		format = services.FormatJSON
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid format. Supported formats: csv, json"})
		return
	}

	data, err := h.exportService.ExportAll(format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export leads: " + err.Error()})
		return
	}

	switch format {
	case services.FormatJSON:
		c.Header("Content-Disposition", `attachment; filename="leads.json"`)
		c.Data(http.StatusOK, "application/json", data)
	default:
		c.Header("Content-Disposition", `attachment; filename="leads.csv"`)
		c.Data(http.StatusOK, "text/csv;charset=utf-8", data)
	}
}

// parseFilterFromQuery parses the optional minScore/source predicates. An
// unparsable minScore is ignored rather than rejected.
func (h *LeadsHandler) parseFilterFromQuery(c *gin.Context) repository.LeadFilter {
	filter := repository.LeadFilter{}

	if minScore := c.Query("minScore"); minScore != "" {
		if parsed, err := strconv.Atoi(minScore); err == nil {
			filter.MinScore = &parsed
		} else {
			h.log.Warn("ignoring unparsable minScore", "value", minScore)
		}
	}

	filter.Source = c.Query("source")

	return filter
}
