package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kimo/alma-take-home-assignment/model"
	"github.com/kimo/alma-take-home-assignment/pkg/logger"
	"github.com/kimo/alma-take-home-assignment/schema"
	"github.com/kimo/alma-take-home-assignment/service"
)

type LeadHandler struct {
	store    *service.LeadStore
	storage  service.ResumeStorage
	pageSize int
}

func NewLeadHandler(store *service.LeadStore, storage service.ResumeStorage, pageSize int) *LeadHandler {
	return &LeadHandler{
		store:    store,
		storage:  storage,
		pageSize: pageSize,
	}
}

// Create handles a public intake submission (multipart form). On success
// it stores the optional resume file, creates the lead, and returns its
// identifier and status.
func (h *LeadHandler) Create(c *gin.Context) {
	form := &schema.LeadForm{
		FirstName:     c.PostForm("firstName"),
		LastName:      c.PostForm("lastName"),
		Email:         c.PostForm("email"),
		Country:       c.PostForm("country"),
		LinkedIn:      c.PostForm("linkedIn"),
		VisaInterests: parseVisaInterests(c.PostForm("visaInterests")),
		HelpMessage:   c.PostForm("helpMessage"),
	}

	if details := schema.ValidateLeadForm(form); details != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": details,
		})
		return
	}

	// Store the resume if one was attached and is non-empty
	var resumePath, resumeFileName string
	file, header, err := c.Request.FormFile("resume")
	if err == nil && header.Size > 0 {
		defer file.Close()

		path, err := h.storage.Save(c.Request.Context(), header.Filename, file, header.Size)
		if err != nil {
			logger.Error(c.Request.Context(), "failed to store resume", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store resume"})
			return
		}
		resumePath = path
		resumeFileName = header.Filename
	}

	lead := h.store.Create(service.CreateLeadParams{
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Email:          form.Email,
		Country:        form.Country,
		LinkedIn:       form.LinkedIn,
		VisaInterests:  form.VisaInterests,
		ResumePath:     resumePath,
		ResumeFileName: resumeFileName,
		HelpMessage:    form.HelpMessage,
	})

	logger.Info(c.Request.Context(), "lead created", "lead_id", lead.ID)

	c.JSON(http.StatusCreated, gin.H{
		"id":     lead.ID,
		"status": lead.Status,
	})
}

// parseVisaInterests decodes the JSON-encoded array the form posts.
// Absent, empty, or malformed input yields an empty slice, which then
// fails the at-least-one rule during validation.
func parseVisaInterests(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var interests []string
	if err := json.Unmarshal([]byte(raw), &interests); err != nil {
		return []string{}
	}
	return interests
}

// List returns a page of leads for the dashboard, filtered by status and
// by a case-insensitive name search. Totals reflect the filtered set.
func (h *LeadHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.pageSize)))
	if err != nil || limit < 1 {
		limit = h.pageSize
	}
	search := c.Query("search")
	status := c.Query("status")

	leads := h.store.GetAll()

	if status != "" && status != "all" {
		filtered := make([]model.Lead, 0, len(leads))
		for _, l := range leads {
			if l.Status == model.LeadStatus(status) {
				filtered = append(filtered, l)
			}
		}
		leads = filtered
	}

	if search != "" {
		query := strings.ToLower(search)
		filtered := make([]model.Lead, 0, len(leads))
		for _, l := range leads {
			if strings.Contains(strings.ToLower(l.FirstName), query) ||
				strings.Contains(strings.ToLower(l.LastName), query) {
				filtered = append(filtered, l)
			}
		}
		leads = filtered
	}

	total := len(leads)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"leads":      leads[start:end],
		"total":      total,
		"page":       page,
		"totalPages": totalPages,
	})
}

type updateStatusRequest struct {
	Status model.LeadStatus `json:"status"`
}

// UpdateStatus moves a lead between PENDING and REACHED_OUT.
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !model.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be PENDING or REACHED_OUT."})
		return
	}

	updated := h.store.UpdateStatus(id, req.Status)
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	logger.Info(c.Request.Context(), "lead status updated",
		"lead_id", updated.ID,
		"status", updated.Status,
	)

	c.JSON(http.StatusOK, gin.H{
		"id":     updated.ID,
		"status": updated.Status,
	})
}

// Download streams a lead's resume with an attachment disposition.
func (h *LeadHandler) Download(c *gin.Context) {
	id := c.Param("id")

	lead := h.store.GetByID(id)
	if lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	if !lead.HasResume() {
		c.JSON(http.StatusNotFound, gin.H{"error": "No resume uploaded"})
		return
	}

	reader, err := h.storage.Open(c.Request.Context(), lead.ResumePath)
	if err != nil {
		if errors.Is(err, service.ErrResumeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found on disk"})
			return
		}
		logger.Error(c.Request.Context(), "failed to open resume", "error", err, "lead_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read resume"})
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", reader, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", lead.ResumeFileName),
	})
}
