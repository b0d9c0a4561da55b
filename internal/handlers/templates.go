package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"DF-DSGNR/internal/compiler"
	"DF-DSGNR/internal/design"
	"DF-DSGNR/internal/generator"
	"DF-DSGNR/internal/models"
	"DF-DSGNR/internal/services"

	"github.com/gin-gonic/gin"
)

type TemplatesHandler struct {
	templates *services.TemplateService
	pdf       *services.PDFService
}

func NewTemplatesHandler(templates *services.TemplateService, pdf *services.PDFService) *TemplatesHandler {
	return &TemplatesHandler{
		templates: templates,
		pdf:       pdf,
	}
}

type CreateTemplateRequest struct {
	Name        string           `json:"name"`
	VoucherType string           `json:"voucher_type"`
	Settings    *generator.Flags `json:"settings"`
	PageWidth   float64          `json:"page_width"`
}

func (h *TemplatesHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template name is required"})
		return
	}
	if !models.IsAllowedVoucherType(req.VoucherType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown voucher type"})
		return
	}

	flags := generator.DefaultFlags()
	if req.Settings != nil {
		flags = *req.Settings
	}

	template, err := h.templates.CreateTemplate(req.Name, req.VoucherType, flags, req.PageWidth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *TemplatesHandler) ListTemplates(c *gin.Context) {
	voucherType := c.Query("voucher_type")
	if voucherType != "" && !models.IsAllowedVoucherType(voucherType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown voucher type"})
		return
	}

	templates, err := h.templates.ListTemplates(voucherType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates, "total": len(templates)})
}

func (h *TemplatesHandler) GetTemplate(c *gin.Context) {
	template, err := h.templates.GetTemplate(c.Param("templateId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, template)
}

type SaveTemplateRequest struct {
	Name        string           `json:"name"`
	VoucherType string           `json:"voucher_type"`
	Design      json.RawMessage  `json:"design"`
	Settings    *generator.Flags `json:"settings"`
}

func (h *TemplatesHandler) SaveTemplate(c *gin.Context) {
	templateID := c.Param("templateId")
	if _, err := h.templates.GetTemplate(templateID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	var req SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template name is required"})
		return
	}
	if !models.IsAllowedVoucherType(req.VoucherType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown voucher type"})
		return
	}
	if len(req.Design) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Design document is required"})
		return
	}

	d, err := design.ImportDesign(string(req.Design))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flags := generator.DefaultFlags()
	if req.Settings != nil {
		flags = *req.Settings
	}

	template, err := h.templates.SaveTemplate(templateID, req.Name, req.VoucherType, d, flags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save template"})
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *TemplatesHandler) DeleteTemplate(c *gin.Context) {
	if err := h.templates.DeleteTemplate(c.Param("templateId")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}

func (h *TemplatesHandler) SetDefaultTemplate(c *gin.Context) {
	template, err := h.templates.SetDefaultTemplate(c.Param("templateId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, template)
}

func (h *TemplatesHandler) GetDesign(c *gin.Context) {
	templateID := c.Param("templateId")

	name, stored, flags, err := h.templates.LoadDesign(templateID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	var d design.Design
	if stored != nil {
		d = *stored
	} else {
		d = generator.Generate(flags, pageWidthQuery(c))
	}

	c.JSON(http.StatusOK, gin.H{
		"name":      name,
		"design":    d,
		"settings":  flags,
		"is_custom": stored != nil,
	})
}

func (h *TemplatesHandler) CompileTemplate(c *gin.Context) {
	templateID := c.Param("templateId")
	if _, err := h.templates.GetTemplate(templateID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	template, err := h.templates.RecompileTemplate(templateID, pageWidthQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compile template"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"header_html": template.HeaderHTML,
		"body_html":   template.BodyHTML,
		"footer_html": template.FooterHTML,
		"styles_css":  template.StylesCSS,
	})
}

func (h *TemplatesHandler) PreviewTemplate(c *gin.Context) {
	templateID := c.Param("templateId")
	if _, err := h.templates.GetTemplate(templateID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	html, err := h.templates.PreviewHTML(templateID, pageWidthQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build preview"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *TemplatesHandler) PreviewTemplatePDF(c *gin.Context) {
	templateID := c.Param("templateId")
	if _, err := h.templates.GetTemplate(templateID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	d, err := h.templates.DesignFor(templateID, pageWidthQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build preview"})
		return
	}

	reader, err := h.pdf.ConvertPreviewToPDF(c.Request.Context(), compiler.PreviewDocument(d), d.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert preview to PDF"})
		return
	}
	defer reader.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%s.pdf", templateID),
	}
	c.DataFromReader(http.StatusOK, -1, "application/pdf", reader, extraHeaders)
}

type GenerateDesignRequest struct {
	Settings  *generator.Flags `json:"settings"`
	PageWidth float64          `json:"page_width"`
}

// GenerateDefaultDesign builds a default design from feature flags without
// persisting anything.
func (h *TemplatesHandler) GenerateDefaultDesign(c *gin.Context) {
	var req GenerateDesignRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}
	}

	flags := generator.DefaultFlags()
	if req.Settings != nil {
		flags = *req.Settings
	}

	width := req.PageWidth
	if width <= 0 {
		width = design.DefaultPage().Width
	}

	d := generator.Generate(flags, width)
	c.JSON(http.StatusOK, gin.H{"design": d, "settings": flags})
}

func pageWidthQuery(c *gin.Context) float64 {
	width, err := strconv.ParseFloat(c.DefaultQuery("page_width", "0"), 64)
	if err != nil || width <= 0 {
		return design.DefaultPage().Width
	}
	return width
}
