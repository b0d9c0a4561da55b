package services

import (
	"encoding/json"
	"fmt"

	"DF-DSGNR/internal"
	"DF-DSGNR/internal/compiler"
	"DF-DSGNR/internal/design"
	"DF-DSGNR/internal/generator"
	"DF-DSGNR/internal/models"

	"github.com/google/uuid"
)

type TemplateService struct{}

func NewTemplateService() *TemplateService {
	return &TemplateService{}
}

// CreateTemplate registers a template that renders the generated default
// layout until a design is saved for it. The artifacts are compiled from
// that default so the record is printable immediately.
func (s *TemplateService) CreateTemplate(name, voucherType string, flags generator.Flags, pageWidth float64) (*models.PrintTemplate, error) {
	if !models.IsAllowedVoucherType(voucherType) {
		return nil, fmt.Errorf("unknown voucher type: %s", voucherType)
	}

	settingsJSON, err := json.Marshal(flags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}

	artifacts := compiler.Compile(generator.Generate(flags, normalizeWidth(pageWidth)))

	template := &models.PrintTemplate{
		ID:          uuid.New().String(),
		Name:        name,
		VoucherType: voucherType,
		HeaderHTML:  artifacts.HeaderHTML,
		BodyHTML:    artifacts.BodyHTML,
		FooterHTML:  artifacts.FooterHTML,
		StylesCSS:   artifacts.StylesCSS,
		Settings:    string(settingsJSON),
	}

	if err := internal.DB.Create(template).Error; err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	return template, nil
}

// SaveTemplate persists a customized design together with freshly compiled
// artifacts, so the stored markup never lags the stored design. A new record
// is created when templateID is empty.
func (s *TemplateService) SaveTemplate(templateID, name, voucherType string, d design.Design, flags generator.Flags) (*models.PrintTemplate, error) {
	if !models.IsAllowedVoucherType(voucherType) {
		return nil, fmt.Errorf("unknown voucher type: %s", voucherType)
	}

	designJSON, err := design.ExportDesign(d)
	if err != nil {
		return nil, err
	}

	settingsJSON, err := json.Marshal(flags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}

	artifacts := compiler.Compile(d)

	if templateID == "" {
		template := &models.PrintTemplate{
			ID:          uuid.New().String(),
			Name:        name,
			VoucherType: voucherType,
			DesignJSON:  designJSON,
			HeaderHTML:  artifacts.HeaderHTML,
			BodyHTML:    artifacts.BodyHTML,
			FooterHTML:  artifacts.FooterHTML,
			StylesCSS:   artifacts.StylesCSS,
			Settings:    string(settingsJSON),
		}
		if err := internal.DB.Create(template).Error; err != nil {
			return nil, fmt.Errorf("failed to save template: %w", err)
		}
		return template, nil
	}

	template, err := s.GetTemplate(templateID)
	if err != nil {
		return nil, err
	}

	template.Name = name
	template.VoucherType = voucherType
	template.DesignJSON = designJSON
	template.HeaderHTML = artifacts.HeaderHTML
	template.BodyHTML = artifacts.BodyHTML
	template.FooterHTML = artifacts.FooterHTML
	template.StylesCSS = artifacts.StylesCSS
	template.Settings = string(settingsJSON)

	if err := internal.DB.Save(template).Error; err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	return template, nil
}

func (s *TemplateService) GetTemplate(templateID string) (*models.PrintTemplate, error) {
	var template models.PrintTemplate
	if err := internal.DB.First(&template, "id = ?", templateID).Error; err != nil {
		return nil, fmt.Errorf("template not found: %w", err)
	}
	return &template, nil
}

func (s *TemplateService) ListTemplates(voucherType string) ([]models.PrintTemplate, error) {
	var templates []models.PrintTemplate

	query := internal.DB.Order("updated_at DESC")
	if voucherType != "" {
		query = query.Where("voucher_type = ?", voucherType)
	}

	if err := query.Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch templates: %w", err)
	}

	return templates, nil
}

func (s *TemplateService) DeleteTemplate(templateID string) error {
	template, err := s.GetTemplate(templateID)
	if err != nil {
		return err
	}

	// Soft delete from database
	return internal.DB.Delete(template).Error
}

// LoadDesign returns the template's display name, its stored design (nil when
// the template was never customized) and its feature flags.
func (s *TemplateService) LoadDesign(templateID string) (string, *design.Design, generator.Flags, error) {
	template, err := s.GetTemplate(templateID)
	if err != nil {
		return "", nil, generator.DefaultFlags(), err
	}

	flags := generator.DefaultFlags()
	if template.Settings != "" {
		if err := json.Unmarshal([]byte(template.Settings), &flags); err != nil {
			return "", nil, flags, fmt.Errorf("failed to unmarshal settings: %w", err)
		}
	}

	if template.DesignJSON == "" {
		return template.Name, nil, flags, nil
	}

	d, err := design.ImportDesign(template.DesignJSON)
	if err != nil {
		return "", nil, flags, err
	}

	return template.Name, &d, flags, nil
}

// DesignFor resolves the design a template renders with: the stored one, or
// the generated default when none was ever saved.
func (s *TemplateService) DesignFor(templateID string, pageWidth float64) (design.Design, error) {
	_, stored, flags, err := s.LoadDesign(templateID)
	if err != nil {
		return design.Design{}, err
	}

	if stored != nil {
		return *stored, nil
	}

	return generator.Generate(flags, normalizeWidth(pageWidth)), nil
}

// RecompileTemplate refreshes the stored artifacts from the template's
// current design and returns the updated record.
func (s *TemplateService) RecompileTemplate(templateID string, pageWidth float64) (*models.PrintTemplate, error) {
	template, err := s.GetTemplate(templateID)
	if err != nil {
		return nil, err
	}

	d, err := s.DesignFor(templateID, pageWidth)
	if err != nil {
		return nil, err
	}

	artifacts := compiler.Compile(d)
	template.HeaderHTML = artifacts.HeaderHTML
	template.BodyHTML = artifacts.BodyHTML
	template.FooterHTML = artifacts.FooterHTML
	template.StylesCSS = artifacts.StylesCSS

	if err := internal.DB.Save(template).Error; err != nil {
		return nil, fmt.Errorf("failed to save compiled artifacts: %w", err)
	}

	return template, nil
}

// PreviewHTML assembles the template's artifacts into one standalone page.
// Placeholders are left unsubstituted.
func (s *TemplateService) PreviewHTML(templateID string, pageWidth float64) (string, error) {
	d, err := s.DesignFor(templateID, pageWidth)
	if err != nil {
		return "", err
	}
	return compiler.PreviewDocument(d), nil
}

// SetDefaultTemplate marks one template as the default for its voucher type
// and clears the flag on every other template of that type.
func (s *TemplateService) SetDefaultTemplate(templateID string) (*models.PrintTemplate, error) {
	template, err := s.GetTemplate(templateID)
	if err != nil {
		return nil, err
	}

	if err := internal.DB.Model(&models.PrintTemplate{}).
		Where("voucher_type = ? AND id <> ?", template.VoucherType, template.ID).
		Update("is_default", false).Error; err != nil {
		return nil, fmt.Errorf("failed to clear default flags: %w", err)
	}

	if err := internal.DB.Model(template).Update("is_default", true).Error; err != nil {
		return nil, fmt.Errorf("failed to set default flag: %w", err)
	}

	template.IsDefault = true
	return template, nil
}

func normalizeWidth(pageWidth float64) float64 {
	if pageWidth <= 0 {
		return design.DefaultPage().Width
	}
	return pageWidth
}
