package service

import (
	"fmt"

	"vinolog/internal/errors"
	"vinolog/internal/model"
)

// AnalysisValidator checks enumerated analysis fields against their closed
// token sets. The empty string always passes: it means the taster left the
// field unset.
type AnalysisValidator struct{}

// NewAnalysisValidator creates a new analysis validator.
func NewAnalysisValidator() *AnalysisValidator {
	return &AnalysisValidator{}
}

// ValidateVisual validates all enumerated fields of a visual analysis.
func (v *AnalysisValidator) ValidateVisual(a *model.VisualAnalysis) error {
	checks := []fieldCheck{
		{"color", a.Color, []string{model.ColorRed, model.ColorWhite, model.ColorRose}},
		{"color_density", a.ColorDensity, []string{model.DensityLight, model.DensityMedium, model.DensityDeep}},
		{"clarity", a.Clarity, []string{model.ClarityClear, model.ClarityHazy}},
		{"consistency", a.Consistency, []string{model.ConsistencyThin, model.ConsistencyMedium, model.ConsistencyThick}},
		{"bubble_size", a.BubbleSize, []string{model.SizeSmall, model.SizeMedium, model.SizeLarge}},
		{"bubble_number", a.BubbleNumber, []string{model.NumberFew, model.NumberModerate, model.NumberMany}},
		{"bubble_persistence", a.BubblePersistence, []string{model.PersistenceShort, model.PersistenceMedium, model.PersistenceLong}},
	}
	return validateFields(checks)
}

// ValidateOlfactory validates the enumerated fields of an olfactory
// analysis. DominantAromas is free text and not checked.
func (v *AnalysisValidator) ValidateOlfactory(a *model.OlfactoryAnalysis) error {
	checks := []fieldCheck{
		{"intensity", a.Intensity, []string{model.LevelLow, model.LevelMedium, model.LevelHigh}},
		{"complexity", a.Complexity, []string{model.ComplexitySimple, model.ComplexityModerate, model.ComplexityComplex}},
		{"quality", a.Quality, []string{model.QualityPoor, model.QualityAverage, model.QualityExcellent}},
	}
	return validateFields(checks)
}

// ValidateGustatory validates all enumerated fields of a gustatory analysis.
func (v *AnalysisValidator) ValidateGustatory(a *model.GustatoryAnalysis) error {
	levels := []string{model.LevelLow, model.LevelMedium, model.LevelHigh}
	qualities := []string{model.QualityPoor, model.QualityAverage, model.QualityExcellent}
	checks := []fieldCheck{
		{"sugar_qty", a.SugarQty, levels},
		{"alcohol_qty", a.AlcoholQty, levels},
		{"acidity_qty", a.AcidityQty, levels},
		{"tannin_qty", a.TanninQty, levels},
		{"tannin_quality", a.TanninQuality, qualities},
		{"balance", a.Balance, qualities},
		{"body", a.Body, []string{model.BodyLight, model.BodyMedium, model.BodyFull}},
		{"persistence", a.Persistence, []string{model.PersistenceShort, model.PersistenceMedium, model.PersistenceLong}},
		{"quality", a.Quality, qualities},
	}
	return validateFields(checks)
}

type fieldCheck struct {
	name    string
	value   string
	allowed []string
}

func validateFields(checks []fieldCheck) error {
	for _, c := range checks {
		if !oneOf(c.value, c.allowed) {
			return fmt.Errorf("%w: %s must be one of %v, got %q", errors.ErrValidation, c.name, c.allowed, c.value)
		}
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	if value == "" {
		return true
	}
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
