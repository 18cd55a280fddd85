package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vinolog/internal/errors"
	"vinolog/internal/model"
)

func TestAnalysisValidator_ValidateVisual(t *testing.T) {
	v := NewAnalysisValidator()

	tests := []struct {
		name     string
		analysis model.VisualAnalysis
		wantErr  bool
	}{
		{
			name: "all tokens valid",
			analysis: model.VisualAnalysis{
				Color:             model.ColorRose,
				ColorDensity:      model.DensityLight,
				Clarity:           model.ClarityHazy,
				Consistency:       model.ConsistencyThick,
				BubbleSize:        model.SizeSmall,
				BubbleNumber:      model.NumberMany,
				BubblePersistence: model.PersistenceShort,
			},
		},
		{name: "everything unset"},
		{name: "bad color", analysis: model.VisualAnalysis{Color: "purple"}, wantErr: true},
		{name: "bad consistency", analysis: model.VisualAnalysis{Consistency: "syrupy"}, wantErr: true},
		{name: "token from another field", analysis: model.VisualAnalysis{Clarity: model.ColorRed}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateVisual(&tt.analysis)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalysisValidator_ValidateOlfactory(t *testing.T) {
	v := NewAnalysisValidator()

	assert.NoError(t, v.ValidateOlfactory(&model.OlfactoryAnalysis{
		Intensity:      model.LevelMedium,
		Complexity:     model.ComplexityModerate,
		Quality:        model.QualityAverage,
		DominantAromas: "green apple, flint",
	}))

	// Free text is never validated.
	assert.NoError(t, v.ValidateOlfactory(&model.OlfactoryAnalysis{DominantAromas: "anything at all!"}))

	assert.ErrorIs(t, v.ValidateOlfactory(&model.OlfactoryAnalysis{Intensity: "overwhelming"}), errors.ErrValidation)
}

func TestAnalysisValidator_ValidateGustatory(t *testing.T) {
	v := NewAnalysisValidator()

	assert.NoError(t, v.ValidateGustatory(&model.GustatoryAnalysis{
		SugarQty:      model.LevelLow,
		AlcoholQty:    model.LevelMedium,
		AcidityQty:    model.LevelHigh,
		TanninQty:     model.LevelHigh,
		TanninQuality: model.QualityExcellent,
		Balance:       model.QualityAverage,
		Body:          model.BodyMedium,
		Persistence:   model.PersistenceMedium,
		Quality:       model.QualityExcellent,
	}))

	assert.ErrorIs(t, v.ValidateGustatory(&model.GustatoryAnalysis{Body: "huge"}), errors.ErrValidation)
	assert.ErrorIs(t, v.ValidateGustatory(&model.GustatoryAnalysis{Balance: model.LevelHigh}), errors.ErrValidation)
}
