package model

import "time"

// Token sets for the enumerated analysis fields. The empty string is always
// accepted and means the taster left the field unset.
const (
	ColorRed   = "red"
	ColorWhite = "white"
	ColorRose  = "rose"

	DensityLight  = "light"
	DensityMedium = "medium"
	DensityDeep   = "deep"

	ClarityClear = "clear"
	ClarityHazy  = "hazy"

	ConsistencyThin   = "thin"
	ConsistencyMedium = "medium"
	ConsistencyThick  = "thick"

	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"

	NumberFew      = "few"
	NumberModerate = "moderate"
	NumberMany     = "many"

	PersistenceShort  = "short"
	PersistenceMedium = "medium"
	PersistenceLong   = "long"

	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"

	ComplexitySimple   = "simple"
	ComplexityModerate = "moderate"
	ComplexityComplex  = "complex"

	QualityPoor      = "poor"
	QualityAverage   = "average"
	QualityExcellent = "excellent"

	BodyLight  = "light"
	BodyMedium = "medium"
	BodyFull   = "full"
)

// VisualAnalysis describes the appearance of a tasted wine. At most one
// exists per tasting.
type VisualAnalysis struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	TastingID         uint      `json:"tasting_id" gorm:"not null;uniqueIndex"`
	Color             string    `json:"color,omitempty" gorm:"size:50"`
	ColorDensity      string    `json:"color_density,omitempty" gorm:"size:50"`
	Clarity           string    `json:"clarity,omitempty" gorm:"size:50"`
	Consistency       string    `json:"consistency,omitempty" gorm:"size:50"`
	BubbleSize        string    `json:"bubble_size,omitempty" gorm:"size:50"`
	BubbleNumber      string    `json:"bubble_number,omitempty" gorm:"size:50"`
	BubblePersistence string    `json:"bubble_persistence,omitempty" gorm:"size:50"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// OlfactoryAnalysis describes the nose of a tasted wine. DominantAromas is
// free text; the other fields are enumerated.
type OlfactoryAnalysis struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	TastingID      uint      `json:"tasting_id" gorm:"not null;uniqueIndex"`
	Intensity      string    `json:"intensity,omitempty" gorm:"size:50"`
	Complexity     string    `json:"complexity,omitempty" gorm:"size:50"`
	Quality        string    `json:"quality,omitempty" gorm:"size:50"`
	DominantAromas string    `json:"dominant_aromas,omitempty" gorm:"size:255"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GustatoryAnalysis describes the palate of a tasted wine.
type GustatoryAnalysis struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	TastingID     uint      `json:"tasting_id" gorm:"not null;uniqueIndex"`
	SugarQty      string    `json:"sugar_qty,omitempty" gorm:"size:50"`
	AlcoholQty    string    `json:"alcohol_qty,omitempty" gorm:"size:50"`
	AcidityQty    string    `json:"acidity_qty,omitempty" gorm:"size:50"`
	TanninQty     string    `json:"tannin_qty,omitempty" gorm:"size:50"`
	TanninQuality string    `json:"tannin_quality,omitempty" gorm:"size:50"`
	Balance       string    `json:"balance,omitempty" gorm:"size:50"`
	Body          string    `json:"body,omitempty" gorm:"size:50"`
	Persistence   string    `json:"persistence,omitempty" gorm:"size:50"`
	Quality       string    `json:"quality,omitempty" gorm:"size:50"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
