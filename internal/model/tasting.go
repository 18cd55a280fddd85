package model

import "time"

// Tasting represents a single recorded session of evaluating one wine on one
// occasion. It carries at most one analysis of each kind.
type Tasting struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	WineID      uint      `json:"wine_id" gorm:"not null;index"`
	TastingDate time.Time `json:"tasting_date" gorm:"type:date"`
	Location    string    `json:"location,omitempty" gorm:"size:150"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Wine              *Wine              `json:"wine,omitempty" gorm:"foreignKey:WineID"`
	VisualAnalysis    *VisualAnalysis    `json:"visual_analysis,omitempty" gorm:"foreignKey:TastingID"`
	OlfactoryAnalysis *OlfactoryAnalysis `json:"olfactory_analysis,omitempty" gorm:"foreignKey:TastingID"`
	GustatoryAnalysis *GustatoryAnalysis `json:"gustatory_analysis,omitempty" gorm:"foreignKey:TastingID"`
}
