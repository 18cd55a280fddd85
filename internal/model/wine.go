package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wine represents a bottle in a user's personal catalog. Only the owning
// user may read or mutate it; UserID never changes after creation.
type Wine struct {
	ID       uint             `json:"id" gorm:"primaryKey"`
	UserID   uint             `json:"user_id" gorm:"not null;index"`
	Name     string           `json:"name" gorm:"size:150;not null"`
	Year     *int             `json:"year,omitempty"`
	Type     string           `json:"type,omitempty" gorm:"size:100"`
	Region   string           `json:"region,omitempty" gorm:"size:100"`
	Alcohol  *float64         `json:"alcohol,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty" gorm:"type:decimal(10,2)"`
	Producer string           `json:"producer,omitempty" gorm:"size:150"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relations
	Tastings []Tasting `json:"tastings,omitempty" gorm:"foreignKey:WineID"`
	Uploads  []Upload  `json:"uploads,omitempty" gorm:"foreignKey:WineID"`
}
