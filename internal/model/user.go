package model

import "time"

// Roles assignable to a user. New registrations always get RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:150;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role,omitempty" gorm:"size:50;default:'user'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Wines    []Wine    `json:"wines,omitempty" gorm:"foreignKey:UserID"`
	Tastings []Tasting `json:"tastings,omitempty" gorm:"foreignKey:UserID"`
	Uploads  []Upload  `json:"uploads,omitempty" gorm:"foreignKey:UserID"`
}
