package model

import "time"

// Upload represents an image attached by a user, optionally linked to a wine
// in their catalog. Filename is the name the client sent; ObjectName is the
// key of the stored blob in the object store.
type Upload struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	WineID      *uint     `json:"wine_id,omitempty" gorm:"index"`
	Filename    string    `json:"filename" gorm:"size:255;not null"`
	ObjectName  string    `json:"-" gorm:"size:255;not null"`
	ContentType string    `json:"content_type,omitempty" gorm:"size:128"`
	UploadDate  time.Time `json:"upload_date" gorm:"autoCreateTime"`
}
