package models

import "time"

// UploadedFile records a file relayed to Google Drive on behalf of a session.
type UploadedFile struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Filename   string    `json:"filename" gorm:"size:255;not null"`
	DriveID    string    `json:"drive_id" gorm:"size:255"`
	DriveLink  string    `json:"drive_link" gorm:"size:2048;not null"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}
