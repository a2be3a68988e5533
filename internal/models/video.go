package models

import "gorm.io/gorm"

// Video represents an ingested video in the catalog.
// The VideoID is the join key between the media file on disk and the
// annotation ledger; it is minted once at ingestion and never changes.
type Video struct {
	gorm.Model
	VideoID   string `json:"video_id" gorm:"uniqueIndex;not null"`
	SourceURL string `json:"source_url" gorm:"not null"`
	Title     string `json:"title"`
	FilePath  string `json:"file_path" gorm:"not null"`
}

// TableName returns the table name for the Video model
func (Video) TableName() string {
	return "videos"
}
