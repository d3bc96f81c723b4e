package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attachment records metadata for a file whose payload lives in blob
// storage. BlobURI is written once at creation and never updated.
type Attachment struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primarykey"`
	FileName     string    `json:"file_name" gorm:"not null"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	BlobURI      string    `json:"blob_uri" gorm:"not null"`
	UploadedByID uuid.UUID `json:"uploaded_by_id" gorm:"type:uuid;not null;index"`
	UploadedBy   User      `json:"uploaded_by" gorm:"foreignKey:UploadedByID"`
	UploadedAt   time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

func (a *Attachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
