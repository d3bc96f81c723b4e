package repositories

import (
	"propulse-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttachmentRepository interface {
	Create(attachment *models.Attachment) error
	GetByID(id uuid.UUID) (*models.Attachment, error)
	GetByUploader(uploaderID uuid.UUID) ([]models.Attachment, error)
}

type attachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(attachment *models.Attachment) error {
	return r.db.Create(attachment).Error
}

func (r *attachmentRepository) GetByID(id uuid.UUID) (*models.Attachment, error) {
	var attachment models.Attachment
	err := r.db.Preload("UploadedBy").First(&attachment, "id = ?", id).Error
	return &attachment, err
}

func (r *attachmentRepository) GetByUploader(uploaderID uuid.UUID) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := r.db.Where("uploaded_by_id = ?", uploaderID).
		Order("uploaded_at desc").
		Find(&attachments).Error
	return attachments, err
}
