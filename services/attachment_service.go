package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"propulse-backend/models"
	"propulse-backend/repositories"
	"propulse-backend/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AttachmentService interface {
	Upload(ctx context.Context, uploaderID uuid.UUID, fileName, contentType string, size int64, reader io.Reader) (*models.Attachment, error)
	GetAttachment(id uuid.UUID) (*models.Attachment, error)
	GetAttachments(uploaderID uuid.UUID) ([]models.Attachment, error)
}

type attachmentService struct {
	attachmentRepo repositories.AttachmentRepository
	blobs          storage.BlobStore
	log            *logrus.Logger
}

func NewAttachmentService(attachmentRepo repositories.AttachmentRepository, blobs storage.BlobStore, log *logrus.Logger) AttachmentService {
	return &attachmentService{
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		log:            log,
	}
}

// Upload writes the blob first, then persists the metadata row. If the row
// insert fails the blob is removed again so no orphan is left behind; a
// failed removal is only logged.
func (s *attachmentService) Upload(ctx context.Context, uploaderID uuid.UUID, fileName, contentType string, size int64, reader io.Reader) (*models.Attachment, error) {
	objectName := fmt.Sprintf("%s/%s%s", uploaderID, uuid.New(), path.Ext(fileName))

	uri, err := s.blobs.Put(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	attachment := &models.Attachment{
		FileName:     fileName,
		ContentType:  contentType,
		Size:         size,
		BlobURI:      uri,
		UploadedByID: uploaderID,
	}

	if err := s.attachmentRepo.Create(attachment); err != nil {
		if removeErr := s.blobs.Remove(ctx, objectName); removeErr != nil {
			s.log.WithError(removeErr).WithField("object", objectName).
				Warn("could not remove blob after failed attachment insert")
		}
		return nil, err
	}

	return attachment, nil
}

func (s *attachmentService) GetAttachment(id uuid.UUID) (*models.Attachment, error) {
	return s.attachmentRepo.GetByID(id)
}

func (s *attachmentService) GetAttachments(uploaderID uuid.UUID) ([]models.Attachment, error) {
	return s.attachmentRepo.GetByUploader(uploaderID)
}
