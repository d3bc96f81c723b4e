package handlers

import (
	"propulse-backend/helper"
	"propulse-backend/middleware"
	"propulse-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AttachmentHandler struct {
	attachmentService services.AttachmentService
	Helper            *helper.HTTPHelper
}

func NewAttachmentHandler(attachmentService services.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// Upload accepts one multipart file under the "file" field.
func (h *AttachmentHandler) Upload(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.Helper.SendBadRequest(c, "A file is required", h.Helper.EmptyJsonMap())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	attachment, err := h.attachmentService.Upload(
		c.Request.Context(),
		userID,
		fileHeader.Filename,
		contentType,
		fileHeader.Size,
		file,
	)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Attachment uploaded successfully", attachment)
}

func (h *AttachmentHandler) GetAttachments(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	attachments, err := h.attachmentService.GetAttachments(userID)
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", attachments)
}

func (h *AttachmentHandler) GetAttachment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid attachment ID", h.Helper.EmptyJsonMap())
		return
	}

	attachment, err := h.attachmentService.GetAttachment(id)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Attachment not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", attachment)
}
