package dto

import (
	"github.com/google/uuid"

	"portal/internal/domains/attachment/model"
	gDto "portal/shared/dto"
	gModel "portal/shared/model"
	"portal/shared/timezone"
)

type AddAttachmentRequest struct {
	FileName string `json:"file_name" validate:"required,max=255"`
	FileURL  string `json:"file_url"  validate:"required,max=1000"`
	FileType string `json:"file_type" validate:"omitempty,max=100"`
	FileSize int64  `json:"file_size" validate:"omitempty,gte=0"`
}

func (a *AddAttachmentRequest) ToModel(bookingID, customerID string) model.Attachment {
	fileType := a.FileType
	if fileType == "" {
		fileType = "unknown"
	}

	return model.Attachment{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		FileName:  a.FileName,
		FileURL:   a.FileURL,
		FileType:  fileType,
		FileSize:  a.FileSize,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

type AttachmentResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	FileName  string `json:"file_name"`
	FileURL   string `json:"file_url"`
	FileType  string `json:"file_type"`
	FileSize  int64  `json:"file_size"`
	gDto.Metadata
}

func (r *AttachmentResponse) FromModel(model model.Attachment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.FileName = model.FileName
	r.FileURL = model.FileURL
	r.FileType = model.FileType
	r.FileSize = model.FileSize
	r.Metadata.FromModel(model.Metadata)
}

type GetAttachmentsResponse struct {
	Attachments []AttachmentResponse `json:"attachments"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetAttachmentsResponse) FromModels(models []model.Attachment) {
	r.TotalData = len(models)

	r.Attachments = make([]AttachmentResponse, len(models))
	for i, mod := range models {
		r.Attachments[i].FromModel(mod)
	}
}

type DownloadResponse struct {
	FileName    string `json:"file_name"`
	FileURL     string `json:"file_url"`
	ContentType string `json:"content_type"`
}
