package model

import "portal/shared/model"

const (
	TableName  = "file_attachments"
	EntityName = "attachment"

	FieldID                     = "id"
	FieldBookingID              = "booking_id"
	FieldExternalAttachmentUUID = "external_attachment_uuid"
	FieldFileName               = "file_name"
	FieldFileURL                = "file_url"
	FieldFileType               = "file_type"
	FieldFileSize               = "file_size"
)

type Attachment struct {
	ID                     string  `db:"id"`
	BookingID              string  `db:"booking_id"`
	ExternalAttachmentUUID *string `db:"external_attachment_uuid"`
	FileName               string  `db:"file_name"`
	FileURL                string  `db:"file_url"`
	FileType               string  `db:"file_type"`
	FileSize               int64   `db:"file_size"`
	model.Metadata
}
