package dto

import (
	"github.com/google/uuid"

	"portal/internal/domains/message/model"
	gDto "portal/shared/dto"
	gModel "portal/shared/model"
	"portal/shared/timezone"
)

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

func (s *SendMessageRequest) ToModel(bookingID, customerID string) model.Message {
	return model.Message{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		CustomerID: customerID,
		Content:    s.Content,
		SenderType: model.SenderTypeCustomer,
		IsRead:     false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

type MessageResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"booking_id"`
	CustomerID string `json:"customer_id"`
	Content    string `json:"content"`
	SenderType string `json:"sender_type"`
	IsRead     bool   `json:"is_read"`
	gDto.Metadata
}

func (r *MessageResponse) FromModel(model model.Message) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.CustomerID = model.CustomerID
	r.Content = model.Content
	r.SenderType = model.SenderType
	r.IsRead = model.IsRead
	r.Metadata.FromModel(model.Metadata)
}

type GetMessagesResponse struct {
	Messages  []MessageResponse `json:"messages"`
	TotalData int               `json:"total_data"`
}

func (r *GetMessagesResponse) FromModels(models []model.Message) {
	r.TotalData = len(models)

	r.Messages = make([]MessageResponse, len(models))
	for i, mod := range models {
		r.Messages[i].FromModel(mod)
	}
}
