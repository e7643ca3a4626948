package model

import "portal/shared/model"

const (
	TableName  = "messages"
	EntityName = "message"

	FieldID         = "id"
	FieldBookingID  = "booking_id"
	FieldCustomerID = "customer_id"
	FieldContent    = "content"
	FieldSenderType = "sender_type"
	FieldIsRead     = "is_read"
)

const (
	SenderTypeCustomer = "customer"
	SenderTypeAdmin    = "admin"
)

type Message struct {
	ID         string `db:"id"`
	BookingID  string `db:"booking_id"`
	CustomerID string `db:"customer_id"`
	Content    string `db:"content"`
	SenderType string `db:"sender_type"`
	IsRead     bool   `db:"is_read"`
	model.Metadata
}
