package model

import (
	"portal/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldCustomerID      = "customer_id"
	FieldExternalJobUUID = "external_job_uuid"
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldStatus          = "status"
	FieldScheduledDate   = "scheduled_date"
	FieldCompletedDate   = "completed_date"
	FieldAddress         = "address"
	FieldTotal           = "total"
)

const (
	StatusPending    = "pending"
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type Booking struct {
	ID              string     `db:"id"`
	CustomerID      string     `db:"customer_id"`
	ExternalJobUUID *string    `db:"external_job_uuid"`
	Title           string     `db:"title"`
	Description     string     `db:"description"`
	Status          string     `db:"status"`
	ScheduledDate   *time.Time `db:"scheduled_date"`
	CompletedDate   *time.Time `db:"completed_date"`
	Address         string     `db:"address"`
	Total           float64    `db:"total"`
	model.Metadata
}
