package dto

import (
	"time"

	"github.com/google/uuid"

	"portal/internal/domains/booking/model"
	"portal/shared"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	gModel "portal/shared/model"
	"portal/shared/timezone"
)

type CreateBookingRequest struct {
	Title         string  `json:"title"          validate:"required,max=255"`
	Description   string  `json:"description"    validate:"omitempty"`
	ScheduledDate string  `json:"scheduled_date" validate:"omitempty"`
	Address       string  `json:"address"        validate:"omitempty,max=500"`
	Total         float64 `json:"total"          validate:"omitempty,gte=0"`
}

func (c *CreateBookingRequest) ToModel(customerID string) (model.Booking, error) {
	var scheduledDate *time.Time

	if c.ScheduledDate != "" {
		parsed, err := time.Parse(time.RFC3339, c.ScheduledDate)
		if err != nil {
			return model.Booking{}, err
		}

		scheduledDate = &parsed
	}

	return model.Booking{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		Title:         c.Title,
		Description:   c.Description,
		Status:        model.StatusPending,
		ScheduledDate: scheduledDate,
		Address:       c.Address,
		Total:         c.Total,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}, nil
}

type UpdateBookingRequest struct {
	Title         string  `db:"title"       json:"title"          validate:"omitempty,max=255"`
	Description   string  `db:"description" json:"description"    validate:"omitempty"`
	ScheduledDate string  `json:"scheduled_date"                  validate:"omitempty"`
	Address       string  `db:"address"     json:"address"        validate:"omitempty,max=500"`
	Status        string  `db:"status"      json:"status"         validate:"omitempty,oneof=pending scheduled in_progress completed cancelled"`
	Total         float64 `db:"total"       json:"total"          validate:"omitempty,gte=0"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	CustomerID      string  `json:"customer_id"`
	ExternalJobUUID *string `json:"external_job_uuid,omitempty"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Status          string  `json:"status"`
	ScheduledDate   *string `json:"scheduled_date"`
	CompletedDate   *string `json:"completed_date"`
	Address         string  `json:"address"`
	Total           float64 `json:"total"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.ExternalJobUUID = model.ExternalJobUUID
	r.Title = model.Title
	r.Description = model.Description
	r.Status = model.Status
	r.ScheduledDate = formatDate(model.ScheduledDate)
	r.CompletedDate = formatDate(model.CompletedDate)
	r.Address = model.Address
	r.Total = model.Total
	r.Metadata.FromModel(model.Metadata)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := t.Format(constant.DateFormat)

	return &formatted
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
