package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portal/internal/domains/booking/model"
	"portal/internal/domains/booking/model/dto"
	gModel "portal/shared/model"
	"portal/shared/timezone"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	t.Run("with scheduled date", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			Title:         "Hot water system replacement",
			Description:   "Replace failing unit",
			ScheduledDate: "2026-09-15T09:00:00Z",
			Address:       "123 Main St",
			Total:         450,
		}

		booking, err := req.ToModel("customer-1")

		assert.NoError(t, err)
		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, "customer-1", booking.CustomerID)
		assert.Equal(t, model.StatusPending, booking.Status)
		assert.Nil(t, booking.ExternalJobUUID)

		if assert.NotNil(t, booking.ScheduledDate) {
			assert.Equal(t, 2026, booking.ScheduledDate.Year())
			assert.Equal(t, time.September, booking.ScheduledDate.Month())
		}
	})

	t.Run("without scheduled date", func(t *testing.T) {
		req := dto.CreateBookingRequest{Title: "Hot water system replacement"}

		booking, err := req.ToModel("customer-1")

		assert.NoError(t, err)
		assert.Nil(t, booking.ScheduledDate)
	})

	t.Run("invalid scheduled date", func(t *testing.T) {
		req := dto.CreateBookingRequest{
			Title:         "Hot water system replacement",
			ScheduledDate: "next tuesday",
		}

		_, err := req.ToModel("customer-1")

		assert.Error(t, err)
	})
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	scheduled := timezone.Now()

	models := []model.Booking{
		{
			ID:            "booking-1",
			CustomerID:    "customer-1",
			Title:         "Hot water system replacement",
			Status:        model.StatusScheduled,
			ScheduledDate: &scheduled,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  "customer-1",
				ModifiedBy: "customer-1",
			},
		},
		{
			ID:         "booking-2",
			CustomerID: "customer-1",
			Title:      "Gutter cleaning",
			Status:     model.StatusPending,
		},
	}

	var res dto.GetBookingsResponse
	res.FromModels(models, 12, 10)

	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)

	if assert.Len(t, res.Bookings, 2) {
		assert.NotNil(t, res.Bookings[0].ScheduledDate)
		assert.Nil(t, res.Bookings[1].ScheduledDate)
		assert.Nil(t, res.Bookings[1].CompletedDate)
	}
}
