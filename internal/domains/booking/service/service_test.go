package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"portal/config"
	"portal/infras/otel/mocks"
	bookingMocks "portal/internal/domains/booking/mocks"
	"portal/internal/domains/booking/model"
	"portal/internal/domains/booking/model/dto"
	"portal/internal/domains/booking/service"
	"portal/shared/cache"
	cacheMocks "portal/shared/cache/mocks"
	gDto "portal/shared/dto"
	gModel "portal/shared/model"
	"portal/shared/timezone"
)

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateBookingRequest{
				Title:         "Hot water system replacement",
				Description:   "Replace failing unit",
				ScheduledDate: "2026-09-15T09:00:00Z",
				Address:       "123 Main St",
				Total:         450,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, "customer-1", booking.CustomerID)
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Nil(t, booking.ExternalJobUUID)

						return nil
					})
			},
		},
		{
			name: "invalid scheduled date",
			req: dto.CreateBookingRequest{
				Title:         "Hot water system replacement",
				ScheduledDate: "next tuesday",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreateBookingRequest{
				Title: "Hot water system replacement",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req, "customer-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	booking := model.Booking{
		ID:         "booking-1",
		CustomerID: "customer-1",
		Title:      "Hot water system replacement",
		Status:     model.StatusScheduled,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "customer-1",
			ModifiedBy: "customer-1",
		},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache miss falls through to repository",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "not found for another customer's booking",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "booking-1", "customer-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "booking-1", res.ID)
			assert.Equal(t, model.StatusScheduled, res.Status)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss lists from repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		bookings := []model.Booking{
			{ID: "booking-1", CustomerID: "customer-1", Title: "Hot water system replacement", Status: model.StatusPending},
		}

		mockRepo.EXPECT().
			GetAll(gomock.Any(), params, gomock.Any()).
			Return(bookings, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), params, "customer-1", "")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("count error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), params, "customer-1", "")

		assert.Error(t, err)
	})
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateBookingRequest{Description: "Bring ladder"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "empty update is rejected",
			req:       dto.UpdateBookingRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "booking not owned by customer",
			req:  dto.UpdateBookingRequest{Description: "Bring ladder"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, "booking-1", "customer-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
