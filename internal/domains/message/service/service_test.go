package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"portal/config"
	"portal/infras/otel/mocks"
	bookingMocks "portal/internal/domains/booking/mocks"
	messageMocks "portal/internal/domains/message/mocks"
	"portal/internal/domains/message/model"
	"portal/internal/domains/message/model/dto"
	"portal/internal/domains/message/service"
	gModel "portal/shared/model"
	"portal/shared/timezone"
)

func TestMessageService_GetByBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := messageMocks.NewMockMessage(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "returns conversation in order",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				messages := []model.Message{
					{
						ID:         "message-1",
						BookingID:  "booking-1",
						CustomerID: "customer-1",
						Content:    "When will the technician arrive?",
						SenderType: model.SenderTypeCustomer,
						Metadata: gModel.Metadata{
							CreatedAt:  timezone.Now(),
							ModifiedAt: timezone.Now(),
							CreatedBy:  "customer-1",
							ModifiedBy: "customer-1",
						},
					},
					{
						ID:         "message-2",
						BookingID:  "booking-1",
						CustomerID: "customer-1",
						Content:    "Between 9 and 11.",
						SenderType: model.SenderTypeAdmin,
						Metadata: gModel.Metadata{
							CreatedAt:  timezone.Now(),
							ModifiedAt: timezone.Now(),
							CreatedBy:  "admin",
							ModifiedBy: "admin",
						},
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(messages, nil)
			},
			wantTotal: 2,
		},
		{
			name: "booking not owned by customer",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetByBooking(context.Background(), "booking-1", "customer-1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
		})
	}
}

func TestMessageService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := messageMocks.NewMockMessage(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockOtel)

	req := dto.SendMessageRequest{Content: "When will the technician arrive?"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful send",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, message model.Message) error {
						assert.Equal(t, model.SenderTypeCustomer, message.SenderType)
						assert.False(t, message.IsRead)
						assert.Equal(t, "booking-1", message.BookingID)

						return nil
					})
			},
		},
		{
			name: "booking not owned by customer",
			setupMock: func() {
				mockBookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Send(context.Background(), req, "booking-1", "customer-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMessageService_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := messageMocks.NewMockMessage(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockOtel)

	t.Run("marks admin messages as read", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, true, fields[model.FieldIsRead])

				return nil
			})

		err := svc.MarkRead(context.Background(), "booking-1", "customer-1")

		assert.NoError(t, err)
	})

	t.Run("booking not owned by customer", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.MarkRead(context.Background(), "booking-1", "customer-1")

		assert.Error(t, err)
	})
}
