package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"portal/config"
	"portal/infras/otel/mocks"
	s3Mocks "portal/infras/s3/mocks"
	sm8Mocks "portal/infras/servicem8/mocks"
	attachmentMocks "portal/internal/domains/attachment/mocks"
	"portal/internal/domains/attachment/model"
	"portal/internal/domains/attachment/model/dto"
	"portal/internal/domains/attachment/service"
	bookingMocks "portal/internal/domains/booking/mocks"
	gModel "portal/shared/model"
	"portal/shared/timezone"
)

const providerFileURL = "https://api.servicem8.com/api_1.0/attachment.json/att-1/file"

func stringPtr(s string) *string {
	return &s
}

func externalAttachment() model.Attachment {
	return model.Attachment{
		ID:                     "attachment-1",
		BookingID:              "booking-1",
		ExternalAttachmentUUID: stringPtr("att-1"),
		FileName:               "Invoice.pdf",
		FileURL:                providerFileURL,
		FileType:               "application/pdf",
		FileSize:               2048,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system:sync",
			ModifiedBy: "system:sync",
		},
	}
}

func TestAttachmentService_GetByBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := attachmentMocks.NewMockAttachment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockClient := sm8Mocks.NewMockClient(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, mockClient, mockStorage, cfg, mockOtel)

	t.Run("lists booking attachments", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Attachment{externalAttachment()}, nil)

		res, err := svc.GetByBooking(context.Background(), "booking-1", "customer-1")

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
	})

	t.Run("booking not owned by customer", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.GetByBooking(context.Background(), "booking-1", "customer-1")

		assert.Error(t, err)
	})
}

func TestAttachmentService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := attachmentMocks.NewMockAttachment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockClient := sm8Mocks.NewMockClient(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, mockClient, mockStorage, cfg, mockOtel)

	req := dto.AddAttachmentRequest{
		FileName: "quote.pdf",
		FileURL:  "https://files.example.com/quote.pdf",
	}

	t.Run("successful add", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, attachment model.Attachment) error {
				assert.Equal(t, "booking-1", attachment.BookingID)
				assert.Equal(t, "unknown", attachment.FileType)
				assert.Nil(t, attachment.ExternalAttachmentUUID)

				return nil
			})

		err := svc.Add(context.Background(), req, "booking-1", "customer-1")

		assert.NoError(t, err)
	})

	t.Run("booking not owned by customer", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Add(context.Background(), req, "booking-1", "customer-1")

		assert.Error(t, err)
	})
}

func TestAttachmentService_Download(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := attachmentMocks.NewMockAttachment(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockClient := sm8Mocks.NewMockClient(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "portal-files"
	cfg.External.S3.MirrorDirectory = "attachments"

	svc := service.New(mockRepo, mockBookingRepo, mockClient, mockStorage, cfg, mockOtel)

	t.Run("local attachment is served directly", func(t *testing.T) {
		local := externalAttachment()
		local.ExternalAttachmentUUID = nil
		local.FileURL = "https://files.example.com/quote.pdf"

		mockBookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(local, nil)

		res, err := svc.Download(context.Background(), "attachment-1", "booking-1", "customer-1")

		assert.NoError(t, err)
		assert.Equal(t, "https://files.example.com/quote.pdf", res.FileURL)
	})

	t.Run("first download mirrors the provider file", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(externalAttachment(), nil)

		mockClient.EXPECT().
			AttachmentFileURL("att-1").
			Return(providerFileURL)

		mockClient.EXPECT().
			DownloadAttachment(gomock.Any(), "att-1").
			Return([]byte("file-data"), "application/pdf", nil)

		mockStorage.EXPECT().
			UploadFileBytes(gomock.Any(), "portal-files", "attachments", "attachment-1_Invoice.pdf", "application/pdf", []byte("file-data")).
			Return("https://cdn.example.com/attachments/attachment-1_Invoice.pdf", nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Download(context.Background(), "attachment-1", "booking-1", "customer-1")

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/attachments/attachment-1_Invoice.pdf", res.FileURL)
	})

	t.Run("mirror failure serves provider url", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(externalAttachment(), nil)

		mockClient.EXPECT().
			AttachmentFileURL("att-1").
			Return(providerFileURL)

		mockClient.EXPECT().
			DownloadAttachment(gomock.Any(), "att-1").
			Return(nil, "", errors.New("provider unavailable"))

		res, err := svc.Download(context.Background(), "attachment-1", "booking-1", "customer-1")

		assert.NoError(t, err)
		assert.Equal(t, providerFileURL, res.FileURL)
	})

	t.Run("attachment not found", func(t *testing.T) {
		mockBookingRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Attachment{}, nil)

		_, err := svc.Download(context.Background(), "attachment-1", "booking-1", "customer-1")

		assert.Error(t, err)
	})
}
