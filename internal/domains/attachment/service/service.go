package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"portal/config"
	"portal/infras/otel"
	"portal/infras/s3"
	"portal/infras/servicem8"
	"portal/internal/domains/attachment/model"
	"portal/internal/domains/attachment/model/dto"
	"portal/internal/domains/attachment/repository"
	bookingModel "portal/internal/domains/booking/model"
	bookingRepo "portal/internal/domains/booking/repository"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"
	"portal/shared/timezone"
)

// Attachment serves a booking's files. Externally-sourced files are
// mirrored to object storage on first download.
type Attachment interface {
	GetByBooking(ctx context.Context, bookingID, customerID string) (dto.GetAttachmentsResponse, error)
	Add(ctx context.Context, req dto.AddAttachmentRequest, bookingID, customerID string) error
	Download(ctx context.Context, id, bookingID, customerID string) (dto.DownloadResponse, error)
}

type serviceImpl struct {
	repo        repository.Attachment
	bookingRepo bookingRepo.Booking
	client      servicem8.Client
	storage     s3.S3
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Attachment,
	bookingRepo bookingRepo.Booking,
	client servicem8.Client,
	storage s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Attachment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		client:      client,
		storage:     storage,
		cfg:         cfg,
		otel:        otel,
	}
}

func bookingOwnershipFilter(bookingID, customerID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldCustomerID,
				Operator: gDto.FilterOperatorEq,
				Value:    customerID,
				Table:    bookingModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) checkBookingOwnership(ctx context.Context, bookingID, customerID string) error {
	exist, err := s.bookingRepo.Exist(ctx, bookingOwnershipFilter(bookingID, customerID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID, customerID string) (res dto.GetAttachmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".attachment.GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.checkBookingOwnership(ctx, bookingID, customerID); err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get attachments")

		return res, fmt.Errorf("failed to get attachments: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddAttachmentRequest, bookingID, customerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".attachment.Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.checkBookingOwnership(ctx, bookingID, customerID); err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(bookingID, customerID)); err != nil {
		log.Error().Err(err).Msg("failed to add attachment")

		return fmt.Errorf("failed to add attachment: %w", err)
	}

	return nil
}

// Download resolves an attachment's file URL. An externally-sourced
// file that has not been mirrored yet is fetched from the provider,
// uploaded to object storage and its stored URL rewritten; subsequent
// downloads serve the mirror directly.
func (s *serviceImpl) Download(ctx context.Context, id, bookingID, customerID string) (res dto.DownloadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".attachment.Download")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.checkBookingOwnership(ctx, bookingID, customerID); err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
		},
	}

	attachment, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get attachment")

		return res, fmt.Errorf("failed to get attachment: %w", err)
	}

	if attachment.ID == constant.Empty {
		return res, failure.NotFound("attachment not found") // nolint:wrapcheck
	}

	res.FileName = attachment.FileName
	res.FileURL = attachment.FileURL
	res.ContentType = attachment.FileType

	if !s.needsMirror(attachment) {
		return res, nil
	}

	mirroredURL, err := s.mirror(ctx, attachment, filter)
	if err != nil {
		log.Warn().Err(err).Str("attachmentID", id).Msg("failed to mirror attachment, serving provider URL")

		return res, nil
	}

	res.FileURL = mirroredURL

	return res, nil
}

// needsMirror reports whether the attachment still points at the
// provider's download endpoint.
func (s *serviceImpl) needsMirror(attachment model.Attachment) bool {
	if attachment.ExternalAttachmentUUID == nil {
		return false
	}

	return attachment.FileURL == s.client.AttachmentFileURL(*attachment.ExternalAttachmentUUID)
}

func (s *serviceImpl) mirror(ctx context.Context, attachment model.Attachment, filter gDto.FilterGroup) (string, error) {
	data, contentType, err := s.client.DownloadAttachment(ctx, *attachment.ExternalAttachmentUUID)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to download attachment from provider: %w", err)
	}

	if contentType == constant.Empty {
		contentType = attachment.FileType
	}

	objectName := fmt.Sprintf("%s_%s", attachment.ID, attachment.FileName)

	mirroredURL, err := s.storage.UploadFileBytes(
		ctx,
		s.cfg.External.S3.BucketName,
		s.cfg.External.S3.MirrorDirectory,
		objectName,
		contentType,
		data,
	)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload attachment mirror: %w", err)
	}

	updatedFields := map[string]any{
		model.FieldFileURL:       mirroredURL,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: "system:mirror",
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("attachmentID", attachment.ID).Msg("failed to store mirrored url")
	}

	return mirroredURL, nil
}
