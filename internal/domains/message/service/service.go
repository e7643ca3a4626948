package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"portal/config"
	"portal/infras/otel"
	bookingModel "portal/internal/domains/booking/model"
	bookingRepo "portal/internal/domains/booking/repository"
	"portal/internal/domains/message/model"
	"portal/internal/domains/message/model/dto"
	"portal/internal/domains/message/repository"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"
	"portal/shared/timezone"
)

// Message is the per-booking conversation log between a customer and
// the back office. Append-only; messages are never edited or deleted.
type Message interface {
	GetByBooking(ctx context.Context, bookingID, customerID string) (dto.GetMessagesResponse, error)
	Send(ctx context.Context, req dto.SendMessageRequest, bookingID, customerID string) error
	MarkRead(ctx context.Context, bookingID, customerID string) error
}

type serviceImpl struct {
	repo        repository.Message
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.Message, bookingRepo bookingRepo.Booking, cfg *config.Config, otel otel.Otel) Message {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
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

func messagesFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID, customerID string) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.checkBookingOwnership(ctx, bookingID, customerID); err != nil {
		return res, err
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, messagesFilter(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages")

		return res, fmt.Errorf("failed to get messages: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Send(ctx context.Context, req dto.SendMessageRequest, bookingID, customerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.checkBookingOwnership(ctx, bookingID, customerID); err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(bookingID, customerID)); err != nil {
		log.Error().Err(err).Msg("failed to send message")

		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// MarkRead flags every admin-sent message of the booking as read.
func (s *serviceImpl) MarkRead(ctx context.Context, bookingID, customerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.checkBookingOwnership(ctx, bookingID, customerID); err != nil {
		return err
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldSenderType,
				Operator: gDto.FilterOperatorEq,
				Value:    model.SenderTypeAdmin,
				Table:    model.TableName,
			},
		},
	}

	updatedFields := map[string]any{
		model.FieldIsRead:        true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: customerID,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark messages as read")

		return fmt.Errorf("failed to mark messages as read: %w", err)
	}

	return nil
}
