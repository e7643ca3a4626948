package message

import (
	"net/http"
	"portal/infras/otel"
	"portal/internal/domains/message/model/dto"
	"portal/internal/domains/message/service"
	"portal/shared/constant"
	"portal/shared/failure"
	"portal/shared/validator"
	"portal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Message
	otel    otel.Otel
}

func New(service service.Message, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings/{bookingId}/messages", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMessages)
		routerGroup.Post("/", handler.SendMessage)
		routerGroup.Post("/read", handler.MarkRead)
	})
}

func requestScope(w http.ResponseWriter, r *http.Request) (customerID, bookingID string, ok bool) {
	customerID, found := r.Context().Value(constant.ContextKeyCustomerID).(string)
	if !found || customerID == constant.Empty {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return constant.Empty, constant.Empty, false
	}

	return customerID, chi.URLParam(r, constant.RequestParamBookingID), true
}

// GetMessages lists a booking's conversation, oldest first.
// @Summary Get booking messages
// @Description Retrieve the conversation log for one of the logged-in customer's bookings.
// @Tags Message
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} dto.GetMessagesResponse "List of messages"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingId}/messages [get]
// @Security BearerAuth
func (handler *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessages")
	defer scope.End()

	customerID, bookingID, ok := requestScope(w, r)
	if !ok {
		return
	}

	messages, err := handler.service.GetByBooking(ctx, bookingID, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Messages retrieved successfully")

	response.WithJSON(w, http.StatusOK, messages)
}

// SendMessage appends a customer message to a booking's conversation.
// @Summary Send a message
// @Description Send a message on one of the logged-in customer's bookings.
// @Tags Message
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body dto.SendMessageRequest true "Send Message Request"
// @Success 201 {object} response.Message "Message sent successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingId}/messages [post]
// @Security BearerAuth
func (handler *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMessage")
	defer scope.End()

	customerID, bookingID, ok := requestScope(w, r)
	if !ok {
		return
	}

	req := dto.SendMessageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Send(ctx, req, bookingID, customerID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Message sent successfully by customer " + customerID)

	response.WithMessage(w, http.StatusCreated, "Message sent successfully")
}

// MarkRead flags the booking's admin messages as read.
// @Summary Mark messages as read
// @Description Mark all admin messages on one of the logged-in customer's bookings as read.
// @Tags Message
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.Message "Messages marked as read"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingId}/messages/read [post]
// @Security BearerAuth
func (handler *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRead")
	defer scope.End()

	customerID, bookingID, ok := requestScope(w, r)
	if !ok {
		return
	}

	if err := handler.service.MarkRead(ctx, bookingID, customerID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark messages as read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Messages marked as read")

	response.WithMessage(w, http.StatusOK, "Messages marked as read")
}
