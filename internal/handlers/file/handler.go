package file

import (
	"net/http"
	"portal/infras/otel"
	"portal/internal/domains/attachment/model/dto"
	"portal/internal/domains/attachment/service"
	"portal/shared/constant"
	"portal/shared/failure"
	"portal/shared/validator"
	"portal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Attachment
	otel    otel.Otel
}

func New(service service.Attachment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings/{bookingId}/files", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFiles)
		routerGroup.Post("/", handler.AddFile)
		routerGroup.Get("/{id}/download", handler.DownloadFile)
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

// GetFiles lists a booking's file attachments.
// @Summary Get booking files
// @Description Retrieve the file attachments of one of the logged-in customer's bookings.
// @Tags File
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} dto.GetAttachmentsResponse "List of attachments"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingId}/files [get]
// @Security BearerAuth
func (handler *Handler) GetFiles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFiles")
	defer scope.End()

	customerID, bookingID, ok := requestScope(w, r)
	if !ok {
		return
	}

	attachments, err := handler.service.GetByBooking(ctx, bookingID, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get attachments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Attachments retrieved successfully")

	response.WithJSON(w, http.StatusOK, attachments)
}

// AddFile records a manually uploaded file on a booking.
// @Summary Add a file
// @Description Attach a file record to one of the logged-in customer's bookings.
// @Tags File
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body dto.AddAttachmentRequest true "Add Attachment Request"
// @Success 201 {object} response.Message "Attachment added successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingId}/files [post]
// @Security BearerAuth
func (handler *Handler) AddFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddFile")
	defer scope.End()

	customerID, bookingID, ok := requestScope(w, r)
	if !ok {
		return
	}

	req := dto.AddAttachmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Add(ctx, req, bookingID, customerID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add attachment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Attachment added successfully by customer " + customerID)

	response.WithMessage(w, http.StatusCreated, "Attachment added successfully")
}

// DownloadFile resolves an attachment's download URL, mirroring
// externally-sourced files to object storage on first access.
// @Summary Download a file
// @Description Resolve the download URL for a file on one of the logged-in customer's bookings.
// @Tags File
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param id path string true "Attachment ID"
// @Success 200 {object} dto.DownloadResponse "Download details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{bookingId}/files/{id}/download [get]
// @Security BearerAuth
func (handler *Handler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DownloadFile")
	defer scope.End()

	customerID, bookingID, ok := requestScope(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Download(ctx, id, bookingID, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to download attachment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Attachment download resolved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
