package sync

import (
	"net/http"
	"portal/infras/otel"
	"portal/internal/domains/sync/model/dto"
	"portal/internal/domains/sync/service"
	"portal/shared/constant"
	"portal/shared/validator"
	"portal/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Sync
	otel    otel.Otel
}

func New(service service.Sync, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sync", func(routerGroup chi.Router) {
		routerGroup.Post("/customers", handler.SyncAllCustomers)
		routerGroup.Post("/customers/{id}", handler.SyncCustomer)
		routerGroup.Get("/customers/{id}/info", handler.CompanyInfo)
		routerGroup.Post("/customers/{id}/link", handler.LinkCustomer)
		routerGroup.Get("/companies", handler.GetCompanies)
		routerGroup.Get("/test", handler.TestConnection)
	})
}

// SyncCustomer runs a sync pass for one customer.
// @Summary Sync one customer
// @Description Reconcile all remote jobs of the customer's linked company into local bookings.
// @Tags Sync
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CustomerSyncResult "Sync summary"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sync/customers/{id} [post]
// @Security BearerAuth
func (handler *Handler) SyncCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncCustomer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.SyncCustomer(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sync customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer synced successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SyncAllCustomers runs a sync pass for every linked customer.
// @Summary Sync all linked customers
// @Description Reconcile remote jobs for every linked customer; per-customer failures are collected, not fatal.
// @Tags Sync
// @Produce json
// @Success 200 {object} dto.BulkSyncResult "Bulk sync summary"
// @Failure 500 {object} response.Error
// @Router /v1/sync/customers [post]
// @Security BearerAuth
func (handler *Handler) SyncAllCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncAllCustomers")
	defer scope.End()

	res, err := handler.service.SyncAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run bulk sync")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bulk sync completed")

	response.WithJSON(w, http.StatusOK, res)
}

// LinkCustomer links a customer to a provider company.
// @Summary Link a customer
// @Description Store the external company identifier on the customer after verifying it remotely.
// @Tags Sync
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body dto.LinkCustomerRequest true "Link Customer Request"
// @Success 200 {object} response.Message "Customer linked successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sync/customers/{id}/link [post]
// @Security BearerAuth
func (handler *Handler) LinkCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LinkCustomer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.LinkCustomerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.LinkCustomer(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to link customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer linked successfully")

	response.WithMessage(w, http.StatusOK, "Customer linked successfully")
}

// CompanyInfo reports a customer's provider link state.
// @Summary Get customer link info
// @Description Report link state, linked company details and remote job count for a customer.
// @Tags Sync
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CompanyInfoResponse "Link info"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sync/customers/{id}/info [get]
// @Security BearerAuth
func (handler *Handler) CompanyInfo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompanyInfo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.CompanyInfo(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get company info")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company info retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetCompanies lists companies on the provider side.
// @Summary List provider companies
// @Description Retrieve all companies from the field-service provider.
// @Tags Sync
// @Produce json
// @Success 200 {object} dto.GetCompaniesResponse "List of companies"
// @Failure 500 {object} response.Error
// @Router /v1/sync/companies [get]
// @Security BearerAuth
func (handler *Handler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanies")
	defer scope.End()

	res, err := handler.service.Companies(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list companies")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Companies retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// TestConnection checks provider connectivity.
// @Summary Test provider connection
// @Description Check that the field-service provider is reachable with the configured credentials.
// @Tags Sync
// @Produce json
// @Success 200 {object} dto.ConnectionTestResponse "Connection status"
// @Router /v1/sync/test [get]
// @Security BearerAuth
func (handler *Handler) TestConnection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TestConnection")
	defer scope.End()

	res := handler.service.TestConnection(ctx)

	scope.AddEvent("Connection test completed")

	response.WithJSON(w, http.StatusOK, res)
}
