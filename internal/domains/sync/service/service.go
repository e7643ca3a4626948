package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portal/config"
	"portal/infras/kafka"
	"portal/infras/otel"
	"portal/infras/servicem8"
	attachmentModel "portal/internal/domains/attachment/model"
	attachmentRepo "portal/internal/domains/attachment/repository"
	bookingModel "portal/internal/domains/booking/model"
	bookingRepo "portal/internal/domains/booking/repository"
	customerModel "portal/internal/domains/customer/model"
	customerRepo "portal/internal/domains/customer/repository"
	"portal/internal/domains/sync/model/dto"
	"portal/shared"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"
	gModel "portal/shared/model"
	"portal/shared/timezone"
)

// syncActor is recorded in metadata audit columns for rows written by
// the reconciler rather than a logged-in customer.
const syncActor = "system:sync"

const defaultJobTitle = "Untitled Job"

// remote timestamps arrive as bare strings in a handful of shapes; a
// value that matches none of them is treated as absent.
var remoteDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

type Sync interface {
	SyncCustomer(ctx context.Context, customerID string) (dto.CustomerSyncResult, error)
	SyncAll(ctx context.Context) (dto.BulkSyncResult, error)
	LinkCustomer(ctx context.Context, customerID string, req dto.LinkCustomerRequest) error
	CompanyInfo(ctx context.Context, customerID string) (dto.CompanyInfoResponse, error)
	Companies(ctx context.Context) (dto.GetCompaniesResponse, error)
	TestConnection(ctx context.Context) dto.ConnectionTestResponse
}

type serviceImpl struct {
	customerRepo   customerRepo.Customer
	bookingRepo    bookingRepo.Booking
	attachmentRepo attachmentRepo.Attachment
	client         servicem8.Client
	producer       kafka.Producer
	cfg            *config.Config
	otel           otel.Otel
}

func New(
	customerRepo customerRepo.Customer,
	bookingRepo bookingRepo.Booking,
	attachmentRepo attachmentRepo.Attachment,
	client servicem8.Client,
	producer kafka.Producer,
	cfg *config.Config,
	otel otel.Otel,
) Sync {
	return &serviceImpl{
		customerRepo:   customerRepo,
		bookingRepo:    bookingRepo,
		attachmentRepo: attachmentRepo,
		client:         client,
		producer:       producer,
		cfg:            cfg,
		otel:           otel,
	}
}

// SyncCustomer reconciles every remote job of one customer's linked
// company. Jobs are processed in provider order; a failed upsert is
// counted and skipped, it never aborts the rest of the pass.
func (s *serviceImpl) SyncCustomer(ctx context.Context, customerID string) (res dto.CustomerSyncResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sync.SyncCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.CustomerID = customerID

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("customerID", customerID).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	if !customer.Linked() {
		log.Info().Str("customerID", customerID).Msg("customer not linked, skipping sync")

		return res, nil
	}

	res.Linked = true

	jobs, err := s.client.GetJobsByCompany(ctx, *customer.ExternalCompanyUUID)
	if err != nil {
		log.Error().Err(err).Str("customerID", customerID).Msg("failed to fetch remote jobs")

		return res, fmt.Errorf("failed to fetch remote jobs: %w", err)
	}

	res.TotalJobs = len(jobs)

	for _, job := range jobs {
		created, reconcileErr := s.reconcileJob(ctx, customer.ID, job)
		if reconcileErr != nil {
			log.Error().Err(reconcileErr).
				Str("customerID", customerID).
				Str("jobUUID", job.UUID).
				Msg("failed to reconcile job")

			res.Failed++

			continue
		}

		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	s.publishSummary(ctx, res)

	return res, nil
}

// SyncAll runs a sync pass for every linked customer. Each customer is
// isolated: a failing one is recorded in Errors and the rest proceed.
func (s *serviceImpl) SyncAll(ctx context.Context) (res dto.BulkSyncResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sync.SyncAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    customerModel.FieldExternalCompanyUUID,
				Table:    customerModel.TableName,
				Operator: gDto.FilterIsNotNull,
			},
		},
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	customers, err := s.customerRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list linked customers")

		return res, fmt.Errorf("failed to list linked customers: %w", err)
	}

	res.TotalCustomers = len(customers)
	res.Results = make([]dto.CustomerSyncResult, 0, len(customers))
	res.Errors = []dto.SyncError{}

	for _, customer := range customers {
		customerResult, syncErr := s.SyncCustomer(ctx, customer.ID)
		if syncErr != nil {
			res.Errors = append(res.Errors, dto.SyncError{
				CustomerID: customer.ID,
				Error:      syncErr.Error(),
			})

			continue
		}

		res.Synced++
		res.TotalCreated += customerResult.Created
		res.TotalUpdated += customerResult.Updated
		res.Results = append(res.Results, customerResult)
	}

	return res, nil
}

// reconcileJob upserts the local booking for one remote job and then
// reconciles its attachments. An attachment fetch failure leaves the
// booking synced; it is logged and retried on the next pass.
func (s *serviceImpl) reconcileJob(ctx context.Context, customerID string, job servicem8.Job) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sync.reconcileJob")
	defer scope.End()
	defer scope.TraceIfError(err)

	externalUUID := job.UUID
	booking := bookingModel.Booking{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		ExternalJobUUID: &externalUUID,
		Title:           firstNonEmpty(job.JobAddress, job.GeneratedJobID, defaultJobTitle),
		Description:     firstNonEmpty(job.JobDescription, job.JobNotes),
		Status:          MapJobStatus(job.Status, bool(job.JobIsQuoted)),
		ScheduledDate:   parseRemoteDate(job.WorkStartDate, job.DateCreated),
		CompletedDate:   parseRemoteDate(job.WorkEndDate, job.DateCompleted),
		Address:         firstNonEmpty(job.JobAddress, job.BillingAddress),
		Total:           parseRemoteAmount(job.TotalPrice, job.JobPrice, job.InvoiceTotal),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  syncActor,
			ModifiedBy: syncActor,
		},
	}

	result, err := s.bookingRepo.UpsertExternal(ctx, booking)
	if err != nil {
		return false, fmt.Errorf("failed to upsert booking for job %s: %w", job.UUID, err)
	}

	if attachmentErr := s.syncAttachments(ctx, result.ID, job.UUID); attachmentErr != nil {
		log.Warn().Err(attachmentErr).
			Str("bookingID", result.ID).
			Str("jobUUID", job.UUID).
			Msg("attachment sync failed, booking remains synced")
	}

	return result.Created, nil
}

// syncAttachments is create-only: attachments already recorded for the
// booking are never updated, even if the remote metadata changed.
func (s *serviceImpl) syncAttachments(ctx context.Context, bookingID, jobUUID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sync.syncAttachments")
	defer scope.End()
	defer scope.TraceIfError(err)

	remotes, err := s.client.GetJobAttachments(ctx, jobUUID)
	if err != nil {
		return fmt.Errorf("failed to fetch attachments for job %s: %w", jobUUID, err)
	}

	for _, remote := range remotes {
		externalUUID := remote.UUID
		attachment := attachmentModel.Attachment{
			ID:                     uuid.NewString(),
			BookingID:              bookingID,
			ExternalAttachmentUUID: &externalUUID,
			FileName:               firstNonEmpty(remote.AttachmentName, remote.FileName, "Attachment"),
			FileURL:                s.client.AttachmentFileURL(remote.UUID),
			FileType:               firstNonEmpty(remote.FileType, "unknown"),
			FileSize:               int64(remote.FileSize),
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  syncActor,
				ModifiedBy: syncActor,
			},
		}

		if _, insertErr := s.attachmentRepo.InsertIgnoreExternal(ctx, attachment); insertErr != nil {
			log.Error().Err(insertErr).
				Str("bookingID", bookingID).
				Str("attachmentUUID", remote.UUID).
				Msg("failed to insert attachment")
		}
	}

	return nil
}

// LinkCustomer stores the external company identifier on a customer
// after verifying the company exists on the provider side.
func (s *serviceImpl) LinkCustomer(ctx context.Context, customerID string, req dto.LinkCustomerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sync.LinkCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName)

	exist, err := s.customerRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("customerID", customerID).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !exist {
		return failure.NotFound("customer not found") // nolint:wrapcheck
	}

	if _, err = s.client.GetCompany(ctx, req.CompanyUUID); err != nil {
		log.Error().Err(err).Str("companyUUID", req.CompanyUUID).Msg("company not found on provider")

		return failure.BadRequestFromString("company not found on provider") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		customerModel.FieldExternalCompanyUUID: req.CompanyUUID,
		constant.FieldModifiedAt:               timezone.Now(),
		constant.FieldModifiedBy:               customerID,
	}

	if err = s.customerRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("customerID", customerID).Msg("failed to link customer")

		return fmt.Errorf("failed to link customer: %w", err)
	}

	return nil
}

// CompanyInfo reports a customer's link state. A provider failure
// degrades to linked-with-error instead of failing the request.
func (s *serviceImpl) CompanyInfo(ctx context.Context, customerID string) (res dto.CompanyInfoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sync.CompanyInfo")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("customerID", customerID).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	if !customer.Linked() {
		return res, nil
	}

	res.Linked = true
	res.CompanyUUID = customer.ExternalCompanyUUID

	company, remoteErr := s.client.GetCompany(ctx, *customer.ExternalCompanyUUID)
	if remoteErr != nil {
		log.Warn().Err(remoteErr).Str("customerID", customerID).Msg("failed to fetch linked company")

		res.RemoteError = remoteErr.Error()

		return res, nil
	}

	companyResponse := dto.CompanyResponse{}
	companyResponse.FromRemote(company)
	res.Company = &companyResponse

	jobs, remoteErr := s.client.GetJobsByCompany(ctx, *customer.ExternalCompanyUUID)
	if remoteErr != nil {
		log.Warn().Err(remoteErr).Str("customerID", customerID).Msg("failed to count remote jobs")

		res.RemoteError = remoteErr.Error()

		return res, nil
	}

	res.JobCount = len(jobs)

	return res, nil
}

func (s *serviceImpl) Companies(ctx context.Context) (res dto.GetCompaniesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sync.Companies")
	defer scope.End()
	defer scope.TraceIfError(err)

	companies, err := s.client.GetAllCompanies(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list remote companies")

		return res, fmt.Errorf("failed to list remote companies: %w", err)
	}

	res.FromRemotes(companies)

	return res, nil
}

func (s *serviceImpl) TestConnection(ctx context.Context) dto.ConnectionTestResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sync.TestConnection")
	defer scope.End()

	companies, err := s.client.GetAllCompanies(ctx)
	if err != nil {
		return dto.ConnectionTestResponse{Error: err.Error()}
	}

	return dto.ConnectionTestResponse{Connected: true, Companies: len(companies)}
}

// publishSummary emits a sync summary event, fire-and-forget.
func (s *serviceImpl) publishSummary(ctx context.Context, res dto.CustomerSyncResult) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: res.CustomerID, Value: res}
		if err := s.producer.SendMessages(c, s.cfg.Kafka.SyncTopic, message); err != nil {
			log.Error().Err(err).Str("customerID", res.CustomerID).Msg("failed to publish sync summary")
		}
	}()
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != constant.Empty {
			return value
		}
	}

	return constant.Empty
}

func parseRemoteDate(values ...string) *time.Time {
	for _, value := range values {
		if value == constant.Empty {
			continue
		}

		for _, layout := range remoteDateLayouts {
			if parsed, err := time.Parse(layout, value); err == nil {
				return &parsed
			}
		}
	}

	return nil
}

func parseRemoteAmount(values ...string) float64 {
	for _, value := range values {
		if value == constant.Empty {
			continue
		}

		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}

	return 0
}
