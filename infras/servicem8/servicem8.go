package servicem8

//go:generate go run go.uber.org/mock/mockgen -source=./servicem8.go -destination=./mocks/servicem8_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"portal/config"
	"portal/infras/otel"
	"portal/shared/constant"
)

const (
	otelAttrEndpoint = "servicem8.endpoint"
)

// Client talks to the ServiceM8 REST API. Authentication uses the
// X-API-Key header; every call is bounded by the configured timeout.
type Client interface {
	GetJobsByCompany(ctx context.Context, companyUUID string) ([]Job, error)
	GetJob(ctx context.Context, jobUUID string) (Job, error)
	GetJobAttachments(ctx context.Context, jobUUID string) ([]Attachment, error)
	GetCompany(ctx context.Context, companyUUID string) (Company, error)
	GetAllCompanies(ctx context.Context) ([]Company, error)
	DownloadAttachment(ctx context.Context, attachmentUUID string) (data []byte, contentType string, err error)
	AttachmentFileURL(attachmentUUID string) string
}

type clientImpl struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Client {
	if cfg.External.ServiceM8.APIKey == constant.Empty {
		log.Warn().Msg("ServiceM8 API key not configured")
	}

	return &clientImpl{
		baseURL: cfg.External.ServiceM8.BaseURL,
		apiKey:  cfg.External.ServiceM8.APIKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.External.ServiceM8.TimeoutSeconds) * time.Second,
		},
		otel: otl,
	}
}

func (c *clientImpl) GetJobsByCompany(ctx context.Context, companyUUID string) (jobs []Job, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".servicem8.GetJobsByCompany")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{"company_uuid": []string{companyUUID}}
	if err = c.getJSON(ctx, scope, "/job.json", query, &jobs); err != nil {
		return nil, fmt.Errorf("failed to fetch jobs for company %s: %w", companyUUID, err)
	}

	return jobs, nil
}

func (c *clientImpl) GetJob(ctx context.Context, jobUUID string) (job Job, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".servicem8.GetJob")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = c.getJSON(ctx, scope, "/job.json/"+jobUUID, nil, &job); err != nil {
		return job, fmt.Errorf("failed to fetch job %s: %w", jobUUID, err)
	}

	return job, nil
}

func (c *clientImpl) GetJobAttachments(ctx context.Context, jobUUID string) (attachments []Attachment, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".servicem8.GetJobAttachments")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := url.Values{"related_object_uuid": []string{jobUUID}}
	if err = c.getJSON(ctx, scope, "/attachment.json", query, &attachments); err != nil {
		return nil, fmt.Errorf("failed to fetch attachments for job %s: %w", jobUUID, err)
	}

	return attachments, nil
}

func (c *clientImpl) GetCompany(ctx context.Context, companyUUID string) (company Company, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".servicem8.GetCompany")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = c.getJSON(ctx, scope, "/company.json/"+companyUUID, nil, &company); err != nil {
		return company, fmt.Errorf("failed to fetch company %s: %w", companyUUID, err)
	}

	return company, nil
}

func (c *clientImpl) GetAllCompanies(ctx context.Context) (companies []Company, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".servicem8.GetAllCompanies")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = c.getJSON(ctx, scope, "/company.json", nil, &companies); err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}

	return companies, nil
}

func (c *clientImpl) DownloadAttachment(ctx context.Context, attachmentUUID string) (data []byte, contentType string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".servicem8.DownloadAttachment")
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := c.AttachmentFileURL(attachmentUUID)
	scope.SetAttribute(otelAttrEndpoint, endpoint)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, constant.Empty, fmt.Errorf("failed to build attachment download request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderAPIKey, c.apiKey)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, constant.Empty, fmt.Errorf("failed to download attachment %s: %w", attachmentUUID, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, constant.Empty, fmt.Errorf("unexpected status %d downloading attachment %s", response.StatusCode, attachmentUUID)
	}

	data, err = io.ReadAll(response.Body)
	if err != nil {
		return nil, constant.Empty, fmt.Errorf("failed to read attachment %s body: %w", attachmentUUID, err)
	}

	return data, response.Header.Get(constant.RequestHeaderContentType), nil
}

// AttachmentFileURL returns the deterministic download endpoint for an
// attachment. The file itself is never fetched eagerly.
func (c *clientImpl) AttachmentFileURL(attachmentUUID string) string {
	return fmt.Sprintf("%s/attachment.json/%s/file", c.baseURL, attachmentUUID)
}

func (c *clientImpl) getJSON(ctx context.Context, scope otel.Scope, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	scope.SetAttribute(otelAttrEndpoint, endpoint)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderAPIKey, c.apiKey)
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status %d from %s", response.StatusCode, path)
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}
