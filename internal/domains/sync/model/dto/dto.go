package dto

import "portal/infras/servicem8"

// CustomerSyncResult summarizes one customer's reconciliation pass.
// Failed counts jobs whose upsert failed; the pass keeps going past them.
type CustomerSyncResult struct {
	CustomerID string `json:"customer_id"`
	Linked     bool   `json:"linked"`
	TotalJobs  int    `json:"total_jobs"`
	Created    int    `json:"created"`
	Updated    int    `json:"updated"`
	Failed     int    `json:"failed"`
}

type SyncError struct {
	CustomerID string `json:"customer_id"`
	Error      string `json:"error"`
}

type BulkSyncResult struct {
	TotalCustomers int                  `json:"total_customers"`
	Synced         int                  `json:"synced"`
	TotalCreated   int                  `json:"total_created"`
	TotalUpdated   int                  `json:"total_updated"`
	Results        []CustomerSyncResult `json:"results"`
	Errors         []SyncError          `json:"errors"`
}

type LinkCustomerRequest struct {
	CompanyUUID string `json:"company_uuid" validate:"required,uuid"`
}

type CompanyResponse struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (r *CompanyResponse) FromRemote(company servicem8.Company) {
	r.UUID = company.UUID
	r.Name = company.Name
	r.Email = company.Email
	r.Address = company.Address
}

type GetCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
	TotalData int               `json:"total_data"`
}

func (r *GetCompaniesResponse) FromRemotes(companies []servicem8.Company) {
	r.TotalData = len(companies)

	r.Companies = make([]CompanyResponse, len(companies))
	for i, company := range companies {
		r.Companies[i].FromRemote(company)
	}
}

// CompanyInfoResponse reports link state for a customer. RemoteError is
// set when the provider lookup fails; the endpoint still returns 200.
type CompanyInfoResponse struct {
	Linked      bool             `json:"linked"`
	CompanyUUID *string          `json:"company_uuid,omitempty"`
	Company     *CompanyResponse `json:"company,omitempty"`
	JobCount    int              `json:"job_count"`
	RemoteError string           `json:"remote_error,omitempty"`
}

type ConnectionTestResponse struct {
	Connected bool   `json:"connected"`
	Companies int    `json:"companies"`
	Error     string `json:"error,omitempty"`
}
