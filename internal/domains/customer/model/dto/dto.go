package dto

import (
	"portal/internal/domains/customer/model"
	gDto "portal/shared/dto"
)

type CustomerResponse struct {
	ID                  string  `json:"id"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	Name                string  `json:"name"`
	ExternalCompanyUUID *string `json:"external_company_uuid,omitempty"`
	Active              bool    `json:"active"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Email = model.Email
	r.Phone = model.Phone
	r.Name = model.Name
	r.ExternalCompanyUUID = model.ExternalCompanyUUID
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}
