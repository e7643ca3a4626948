package model

import "portal/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID                  = "id"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldPassword            = "password"
	FieldName                = "name"
	FieldExternalCompanyUUID = "external_company_uuid"
	FieldActive              = "active"
)

type Customer struct {
	ID                  string  `db:"id"`
	Email               string  `db:"email"`
	Phone               string  `db:"phone"`
	Password            string  `db:"password"`
	Name                string  `db:"name"`
	ExternalCompanyUUID *string `db:"external_company_uuid"`
	Active              bool    `db:"active"`
	model.Metadata
}

// Linked reports whether the customer holds an external company
// identifier, the join key for provider sync.
func (c *Customer) Linked() bool {
	return c.ExternalCompanyUUID != nil && *c.ExternalCompanyUUID != ""
}
