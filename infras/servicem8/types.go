package servicem8

import (
	"bytes"
	"strconv"
)

// Flag is a tolerant boolean: the API serializes flags inconsistently as
// true/false, 0/1 or "0"/"1" depending on the record vintage.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(data, `"`)

	switch string(trimmed) {
	case "true", "1":
		*f = true
	case "false", "0", "", "null":
		*f = false
	default:
		parsed, err := strconv.ParseBool(string(trimmed))
		if err != nil {
			*f = false

			return nil
		}

		*f = Flag(parsed)
	}

	return nil
}

// Size is a tolerant byte count: the API serializes it as a number or a
// quoted string depending on the record vintage. Anything unparseable
// decodes as zero.
type Size int64

func (s *Size) UnmarshalJSON(data []byte) error {
	trimmed := bytes.Trim(data, `"`)

	switch string(trimmed) {
	case "", "null":
		*s = 0

		return nil
	}

	parsed, err := strconv.ParseInt(string(trimmed), 10, 64)
	if err != nil {
		*s = 0

		return nil
	}

	*s = Size(parsed)

	return nil
}

// Job is a service record as returned by the jobs endpoint. Price and
// date fields arrive as strings and may be empty.
type Job struct {
	UUID           string `json:"uuid"`
	JobAddress     string `json:"job_address"`
	GeneratedJobID string `json:"generated_job_id"`
	JobDescription string `json:"job_description"`
	JobNotes       string `json:"job_notes"`
	Status         string `json:"status"`
	JobIsQuoted    Flag   `json:"job_is_quoted"`
	WorkStartDate  string `json:"work_start_date"`
	WorkEndDate    string `json:"work_end_date"`
	DateCreated    string `json:"date_created"`
	DateCompleted  string `json:"date_completed"`
	BillingAddress string `json:"billing_address"`
	TotalPrice     string `json:"total_price"`
	JobPrice       string `json:"job_price"`
	InvoiceTotal   string `json:"invoice_total"`
}

// Attachment is a file record related to a job. The download URL is not
// part of the payload; it is derived from the attachment UUID.
type Attachment struct {
	UUID           string `json:"uuid"`
	AttachmentName string `json:"attachment_name"`
	FileName       string `json:"file_name"`
	FileType       string `json:"file_type"`
	FileSize       Size   `json:"file_size"`
}

// Company is a client record on the provider side.
type Company struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
