package handler

import (
	"time"

	"loanflow/internal/pipeline"
)

// ProcessingResponse is the HTTP response for POST /applications.
type ProcessingResponse struct {
	Status           string    `json:"status"`
	Reasons          []string  `json:"reasons,omitempty"`
	MissingDocuments []string  `json:"missing_documents,omitempty"`
	ApplicationID    string    `json:"application_id,omitempty"`
	ProcessedAt      time.Time `json:"processed_at"`
}

// FromResult converts a domain ProcessingResult to an HTTP response.
func FromResult(result *pipeline.ProcessingResult) *ProcessingResponse {
	resp := &ProcessingResponse{
		Status:      string(result.Status),
		Reasons:     result.Reasons,
		ProcessedAt: result.ProcessedAt,
	}
	for _, kind := range result.MissingDocuments {
		resp.MissingDocuments = append(resp.MissingDocuments, string(kind))
	}
	if !result.ApplicationID.IsNil() {
		resp.ApplicationID = result.ApplicationID.String()
	}
	return resp
}

// ApplicationResponse is the HTTP response for GET /applications/{id}.
type ApplicationResponse struct {
	ApplicationID string            `json:"application_id"`
	ApplicantName string            `json:"applicant_name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Amount        float64           `json:"amount"`
	Purpose       string            `json:"purpose"`
	Documents     []DocumentPayload `json:"documents,omitempty"`
	ReceivedAt    time.Time         `json:"received_at"`
}

// FromStored converts a persisted application to an HTTP response.
func FromStored(record pipeline.StoredApplication) *ApplicationResponse {
	resp := &ApplicationResponse{
		ApplicationID: record.ID.String(),
		ApplicantName: record.Application.ApplicantName,
		Email:         record.Application.Email,
		Phone:         record.Application.Phone,
		Amount:        record.Application.Amount,
		Purpose:       record.Application.Purpose,
		ReceivedAt:    record.ReceivedAt,
	}
	for _, doc := range record.Application.Documents {
		resp.Documents = append(resp.Documents, DocumentPayload{
			Kind:       string(doc.Kind),
			ContentRef: doc.ContentRef,
		})
	}
	return resp
}
