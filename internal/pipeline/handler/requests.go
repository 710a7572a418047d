package handler

import (
	"fmt"

	"loanflow/internal/pipeline"
	dErrors "loanflow/pkg/domain-errors"
)

// maxDocuments caps the submitted document count to bound request size.
const maxDocuments = 20

// SubmitApplicationRequest is the HTTP request body for POST /applications.
type SubmitApplicationRequest struct {
	ApplicantName string            `json:"applicant_name"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Amount        float64           `json:"amount"`
	Purpose       string            `json:"purpose"`
	Documents     []DocumentPayload `json:"documents"`

	// Parsed values (populated by Validate)
	parsedDocuments []pipeline.Document
}

// DocumentPayload is one submitted document.
type DocumentPayload struct {
	Kind       string `json:"kind"`
	ContentRef string `json:"content_ref"`
}

// Validate parses the request at the trust boundary. Field-presence policy
// belongs to the pipeline and deliberately does NOT run here: an application
// with a blank name is a well-formed request that processes to a rejection,
// not a malformed one. Only structural concerns (document count, closed
// kind set) reject the request itself.
func (r *SubmitApplicationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	if len(r.Documents) > maxDocuments {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("at most %d documents may be submitted", maxDocuments))
	}

	r.parsedDocuments = make([]pipeline.Document, 0, len(r.Documents))
	for _, doc := range r.Documents {
		kind, err := pipeline.ParseDocumentKind(doc.Kind)
		if err != nil {
			return err
		}
		r.parsedDocuments = append(r.parsedDocuments, pipeline.Document{
			Kind:       kind,
			ContentRef: doc.ContentRef,
		})
	}

	return nil
}

// ToApplication builds the domain application from the validated request.
func (r *SubmitApplicationRequest) ToApplication() pipeline.Application {
	return pipeline.Application{
		ApplicantName: r.ApplicantName,
		Email:         r.Email,
		Phone:         r.Phone,
		Amount:        r.Amount,
		Purpose:       r.Purpose,
		Documents:     r.parsedDocuments,
	}
}
