package pipeline

import (
	"time"

	"loanflow/pkg/domain"
	dErrors "loanflow/pkg/domain-errors"
)

// DocumentKind identifies the type of a submitted document. The set is
// closed; unknown kinds are rejected at the trust boundary.
type DocumentKind string

const (
	DocumentKindIdentityProof DocumentKind = "identity_proof"
	DocumentKindIncomeProof   DocumentKind = "income_proof"
	DocumentKindAddressProof  DocumentKind = "address_proof"
	DocumentKindBankStatement DocumentKind = "bank_statement"
)

// KnownDocumentKinds lists every supported kind in a stable order.
func KnownDocumentKinds() []DocumentKind {
	return []DocumentKind{
		DocumentKindIdentityProof,
		DocumentKindIncomeProof,
		DocumentKindAddressProof,
		DocumentKindBankStatement,
	}
}

// ParseDocumentKind validates a document kind from its string form.
func ParseDocumentKind(s string) (DocumentKind, error) {
	for _, kind := range KnownDocumentKinds() {
		if s == string(kind) {
			return kind, nil
		}
	}
	return "", dErrors.New(dErrors.CodeValidation, "unknown document kind: "+s)
}

// Document is a submitted document: a kind plus a reference to its content
// in whatever document storage the caller uses.
type Document struct {
	Kind       DocumentKind
	ContentRef string
}

// Application is the immutable input to the approval pipeline. The pipeline
// never mutates it; ownership transfers to the repository on acceptance.
type Application struct {
	ApplicantName string
	Email         string
	Phone         string
	Amount        float64
	Purpose       string
	Documents     []Document
}

// ProcessingStatus is the terminal status of one Process call.
type ProcessingStatus string

const (
	StatusAccepted          ProcessingStatus = "accepted"
	StatusRejected          ProcessingStatus = "rejected"
	StatusAwaitingDocuments ProcessingStatus = "awaiting_documents"
)

// ProcessingResult is the terminal output of the pipeline.
// Reasons is non-empty exactly when Status is not accepted; ApplicationID
// references the persisted record exactly when Status is accepted.
type ProcessingResult struct {
	Status           ProcessingStatus
	Reasons          []string
	MissingDocuments []DocumentKind
	ApplicationID    domain.ApplicationID
	ProcessedAt      time.Time
}

// StageOutcomeKind tags the variant of a StageOutcome.
type StageOutcomeKind string

const (
	StagePass         StageOutcomeKind = "pass"
	StageReject       StageOutcomeKind = "reject"
	StageAwaitingInfo StageOutcomeKind = "awaiting_more_info"
)

// StageOutcome is the tagged result of one pipeline stage. Exactly one
// variant is active: Pass carries nothing, Reject carries reasons,
// AwaitingMoreInfo carries missing document kinds.
type StageOutcome struct {
	Kind    StageOutcomeKind
	Reasons []string
	Missing []DocumentKind
}

// Pass returns the passing outcome.
func Pass() StageOutcome {
	return StageOutcome{Kind: StagePass}
}

// Reject returns a rejecting outcome with the given reasons.
func Reject(reasons ...string) StageOutcome {
	return StageOutcome{Kind: StageReject, Reasons: reasons}
}

// AwaitingMoreInfo returns a deferring outcome naming missing documents.
func AwaitingMoreInfo(missing ...DocumentKind) StageOutcome {
	return StageOutcome{Kind: StageAwaitingInfo, Missing: missing}
}

// StoredApplication is an application as persisted by the repository.
type StoredApplication struct {
	ID          domain.ApplicationID
	Application Application
	ReceivedAt  time.Time
}
