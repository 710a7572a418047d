package pipeline

import (
	"fmt"
	"strings"

	"loanflow/internal/pipeline/ports"
)

// MinimumCreditScore is the fixed approval threshold. Applications scoring
// below it are rejected at the credit stage.
const MinimumCreditScore = 650

// FieldValidator checks required application fields and returns an ordered
// list of human-readable error strings (empty = valid). Pure function, no
// I/O.
type FieldValidator func(app Application) []string

// ValidateFields is the default field validator. Each required field that is
// missing or blank after trimming contributes one specific error, in a fixed
// order so reason lists stay deterministic.
func ValidateFields(app Application) []string {
	var errs []string
	if strings.TrimSpace(app.ApplicantName) == "" {
		errs = append(errs, "Applicant name is required")
	}
	if strings.TrimSpace(app.Email) == "" {
		errs = append(errs, "Email is required")
	}
	if strings.TrimSpace(app.Phone) == "" {
		errs = append(errs, "Phone number is required")
	}
	if app.Amount <= 0 {
		errs = append(errs, "Loan amount must be greater than zero")
	}
	if strings.TrimSpace(app.Purpose) == "" {
		errs = append(errs, "Loan purpose is required")
	}
	return errs
}

// EvaluateDocuments maps a document check result onto a stage outcome.
// Missing documents take precedence over invalid ones: there is no point
// rejecting content the applicant is about to resubmit anyway.
func EvaluateDocuments(res ports.DocumentCheckResult) StageOutcome {
	if len(res.MissingKinds) > 0 {
		missing := make([]DocumentKind, 0, len(res.MissingKinds))
		for _, kind := range res.MissingKinds {
			missing = append(missing, DocumentKind(kind))
		}
		return AwaitingMoreInfo(missing...)
	}
	if !res.Valid {
		reasons := res.InvalidReasons
		if len(reasons) == 0 {
			reasons = []string{"Submitted documents failed validation"}
		}
		return Reject(reasons...)
	}
	return Pass()
}

// EvaluateCredit maps a credit bureau result onto a stage outcome.
// Bureau failures reject with the bureau's message verbatim; this is the
// whole failure-handling policy, no retry.
func EvaluateCredit(res ports.CreditScoreResult) StageOutcome {
	if !res.Success {
		message := res.Message
		if message == "" {
			message = "Credit bureau is unavailable"
		}
		return Reject(message)
	}
	if res.Score < MinimumCreditScore {
		return Reject(fmt.Sprintf("Credit score %d is below minimum required score of %d", res.Score, MinimumCreditScore))
	}
	return Pass()
}
