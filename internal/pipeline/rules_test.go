package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loanflow/internal/pipeline"
	"loanflow/internal/pipeline/ports"
)

func TestValidateFields(t *testing.T) {
	valid := pipeline.Application{
		ApplicantName: "Grace Hopper",
		Email:         "grace@example.com",
		Phone:         "+1-555-0100",
		Amount:        12000,
		Purpose:       "debt consolidation",
	}

	tests := []struct {
		name   string
		mutate func(*pipeline.Application)
		want   []string
	}{
		{
			name:   "valid application has no errors",
			mutate: func(*pipeline.Application) {},
			want:   nil,
		},
		{
			name:   "blank name",
			mutate: func(a *pipeline.Application) { a.ApplicantName = "  " },
			want:   []string{"Applicant name is required"},
		},
		{
			name:   "blank email",
			mutate: func(a *pipeline.Application) { a.Email = "" },
			want:   []string{"Email is required"},
		},
		{
			name:   "blank phone",
			mutate: func(a *pipeline.Application) { a.Phone = "\t" },
			want:   []string{"Phone number is required"},
		},
		{
			name:   "zero amount",
			mutate: func(a *pipeline.Application) { a.Amount = 0 },
			want:   []string{"Loan amount must be greater than zero"},
		},
		{
			name:   "negative amount",
			mutate: func(a *pipeline.Application) { a.Amount = -1 },
			want:   []string{"Loan amount must be greater than zero"},
		},
		{
			name:   "blank purpose",
			mutate: func(a *pipeline.Application) { a.Purpose = " " },
			want:   []string{"Loan purpose is required"},
		},
		{
			name: "every field missing reports every error in order",
			mutate: func(a *pipeline.Application) {
				*a = pipeline.Application{}
			},
			want: []string{
				"Applicant name is required",
				"Email is required",
				"Phone number is required",
				"Loan amount must be greater than zero",
				"Loan purpose is required",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := valid
			tc.mutate(&app)
			assert.Equal(t, tc.want, pipeline.ValidateFields(app))
		})
	}
}

func TestEvaluateDocuments(t *testing.T) {
	t.Run("valid result passes", func(t *testing.T) {
		outcome := pipeline.EvaluateDocuments(ports.DocumentCheckResult{Valid: true})
		assert.Equal(t, pipeline.StagePass, outcome.Kind)
	})

	t.Run("missing kinds defer", func(t *testing.T) {
		outcome := pipeline.EvaluateDocuments(ports.DocumentCheckResult{
			Valid:        true,
			MissingKinds: []string{"income_proof"},
		})
		assert.Equal(t, pipeline.StageAwaitingInfo, outcome.Kind)
		assert.Equal(t, []pipeline.DocumentKind{pipeline.DocumentKindIncomeProof}, outcome.Missing)
	})

	t.Run("missing takes precedence over invalid", func(t *testing.T) {
		outcome := pipeline.EvaluateDocuments(ports.DocumentCheckResult{
			Valid:          false,
			InvalidReasons: []string{"Document identity_proof has an empty content reference"},
			MissingKinds:   []string{"address_proof"},
		})
		assert.Equal(t, pipeline.StageAwaitingInfo, outcome.Kind)
	})

	t.Run("invalid result rejects with reasons", func(t *testing.T) {
		outcome := pipeline.EvaluateDocuments(ports.DocumentCheckResult{
			Valid:          false,
			InvalidReasons: []string{"Document income_proof has an empty content reference"},
		})
		assert.Equal(t, pipeline.StageReject, outcome.Kind)
		assert.Equal(t, []string{"Document income_proof has an empty content reference"}, outcome.Reasons)
	})

	t.Run("invalid result without reasons gets a generic one", func(t *testing.T) {
		outcome := pipeline.EvaluateDocuments(ports.DocumentCheckResult{Valid: false})
		assert.Equal(t, pipeline.StageReject, outcome.Kind)
		assert.Equal(t, []string{"Submitted documents failed validation"}, outcome.Reasons)
	})
}

func TestEvaluateCredit(t *testing.T) {
	t.Run("score at threshold passes", func(t *testing.T) {
		outcome := pipeline.EvaluateCredit(ports.CreditScoreResult{Success: true, Score: pipeline.MinimumCreditScore})
		assert.Equal(t, pipeline.StagePass, outcome.Kind)
	})

	t.Run("score above threshold passes", func(t *testing.T) {
		outcome := pipeline.EvaluateCredit(ports.CreditScoreResult{Success: true, Score: 810})
		assert.Equal(t, pipeline.StagePass, outcome.Kind)
	})

	t.Run("score below threshold rejects naming both scores", func(t *testing.T) {
		outcome := pipeline.EvaluateCredit(ports.CreditScoreResult{Success: true, Score: 649})
		assert.Equal(t, pipeline.StageReject, outcome.Kind)
		assert.Equal(t, []string{"Credit score 649 is below minimum required score of 650"}, outcome.Reasons)
	})

	t.Run("bureau failure rejects with its message verbatim", func(t *testing.T) {
		outcome := pipeline.EvaluateCredit(ports.CreditScoreResult{Success: false, Message: "Service timeout"})
		assert.Equal(t, pipeline.StageReject, outcome.Kind)
		assert.Equal(t, []string{"Service timeout"}, outcome.Reasons)
	})

	t.Run("bureau failure without message gets a generic one", func(t *testing.T) {
		outcome := pipeline.EvaluateCredit(ports.CreditScoreResult{Success: false})
		assert.Equal(t, pipeline.StageReject, outcome.Kind)
		assert.Equal(t, []string{"Credit bureau is unavailable"}, outcome.Reasons)
	})
}
