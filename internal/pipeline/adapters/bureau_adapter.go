package adapters

import (
	"context"

	"loanflow/internal/creditbureau"
	"loanflow/internal/pipeline/ports"
)

// BureauAdapter implements ports.CreditBureau on top of a creditbureau
// Scorer (the raw client or the cache-fronted one).
type BureauAdapter struct {
	scorer creditbureau.Scorer
}

// NewBureauAdapter creates an adapter around a bureau scorer.
func NewBureauAdapter(scorer creditbureau.Scorer) ports.CreditBureau {
	return &BureauAdapter{scorer: scorer}
}

func (a *BureauAdapter) Check(ctx context.Context, phone string) (ports.CreditScoreResult, error) {
	result, err := a.scorer.Score(ctx, phone)
	if err != nil {
		return ports.CreditScoreResult{}, err
	}

	return ports.CreditScoreResult{
		Success: result.Success,
		Score:   result.Score,
		Message: result.Message,
	}, nil
}
