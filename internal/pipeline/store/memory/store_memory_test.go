package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loanflow/internal/pipeline"
	"loanflow/internal/pipeline/store/memory"
	"loanflow/pkg/domain"
	"loanflow/pkg/platform/sentinel"
)

func storedApplication() pipeline.StoredApplication {
	return pipeline.StoredApplication{
		ID: domain.NewApplicationID(),
		Application: pipeline.Application{
			ApplicantName: "Ada Lovelace",
			Email:         "ada@example.com",
			Phone:         "+44-700-900-123",
			Amount:        25000,
			Purpose:       "home renovation",
			Documents: []pipeline.Document{
				{Kind: pipeline.DocumentKindIdentityProof, ContentRef: "s3://docs/ada/id.pdf"},
			},
		},
		ReceivedAt: time.Now().UTC(),
	}
}

func TestStoreSaveAndFind(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	record := storedApplication()

	require.NoError(t, store.Save(ctx, record))

	found, err := store.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record, found)
}

func TestStoreSaveDuplicate(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	record := storedApplication()

	require.NoError(t, store.Save(ctx, record))
	err := store.Save(ctx, record)
	assert.ErrorIs(t, err, sentinel.ErrConflict)
}

func TestStoreFindMissing(t *testing.T) {
	store := memory.New()

	_, err := store.FindByID(context.Background(), domain.NewApplicationID())
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
