package ports

import (
	"context"

	"loanflow/internal/audit"
)

// AuditPort defines the interface for emitting audit events. It matches the
// audit publisher implementations but is declared here to keep the pipeline's
// dependency surface explicit.
type AuditPort interface {
	Emit(ctx context.Context, event audit.Event) error
}
