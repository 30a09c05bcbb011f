package ledger

import (
	"context"

	"walletcore/internal/models"
)

// Processor is the common capability all operation processors implement.
// CanProcess reports whether the processor handles the given type;
// Process runs the full protocol for one transaction and returns the
// persisted record.
type Processor interface {
	CanProcess(t models.TransactionType) bool
	Process(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
}
