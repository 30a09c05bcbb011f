package ledger

import (
	"fmt"

	"walletcore/internal/models"
)

// Dispatcher selects the processor for a requested transaction type.
// A missing processor is a deployment error, not a caller mistake.
type Dispatcher struct {
	processors []Processor
}

func NewDispatcher(processors ...Processor) *Dispatcher {
	return &Dispatcher{processors: processors}
}

// Route returns the first registered processor that can handle t.
func (d *Dispatcher) Route(t models.TransactionType) (Processor, error) {
	for _, p := range d.processors {
		if p.CanProcess(t) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoProcessor, t)
}
