package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IDGenerator supplies identifiers for new invoices and line items.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDv4 identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NumberGenerator supplies display numbers for new invoices.
type NumberGenerator interface {
	NextNumber() string
}

// ClockNumberGenerator derives invoice numbers from the last six digits of
// the millisecond clock, e.g. INV-482913.
type ClockNumberGenerator struct {
	Now func() time.Time
}

func (g ClockNumberGenerator) NextNumber() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return fmt.Sprintf("INV-%06d", now().UnixMilli()%1_000_000)
}
