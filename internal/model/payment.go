package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment is immutable once created. At most one payment exists per
// appointment. Payments live only in memory: they are not part of the
// persisted snapshot.
type Payment struct {
	ID            int64
	AppointmentID int64
	Amount        float64
	Method        string
	Reference     uuid.UUID
	PaidAt        time.Time
}
