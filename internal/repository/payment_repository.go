package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/ozelders/tutormatch/internal/model"
	"github.com/ozelders/tutormatch/internal/repository/base"
)

// PaymentRepository is the authoritative id -> payment mapping. Payment
// records are not persisted; only the id counter survives a reload, so
// payment ids stay unique across restarts.
type PaymentRepository struct {
	byID  map[int64]*model.Payment
	order []int64
	seq   *base.Sequence
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		byID: make(map[int64]*model.Payment),
		seq:  base.NewSequence(),
	}
}

// Create allocates the next id and records the payment with the current
// timestamp and a fresh receipt reference.
func (r *PaymentRepository) Create(appointmentID int64, amount float64, method string) *model.Payment {
	payment := &model.Payment{
		ID:            r.seq.Next(),
		AppointmentID: appointmentID,
		Amount:        amount,
		Method:        method,
		Reference:     uuid.New(),
		PaidAt:        time.Now(),
	}
	r.byID[payment.ID] = payment
	r.order = append(r.order, payment.ID)
	return payment
}

// GetByID returns nil when no payment has the given id.
func (r *PaymentRepository) GetByID(id int64) *model.Payment {
	return r.byID[id]
}

// List returns all payments in creation order.
func (r *PaymentRepository) List() []*model.Payment {
	out := make([]*model.Payment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// NextID returns the id the next Create would allocate.
func (r *PaymentRepository) NextID() int64 {
	return r.seq.Peek()
}

// Restore drops all payment records and restores the id counter. The
// snapshot carries the counter but not the records.
func (r *PaymentRepository) Restore(nextID int64) {
	r.byID = make(map[int64]*model.Payment)
	r.order = r.order[:0]
	r.seq.Reset(nextID)
}
