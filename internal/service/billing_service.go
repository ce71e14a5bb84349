package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ozelders/tutormatch/internal/model"
	"github.com/ozelders/tutormatch/internal/repository"
)

// BillingService collects payments for appointments. An appointment is
// paid at most once.
type BillingService struct {
	appointments *repository.AppointmentRepository
	lessons      *repository.LessonRepository
	payments     *repository.PaymentRepository
	snapshots    Persister
	logger       *zap.Logger
}

func NewBillingService(
	appointments *repository.AppointmentRepository,
	lessons *repository.LessonRepository,
	payments *repository.PaymentRepository,
	snapshots Persister,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		appointments: appointments,
		lessons:      lessons,
		payments:     payments,
		snapshots:    snapshots,
		logger:       logger,
	}
}

// Pay charges an appointment. The amount comes from the lesson as it is at
// payment time, looked up live rather than captured at booking.
func (s *BillingService) Pay(ctx context.Context, appointmentID int64, method string) (*model.Payment, error) {
	appt := s.appointments.GetByID(appointmentID)
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}

	if appt.Paid {
		return nil, ErrAlreadyPaid
	}

	lesson := s.lessons.GetByID(appt.LessonID)
	if lesson == nil {
		return nil, ErrLessonNotFound
	}

	payment := s.payments.Create(appointmentID, lesson.Total(), method)
	appt.MarkPaid(payment.ID)

	if err := s.snapshots.Persist(ctx); err != nil {
		return nil, fmt.Errorf("persist snapshot: %w", err)
	}

	s.logger.Info("Payment received",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("appointment_id", appointmentID),
		zap.Float64("amount", payment.Amount),
		zap.String("method", method),
	)

	return payment, nil
}

// ListPayments returns all payments in creation order.
func (s *BillingService) ListPayments() []*model.Payment {
	return s.payments.List()
}
