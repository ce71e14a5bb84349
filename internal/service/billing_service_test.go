package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPay(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		hourly   float64
		want     float64
	}{
		{"ninety minutes at four hundred", 90, 400, 600},
		{"half hour at one hundred", 30, 100, 50},
		{"full hour", 60, 400, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			student, teacher, lesson := env.seed(t, tt.duration, tt.hourly)
			ctx := context.Background()

			appt, err := env.bookings.CreateAppointment(ctx, student.ID, teacher.ID, lesson.ID, "2025-03-10", "14:00")
			require.NoError(t, err)

			payment, err := env.billing.Pay(ctx, appt.ID, "Kart")
			require.NoError(t, err)

			assert.Equal(t, tt.want, payment.Amount)
			assert.Equal(t, appt.ID, payment.AppointmentID)
			assert.Equal(t, "Kart", payment.Method)
			assert.False(t, payment.PaidAt.IsZero())
			assert.True(t, appt.Paid)
			require.NotNil(t, appt.PaymentID)
			assert.Equal(t, payment.ID, *appt.PaymentID)
		})
	}
}

func TestPayTwice(t *testing.T) {
	env := newTestEnv(t)
	student, teacher, lesson := env.seed(t, 60, 400)
	ctx := context.Background()

	appt, err := env.bookings.CreateAppointment(ctx, student.ID, teacher.ID, lesson.ID, "2025-03-10", "14:00")
	require.NoError(t, err)

	first, err := env.billing.Pay(ctx, appt.ID, "Kart")
	require.NoError(t, err)

	_, err = env.billing.Pay(ctx, appt.ID, "Nakit")
	assert.ErrorIs(t, err, ErrAlreadyPaid)

	// Exactly one payment exists and the first one stands unchanged.
	payments := env.billing.ListPayments()
	require.Len(t, payments, 1)
	assert.Equal(t, first.ID, payments[0].ID)
	assert.Equal(t, "Kart", payments[0].Method)
}

func TestPayUnknownAppointment(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, 60, 400)

	_, err := env.billing.Pay(context.Background(), 42, "Kart")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestPayUsesLiveLessonLookup(t *testing.T) {
	env := newTestEnv(t)
	student, teacher, lesson := env.seed(t, 90, 400)
	ctx := context.Background()

	appt, err := env.bookings.CreateAppointment(ctx, student.ID, teacher.ID, lesson.ID, "2025-03-10", "14:00")
	require.NoError(t, err)

	// Lessons are immutable in practice, but the amount must come from
	// the lesson as it is at payment time.
	lesson.HourlyPrice = 500

	payment, err := env.billing.Pay(ctx, appt.ID, "Havale")
	require.NoError(t, err)
	assert.Equal(t, 750.0, payment.Amount)
}
