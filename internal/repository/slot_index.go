package repository

import (
	"fmt"

	"github.com/ozelders/tutormatch/internal/model"
)

// SlotIndex tracks which (teacher, date, time) slots are occupied. It is
// maintained alongside the appointment map and rebuilt from it on reload.
type SlotIndex struct {
	occupied map[model.SlotKey]int64
}

func NewSlotIndex() *SlotIndex {
	return &SlotIndex{occupied: make(map[model.SlotKey]int64)}
}

// IsOccupied reports whether an appointment already holds the slot.
func (i *SlotIndex) IsOccupied(key model.SlotKey) bool {
	_, ok := i.occupied[key]
	return ok
}

// Reserve marks the slot as held by the given appointment. The caller must
// have confirmed !IsOccupied(key); reserving is the commit half of that
// check-then-reserve sequence and must not be interleaved with another
// booking.
func (i *SlotIndex) Reserve(key model.SlotKey, appointmentID int64) {
	i.occupied[key] = appointmentID
}

// Rebuild reconstructs the index from persisted appointments. A duplicate
// key means two appointments claim the same teacher slot, which can only
// come from a corrupt snapshot; it is reported, never merged.
func (i *SlotIndex) Rebuild(appointments []*model.Appointment) error {
	occupied := make(map[model.SlotKey]int64, len(appointments))
	for _, a := range appointments {
		key := a.SlotKey()
		if prev, ok := occupied[key]; ok {
			return fmt.Errorf("slot %s %s of teacher %d claimed by appointments %d and %d",
				key.Date, key.Time, key.TeacherID, prev, a.ID)
		}
		occupied[key] = a.ID
	}
	i.occupied = occupied
	return nil
}
