package repository

import (
	"github.com/ozelders/tutormatch/internal/model"
	"github.com/ozelders/tutormatch/internal/repository/base"
)

// StudentRepository is the authoritative id -> student mapping. Students
// are never deleted.
type StudentRepository struct {
	byID  map[int64]*model.Student
	order []int64
	seq   *base.Sequence
}

func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		byID: make(map[int64]*model.Student),
		seq:  base.NewSequence(),
	}
}

// Create allocates the next id and registers the student.
func (r *StudentRepository) Create(name, phone, grade string) *model.Student {
	student := model.NewStudent(r.seq.Next(), name, phone, grade)
	r.byID[student.ID] = student
	r.order = append(r.order, student.ID)
	return student
}

// GetByID returns nil when no student has the given id.
func (r *StudentRepository) GetByID(id int64) *model.Student {
	return r.byID[id]
}

// List returns all students in registration order.
func (r *StudentRepository) List() []*model.Student {
	out := make([]*model.Student, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// NextID returns the id the next Create would allocate.
func (r *StudentRepository) NextID() int64 {
	return r.seq.Peek()
}

// Restore replaces the repository contents wholesale. Only the snapshot
// load path calls it.
func (r *StudentRepository) Restore(students []*model.Student, nextID int64) {
	r.byID = make(map[int64]*model.Student, len(students))
	r.order = r.order[:0]
	for _, s := range students {
		r.byID[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	r.seq.Reset(nextID)
}
