package repository

import (
	"github.com/ozelders/tutormatch/internal/model"
	"github.com/ozelders/tutormatch/internal/repository/base"
)

// TeacherRepository is the authoritative id -> teacher mapping. Teachers
// are never deleted.
type TeacherRepository struct {
	byID  map[int64]*model.Teacher
	order []int64
	seq   *base.Sequence
}

func NewTeacherRepository() *TeacherRepository {
	return &TeacherRepository{
		byID: make(map[int64]*model.Teacher),
		seq:  base.NewSequence(),
	}
}

// Create allocates the next id and registers the teacher.
func (r *TeacherRepository) Create(name, phone, branch string) *model.Teacher {
	teacher := model.NewTeacher(r.seq.Next(), name, phone, branch)
	r.byID[teacher.ID] = teacher
	r.order = append(r.order, teacher.ID)
	return teacher
}

// GetByID returns nil when no teacher has the given id.
func (r *TeacherRepository) GetByID(id int64) *model.Teacher {
	return r.byID[id]
}

// List returns all teachers in registration order.
func (r *TeacherRepository) List() []*model.Teacher {
	out := make([]*model.Teacher, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// NextID returns the id the next Create would allocate.
func (r *TeacherRepository) NextID() int64 {
	return r.seq.Peek()
}

// Restore replaces the repository contents wholesale. Only the snapshot
// load path calls it.
func (r *TeacherRepository) Restore(teachers []*model.Teacher, nextID int64) {
	r.byID = make(map[int64]*model.Teacher, len(teachers))
	r.order = r.order[:0]
	for _, t := range teachers {
		r.byID[t.ID] = t
		r.order = append(r.order, t.ID)
	}
	r.seq.Reset(nextID)
}
