package repository

import (
	"github.com/ozelders/tutormatch/internal/model"
	"github.com/ozelders/tutormatch/internal/repository/base"
)

// LessonRepository is the authoritative id -> lesson mapping. Lessons are
// immutable and never deleted.
type LessonRepository struct {
	byID  map[int64]*model.Lesson
	order []int64
	seq   *base.Sequence
}

func NewLessonRepository() *LessonRepository {
	return &LessonRepository{
		byID: make(map[int64]*model.Lesson),
		seq:  base.NewSequence(),
	}
}

// Create allocates the next id and registers the lesson. Linking the
// lesson to its owning teacher is the caller's job.
func (r *LessonRepository) Create(title string, durationMin int, hourlyPrice float64) *model.Lesson {
	lesson := &model.Lesson{
		ID:          r.seq.Next(),
		Title:       title,
		DurationMin: durationMin,
		HourlyPrice: hourlyPrice,
	}
	r.byID[lesson.ID] = lesson
	r.order = append(r.order, lesson.ID)
	return lesson
}

// GetByID returns nil when no lesson has the given id.
func (r *LessonRepository) GetByID(id int64) *model.Lesson {
	return r.byID[id]
}

// List returns all lessons in creation order.
func (r *LessonRepository) List() []*model.Lesson {
	out := make([]*model.Lesson, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// NextID returns the id the next Create would allocate.
func (r *LessonRepository) NextID() int64 {
	return r.seq.Peek()
}

// Restore replaces the repository contents wholesale. Only the snapshot
// load path calls it.
func (r *LessonRepository) Restore(lessons []*model.Lesson, nextID int64) {
	r.byID = make(map[int64]*model.Lesson, len(lessons))
	r.order = r.order[:0]
	for _, l := range lessons {
		r.byID[l.ID] = l
		r.order = append(r.order, l.ID)
	}
	r.seq.Reset(nextID)
}
