package model

type Teacher struct {
	ID     int64
	Name   string
	Branch string

	// Lessons holds the ids of the lessons this teacher offers, in
	// creation order.
	Lessons []int64

	phone       string
	ratingSum   int
	ratingCount int
}

func NewTeacher(id int64, name, phone, branch string) *Teacher {
	return &Teacher{ID: id, Name: name, Branch: branch, phone: phone}
}

// MaskedPhone is the only way to read the phone number.
func (t *Teacher) MaskedPhone() string {
	return maskPhone(t.phone)
}

func (t *Teacher) AddLesson(lessonID int64) {
	t.Lessons = append(t.Lessons, lessonID)
}

// HasLesson reports whether the lesson belongs to this teacher.
func (t *Teacher) HasLesson(lessonID int64) bool {
	for _, id := range t.Lessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// Rate records a score. Range validation is the caller's job.
func (t *Teacher) Rate(score int) {
	t.ratingSum += score
	t.ratingCount++
}

// AvgRating returns the mean of all recorded scores, 0 when unrated.
func (t *Teacher) AvgRating() float64 {
	if t.ratingCount == 0 {
		return 0
	}
	return float64(t.ratingSum) / float64(t.ratingCount)
}
