package storage

import "time"

// Meta describes how and when a snapshot was produced.
type Meta struct {
	Storage   string    `json:"storage"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	storageKind     = "json_snapshot"
	snapshotVersion = 1
)

// NextIDs carries the per-entity id counters. The payment counter is
// persisted even though payment records are not, so payment ids stay
// unique across restarts.
type NextIDs struct {
	Student     int64 `json:"student"`
	Teacher     int64 `json:"teacher"`
	Lesson      int64 `json:"lesson"`
	Appointment int64 `json:"appointment"`
	Payment     int64 `json:"payment"`
}

// PersistStudent is the serialized form of a student. Only the masked
// phone display string is stored; the real number does not survive a
// reload.
type PersistStudent struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	PhoneMasked  string  `json:"phone_masked"`
	Grade        string  `json:"grade"`
	Appointments []int64 `json:"appointments"`
}

// PersistTeacher is the serialized form of a teacher. Phone and ratings
// are not stored.
type PersistTeacher struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Branch  string  `json:"branch"`
	Lessons []int64 `json:"lessons"`
}

type PersistLesson struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Duration int     `json:"duration"`
	Hourly   float64 `json:"hourly"`
}

type PersistAppointment struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"student_id"`
	TeacherID int64  `json:"teacher_id"`
	LessonID  int64  `json:"lesson_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Paid      bool   `json:"paid"`
}

// Snapshot is the full serialized state of the system. Payment records are
// deliberately absent: the paid flag on each appointment survives a reload,
// the payment history does not.
type Snapshot struct {
	Meta         Meta                 `json:"_meta"`
	NextIDs      NextIDs              `json:"next_ids"`
	Students     []PersistStudent     `json:"students"`
	Teachers     []PersistTeacher     `json:"teachers"`
	Lessons      []PersistLesson      `json:"lessons"`
	Appointments []PersistAppointment `json:"appointments"`
}
