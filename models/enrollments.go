package models

const (
	EnrollmentActive   = "active"
	EnrollmentInactive = "inactive"
)

type Enrollment struct {
	Base
	UserID     int    `json:"userId"`
	CourseID   int    `json:"courseId"`
	EnrolledAt string `json:"enrolledAt"`
	Status     string `json:"status"`   // active, inactive
	Progress   int    `json:"progress"` // 0..100
}

type LessonProgress struct {
	Base
	EnrollmentID int     `json:"enrollmentId"`
	LessonID     int     `json:"lessonId"`
	Completed    bool    `json:"completed"`
	CompletedAt  *string `json:"completedAt"`
}
