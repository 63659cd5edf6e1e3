package models

// Comment is attached to a course or a lesson; at least one is set.
type Comment struct {
	Base
	UserID    int    `json:"user"`
	CourseID  *int   `json:"course"`
	LessonID  *int   `json:"lesson"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

type CourseRating struct {
	Base
	UserID    int    `json:"user"`
	CourseID  int    `json:"course"`
	Rating    int    `json:"rating"` // 1..5
	CreatedAt string `json:"createdAt"`
}

type RatingSummary struct {
	CourseID     int      `json:"course_id"`
	AvgRating    *float64 `json:"avg_rating"`
	RatingsCount int      `json:"ratings_count"`
}
