package models

const (
	LevelBasic        = "basic"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Course struct {
	Base
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Level       string `json:"level"`    // basic, intermediate, advanced
	Duration    int    `json:"duration"` // minutes
	ImageURL    string `json:"imageUrl"`
	Status      string `json:"status"` // draft, published
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	Instructor  int    `json:"instructor,omitempty"`
}

type Module struct {
	Base
	CourseID int    `json:"courseId"`
	Title    string `json:"title"`
	Order    int    `json:"order"`
}

const (
	LessonVideo = "video"
	LessonText  = "text"
	LessonFile  = "file"
)

// Lesson keeps all three payload fields so the persisted document shape
// stays stable; the type says which one is authoritative.
type Lesson struct {
	Base
	ModuleID int     `json:"moduleId"`
	Title    string  `json:"title"`
	Type     string  `json:"type"` // video, text, file
	Order    int     `json:"order"`
	Content  string  `json:"content"`
	VideoURL string  `json:"videoUrl"`
	FileURL  *string `json:"fileUrl"`
}

// Quiz belongs to exactly one of a course or a module; the other
// reference stays null.
type Quiz struct {
	Base
	CourseID    *int   `json:"courseId"`
	ModuleID    *int   `json:"moduleId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Question struct {
	Base
	QuizID int    `json:"quizId"`
	Text   string `json:"text"`
	Order  int    `json:"order"`
}

type Choice struct {
	Base
	QuestionID int    `json:"questionId"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"isCorrect"`
}
