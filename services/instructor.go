package services

import (
	"fmt"
	"strings"

	"learnhub/models"
	"learnhub/store"
)

// InstructorService is the content editor: CRUD over the whole
// course → module → lesson / quiz → question → choice tree, with
// referential-integrity cascades on delete.
type InstructorService struct {
	Store *store.Store
}

func NewInstructorService(s *store.Store) *InstructorService {
	return &InstructorService{Store: s}
}

// ------- Courses -------

type CourseInput struct {
	Title       string
	Description string
	Category    string
	Level       string
	Duration    int
	Status      string
}

type CourseUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Level       *string
	Duration    *int
	Status      *string
	ImageURL    *string
}

func (is *InstructorService) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	err := is.Store.View(func(snap *store.Snapshot) error {
		courses = append([]models.Course{}, snap.Courses...)
		return nil
	})
	return courses, err
}

func (is *InstructorService) CreateCourse(instructorID int, in CourseInput) (models.Course, error) {
	var course models.Course
	err := is.Store.Update(func(snap *store.Snapshot) error {
		ts := now()
		course = models.Course{
			Base:        models.Base{ID: store.NextID(snap.Courses)},
			Title:       in.Title,
			Description: in.Description,
			Category:    in.Category,
			Level:       in.Level,
			Duration:    in.Duration,
			ImageURL:    "",
			Status:      in.Status,
			CreatedAt:   ts,
			UpdatedAt:   ts,
			Instructor:  instructorID,
		}
		snap.Courses = append(snap.Courses, course)
		return nil
	})
	return course, err
}

func (is *InstructorService) UpdateCourse(id int, in CourseUpdate) (models.Course, error) {
	var course models.Course
	err := is.Store.Update(func(snap *store.Snapshot) error {
		for i := range snap.Courses {
			c := &snap.Courses[i]
			if c.ID != id {
				continue
			}
			if in.Title != nil {
				c.Title = *in.Title
			}
			if in.Description != nil {
				c.Description = *in.Description
			}
			if in.Category != nil {
				c.Category = *in.Category
			}
			if in.Level != nil {
				c.Level = *in.Level
			}
			if in.Duration != nil {
				c.Duration = *in.Duration
			}
			if in.Status != nil {
				c.Status = *in.Status
			}
			if in.ImageURL != nil {
				c.ImageURL = *in.ImageURL
			}
			c.UpdatedAt = now()
			course = *c
			return nil
		}
		return ErrNotFound
	})
	return course, err
}

// DeleteCourse removes the course plus its modules, the lessons in those
// modules, every quiz attached to the course or to a removed module, and
// the questions and choices under those quizzes.
func (is *InstructorService) DeleteCourse(id int) error {
	return is.Store.Update(func(snap *store.Snapshot) error {
		if !courseExists(snap, id) {
			return ErrNotFound
		}

		snap.Courses = filterOutCourse(snap.Courses, id)

		moduleIDs := map[int]bool{}
		kept := snap.Modules[:0]
		for _, m := range snap.Modules {
			if m.CourseID == id {
				moduleIDs[m.ID] = true
				continue
			}
			kept = append(kept, m)
		}
		snap.Modules = kept

		lessons := snap.Lessons[:0]
		for _, l := range snap.Lessons {
			if !moduleIDs[l.ModuleID] {
				lessons = append(lessons, l)
			}
		}
		snap.Lessons = lessons

		quizIDs := map[int]bool{}
		quizzes := snap.Quizzes[:0]
		for _, q := range snap.Quizzes {
			direct := q.CourseID != nil && *q.CourseID == id
			viaModule := q.ModuleID != nil && moduleIDs[*q.ModuleID]
			if direct || viaModule {
				quizIDs[q.ID] = true
				continue
			}
			quizzes = append(quizzes, q)
		}
		snap.Quizzes = quizzes

		dropQuestionsUnderQuizzes(snap, quizIDs)
		return nil
	})
}

// ------- Modules -------

func (is *InstructorService) ListModules(courseID int) ([]models.Module, error) {
	var mods []models.Module
	err := is.Store.View(func(snap *store.Snapshot) error {
		mods = modulesByCourse(snap, courseID)
		return nil
	})
	return mods, err
}

func (is *InstructorService) CreateModule(courseID int, title string, order int) (models.Module, error) {
	var module models.Module
	err := is.Store.Update(func(snap *store.Snapshot) error {
		if !courseExists(snap, courseID) {
			return ErrNotFound
		}
		module = models.Module{
			Base:     models.Base{ID: store.NextID(snap.Modules)},
			CourseID: courseID,
			Title:    title,
			Order:    order,
		}
		snap.Modules = append(snap.Modules, module)
		return nil
	})
	return module, err
}

func (is *InstructorService) UpdateModule(id int, title *string, order *int) (models.Module, error) {
	var module models.Module
	err := is.Store.Update(func(snap *store.Snapshot) error {
		for i := range snap.Modules {
			m := &snap.Modules[i]
			if m.ID != id {
				continue
			}
			if title != nil {
				m.Title = *title
			}
			if order != nil {
				m.Order = *order
			}
			module = *m
			return nil
		}
		return ErrNotFound
	})
	return module, err
}

// DeleteModule removes the module, its lessons and its module-level
// quizzes with their questions and choices.
func (is *InstructorService) DeleteModule(id int) error {
	return is.Store.Update(func(snap *store.Snapshot) error {
		found := false
		mods := snap.Modules[:0]
		for _, m := range snap.Modules {
			if m.ID == id {
				found = true
				continue
			}
			mods = append(mods, m)
		}
		if !found {
			return ErrNotFound
		}
		snap.Modules = mods

		lessons := snap.Lessons[:0]
		for _, l := range snap.Lessons {
			if l.ModuleID != id {
				lessons = append(lessons, l)
			}
		}
		snap.Lessons = lessons

		quizIDs := map[int]bool{}
		quizzes := snap.Quizzes[:0]
		for _, q := range snap.Quizzes {
			if q.ModuleID != nil && *q.ModuleID == id {
				quizIDs[q.ID] = true
				continue
			}
			quizzes = append(quizzes, q)
		}
		snap.Quizzes = quizzes

		dropQuestionsUnderQuizzes(snap, quizIDs)
		return nil
	})
}

// ------- Lessons -------

// LessonContent is the typed payload of a lesson: exactly one variant per
// lesson type, so a video lesson cannot end up without its url and a file
// lesson always carries a .pdf.
type LessonContent interface {
	Validate() error
	apply(l *models.Lesson)
}

type VideoContent struct {
	URL string
}

func (v VideoContent) Validate() error {
	if strings.TrimSpace(v.URL) == "" {
		return ErrInvalid
	}
	return nil
}

func (v VideoContent) apply(l *models.Lesson) {
	l.Type = models.LessonVideo
	l.VideoURL = v.URL
	l.Content = ""
	l.FileURL = nil
}

type TextContent struct {
	Body string
}

func (t TextContent) Validate() error {
	if strings.TrimSpace(t.Body) == "" {
		return ErrInvalid
	}
	return nil
}

func (t TextContent) apply(l *models.Lesson) {
	l.Type = models.LessonText
	l.Content = t.Body
	l.VideoURL = ""
	l.FileURL = nil
}

type FileContent struct {
	Name string
}

func (f FileContent) Validate() error {
	if f.Name == "" || !strings.HasSuffix(strings.ToLower(f.Name), ".pdf") {
		return ErrInvalid
	}
	return nil
}

func (f FileContent) apply(l *models.Lesson) {
	l.Type = models.LessonFile
	fileURL := fmt.Sprintf("file-%d-%s", l.ID, f.Name)
	l.FileURL = &fileURL
	l.Content = ""
	l.VideoURL = ""
}

type LessonUpdate struct {
	Title   *string
	Order   *int
	Content LessonContent
}

func (is *InstructorService) ListLessons(courseID, moduleID int) ([]models.Lesson, error) {
	lessons := []models.Lesson{}
	err := is.Store.View(func(snap *store.Snapshot) error {
		if courseID != 0 {
			lessons = lessonsByCourse(snap, courseID, moduleID)
			return nil
		}
		for _, l := range snap.Lessons {
			if moduleID != 0 && l.ModuleID != moduleID {
				continue
			}
			lessons = append(lessons, l)
		}
		return nil
	})
	return lessons, err
}

func (is *InstructorService) CreateLesson(moduleID int, title string, order int, content LessonContent) (models.Lesson, error) {
	var lesson models.Lesson
	if content == nil {
		return lesson, ErrInvalid
	}
	if err := content.Validate(); err != nil {
		return lesson, err
	}

	err := is.Store.Update(func(snap *store.Snapshot) error {
		moduleFound := false
		for _, m := range snap.Modules {
			if m.ID == moduleID {
				moduleFound = true
				break
			}
		}
		if !moduleFound {
			return ErrNotFound
		}

		lesson = models.Lesson{
			Base:     models.Base{ID: store.NextID(snap.Lessons)},
			ModuleID: moduleID,
			Title:    title,
			Order:    order,
		}
		content.apply(&lesson)
		snap.Lessons = append(snap.Lessons, lesson)
		return nil
	})
	return lesson, err
}

func (is *InstructorService) UpdateLesson(id int, in LessonUpdate) (models.Lesson, error) {
	var lesson models.Lesson
	if in.Content != nil {
		if err := in.Content.Validate(); err != nil {
			return lesson, err
		}
	}

	err := is.Store.Update(func(snap *store.Snapshot) error {
		for i := range snap.Lessons {
			l := &snap.Lessons[i]
			if l.ID != id {
				continue
			}
			if in.Title != nil {
				l.Title = *in.Title
			}
			if in.Order != nil {
				l.Order = *in.Order
			}
			if in.Content != nil {
				in.Content.apply(l)
			}
			lesson = *l
			return nil
		}
		return ErrNotFound
	})
	return lesson, err
}

func (is *InstructorService) DeleteLesson(id int) error {
	return is.Store.Update(func(snap *store.Snapshot) error {
		lessons := snap.Lessons[:0]
		found := false
		for _, l := range snap.Lessons {
			if l.ID == id {
				found = true
				continue
			}
			lessons = append(lessons, l)
		}
		if !found {
			return ErrNotFound
		}
		snap.Lessons = lessons
		return nil
	})
}

// ------- Quizzes -------

// QuizOwner is the quiz's parent: a course or a module, never both. The
// constructors are the only way to build one, which keeps the
// exactly-one-of invariant out of callers' hands.
type QuizOwner struct {
	courseID *int
	moduleID *int
}

func CourseOwner(courseID int) QuizOwner {
	return QuizOwner{courseID: &courseID}
}

func ModuleOwner(moduleID int) QuizOwner {
	return QuizOwner{moduleID: &moduleID}
}

func (o QuizOwner) valid() bool {
	return (o.courseID != nil) != (o.moduleID != nil)
}

func (is *InstructorService) ListQuizzes(courseID int) ([]models.Quiz, error) {
	quizzes := []models.Quiz{}
	err := is.Store.View(func(snap *store.Snapshot) error {
		moduleIDs := map[int]bool{}
		for _, m := range snap.Modules {
			if m.CourseID == courseID {
				moduleIDs[m.ID] = true
			}
		}
		for _, q := range snap.Quizzes {
			direct := q.CourseID != nil && *q.CourseID == courseID
			viaModule := q.ModuleID != nil && moduleIDs[*q.ModuleID]
			if direct || viaModule {
				quizzes = append(quizzes, q)
			}
		}
		return nil
	})
	return quizzes, err
}

func (is *InstructorService) CreateQuiz(owner QuizOwner, title, description string) (models.Quiz, error) {
	var quiz models.Quiz
	if !owner.valid() {
		return quiz, ErrInvalid
	}

	err := is.Store.Update(func(snap *store.Snapshot) error {
		if owner.courseID != nil && !courseExists(snap, *owner.courseID) {
			return ErrNotFound
		}
		if owner.moduleID != nil {
			found := false
			for _, m := range snap.Modules {
				if m.ID == *owner.moduleID {
					found = true
					break
				}
			}
			if !found {
				return ErrNotFound
			}
		}

		quiz = models.Quiz{
			Base:        models.Base{ID: store.NextID(snap.Quizzes)},
			CourseID:    owner.courseID,
			ModuleID:    owner.moduleID,
			Title:       title,
			Description: description,
		}
		snap.Quizzes = append(snap.Quizzes, quiz)
		return nil
	})
	return quiz, err
}

func (is *InstructorService) UpdateQuiz(id int, title, description *string) (models.Quiz, error) {
	var quiz models.Quiz
	err := is.Store.Update(func(snap *store.Snapshot) error {
		for i := range snap.Quizzes {
			q := &snap.Quizzes[i]
			if q.ID != id {
				continue
			}
			if title != nil {
				q.Title = *title
			}
			if description != nil {
				q.Description = *description
			}
			quiz = *q
			return nil
		}
		return ErrNotFound
	})
	return quiz, err
}

func (is *InstructorService) DeleteQuiz(id int) error {
	return is.Store.Update(func(snap *store.Snapshot) error {
		quizzes := snap.Quizzes[:0]
		found := false
		for _, q := range snap.Quizzes {
			if q.ID == id {
				found = true
				continue
			}
			quizzes = append(quizzes, q)
		}
		if !found {
			return ErrNotFound
		}
		snap.Quizzes = quizzes

		dropQuestionsUnderQuizzes(snap, map[int]bool{id: true})
		return nil
	})
}

// ------- Questions -------

func (is *InstructorService) ListQuestions(quizID int) ([]models.Question, error) {
	questions := []models.Question{}
	err := is.Store.View(func(snap *store.Snapshot) error {
		for _, q := range snap.Questions {
			if q.QuizID == quizID {
				questions = append(questions, q)
			}
		}
		return nil
	})
	return questions, err
}

func (is *InstructorService) CreateQuestion(quizID int, text string, order int) (models.Question, error) {
	var question models.Question
	err := is.Store.Update(func(snap *store.Snapshot) error {
		found := false
		for _, q := range snap.Quizzes {
			if q.ID == quizID {
				found = true
				break
			}
		}
		if !found {
			return ErrNotFound
		}

		question = models.Question{
			Base:   models.Base{ID: store.NextID(snap.Questions)},
			QuizID: quizID,
			Text:   text,
			Order:  order,
		}
		snap.Questions = append(snap.Questions, question)
		return nil
	})
	return question, err
}

func (is *InstructorService) UpdateQuestion(id int, text *string, order *int) (models.Question, error) {
	var question models.Question
	err := is.Store.Update(func(snap *store.Snapshot) error {
		for i := range snap.Questions {
			q := &snap.Questions[i]
			if q.ID != id {
				continue
			}
			if text != nil {
				q.Text = *text
			}
			if order != nil {
				q.Order = *order
			}
			question = *q
			return nil
		}
		return ErrNotFound
	})
	return question, err
}

func (is *InstructorService) DeleteQuestion(id int) error {
	return is.Store.Update(func(snap *store.Snapshot) error {
		questions := snap.Questions[:0]
		found := false
		for _, q := range snap.Questions {
			if q.ID == id {
				found = true
				continue
			}
			questions = append(questions, q)
		}
		if !found {
			return ErrNotFound
		}
		snap.Questions = questions

		choices := snap.Choices[:0]
		for _, c := range snap.Choices {
			if c.QuestionID != id {
				choices = append(choices, c)
			}
		}
		snap.Choices = choices
		return nil
	})
}

// ------- Choices -------

func (is *InstructorService) ListChoices(questionID int) ([]models.Choice, error) {
	choices := []models.Choice{}
	err := is.Store.View(func(snap *store.Snapshot) error {
		for _, c := range snap.Choices {
			if c.QuestionID == questionID {
				choices = append(choices, c)
			}
		}
		return nil
	})
	return choices, err
}

func (is *InstructorService) CreateChoice(questionID int, text string, isCorrect bool) (models.Choice, error) {
	var choice models.Choice
	err := is.Store.Update(func(snap *store.Snapshot) error {
		found := false
		for _, q := range snap.Questions {
			if q.ID == questionID {
				found = true
				break
			}
		}
		if !found {
			return ErrNotFound
		}

		choice = models.Choice{
			Base:       models.Base{ID: store.NextID(snap.Choices)},
			QuestionID: questionID,
			Text:       text,
			IsCorrect:  isCorrect,
		}
		snap.Choices = append(snap.Choices, choice)
		return nil
	})
	return choice, err
}

func (is *InstructorService) UpdateChoice(id int, text *string, isCorrect *bool) (models.Choice, error) {
	var choice models.Choice
	err := is.Store.Update(func(snap *store.Snapshot) error {
		for i := range snap.Choices {
			c := &snap.Choices[i]
			if c.ID != id {
				continue
			}
			if text != nil {
				c.Text = *text
			}
			if isCorrect != nil {
				c.IsCorrect = *isCorrect
			}
			choice = *c
			return nil
		}
		return ErrNotFound
	})
	return choice, err
}

func (is *InstructorService) DeleteChoice(id int) error {
	return is.Store.Update(func(snap *store.Snapshot) error {
		choices := snap.Choices[:0]
		found := false
		for _, c := range snap.Choices {
			if c.ID == id {
				found = true
				continue
			}
			choices = append(choices, c)
		}
		if !found {
			return ErrNotFound
		}
		snap.Choices = choices
		return nil
	})
}

// ------- cascade helpers -------

func filterOutCourse(courses []models.Course, id int) []models.Course {
	out := courses[:0]
	for _, c := range courses {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// dropQuestionsUnderQuizzes removes the questions of the given quizzes
// and the choices of those questions.
func dropQuestionsUnderQuizzes(snap *store.Snapshot, quizIDs map[int]bool) {
	if len(quizIDs) == 0 {
		return
	}

	questionIDs := map[int]bool{}
	questions := snap.Questions[:0]
	for _, q := range snap.Questions {
		if quizIDs[q.QuizID] {
			questionIDs[q.ID] = true
			continue
		}
		questions = append(questions, q)
	}
	snap.Questions = questions

	choices := snap.Choices[:0]
	for _, c := range snap.Choices {
		if !questionIDs[c.QuestionID] {
			choices = append(choices, c)
		}
	}
	snap.Choices = choices
}
