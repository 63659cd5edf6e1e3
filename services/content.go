package services

import (
	"learnhub/models"
	"learnhub/store"
)

// ContentService serves the quiz tree to learners: quizzes matched by
// course-or-module parentage, questions by quiz, choices by question.
// The gated module/lesson reads live on the Provider so the remote
// variant can serve them too.
type ContentService struct {
	Store *store.Store
}

func NewContentService(s *store.Store) *ContentService {
	return &ContentService{Store: s}
}

// GetQuizzes matches quizzes attached to the course directly or to one
// of its modules; moduleID narrows to module-level quizzes when non-zero.
func (cs *ContentService) GetQuizzes(courseID, moduleID int) ([]models.Quiz, error) {
	quizzes := []models.Quiz{}
	err := cs.Store.View(func(snap *store.Snapshot) error {
		moduleIDs := map[int]bool{}
		for _, m := range snap.Modules {
			if m.CourseID == courseID {
				moduleIDs[m.ID] = true
			}
		}

		for _, q := range snap.Quizzes {
			if courseID != 0 {
				direct := q.CourseID != nil && *q.CourseID == courseID
				viaModule := q.ModuleID != nil && moduleIDs[*q.ModuleID]
				if !direct && !viaModule {
					continue
				}
			}
			if moduleID != 0 && (q.ModuleID == nil || *q.ModuleID != moduleID) {
				continue
			}
			quizzes = append(quizzes, q)
		}
		return nil
	})
	return quizzes, err
}

func (cs *ContentService) GetQuestions(quizID int) ([]models.Question, error) {
	questions := []models.Question{}
	err := cs.Store.View(func(snap *store.Snapshot) error {
		for _, q := range snap.Questions {
			if q.QuizID == quizID {
				questions = append(questions, q)
			}
		}
		return nil
	})
	return questions, err
}

func (cs *ContentService) GetChoices(questionID int) ([]models.Choice, error) {
	choices := []models.Choice{}
	err := cs.Store.View(func(snap *store.Snapshot) error {
		for _, c := range snap.Choices {
			if c.QuestionID == questionID {
				choices = append(choices, c)
			}
		}
		return nil
	})
	return choices, err
}
