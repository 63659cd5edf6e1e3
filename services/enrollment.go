package services

import (
	"math"
	"time"

	"learnhub/models"
	"learnhub/store"
)

type EnrollmentService struct {
	Store *store.Store
}

func NewEnrollmentService(s *store.Store) *EnrollmentService {
	return &EnrollmentService{Store: s}
}

// Enroll is idempotent per (user, course): while an active enrollment
// exists, re-enrolling returns it unchanged.
func (es *EnrollmentService) Enroll(userID, courseID int) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := es.Store.Update(func(snap *store.Snapshot) error {
		if !courseExists(snap, courseID) {
			return ErrNotFound
		}

		for _, e := range snap.Enrollments {
			if e.UserID == userID && e.CourseID == courseID && e.Status == models.EnrollmentActive {
				enrollment = e
				return nil
			}
		}

		enrollment = models.Enrollment{
			Base:       models.Base{ID: store.NextID(snap.Enrollments)},
			UserID:     userID,
			CourseID:   courseID,
			EnrolledAt: now(),
			Status:     models.EnrollmentActive,
			Progress:   0,
		}
		snap.Enrollments = append(snap.Enrollments, enrollment)
		return nil
	})
	return enrollment, err
}

func (es *EnrollmentService) MyEnrollments(userID int) ([]models.Enrollment, error) {
	enrollments := []models.Enrollment{}
	err := es.Store.View(func(snap *store.Snapshot) error {
		for _, e := range snap.Enrollments {
			if e.UserID == userID {
				enrollments = append(enrollments, e)
			}
		}
		return nil
	})
	return enrollments, err
}

// MarkLessonCompleted upserts the progress row keyed by (enrollment,
// lesson) and recomputes the enrollment's progress percentage over all
// lessons in the course.
func (es *EnrollmentService) MarkLessonCompleted(userID, lessonID int) (models.LessonProgress, error) {
	var progress models.LessonProgress
	err := es.Store.Update(func(snap *store.Snapshot) error {
		var lesson *models.Lesson
		for i := range snap.Lessons {
			if snap.Lessons[i].ID == lessonID {
				lesson = &snap.Lessons[i]
				break
			}
		}
		if lesson == nil {
			return ErrNotFound
		}

		courseID := 0
		for _, m := range snap.Modules {
			if m.ID == lesson.ModuleID {
				courseID = m.CourseID
				break
			}
		}
		if courseID == 0 {
			return ErrNotFound
		}

		var enrollment *models.Enrollment
		for i := range snap.Enrollments {
			e := &snap.Enrollments[i]
			if e.UserID == userID && e.CourseID == courseID && e.Status == models.EnrollmentActive {
				enrollment = e
				break
			}
		}
		if enrollment == nil {
			return ErrNotFound
		}

		completedAt := now()
		found := false
		for i := range snap.LessonProgress {
			p := &snap.LessonProgress[i]
			if p.EnrollmentID == enrollment.ID && p.LessonID == lessonID {
				p.Completed = true
				p.CompletedAt = &completedAt
				progress = *p
				found = true
				break
			}
		}
		if !found {
			progress = models.LessonProgress{
				Base:         models.Base{ID: store.NextID(snap.LessonProgress)},
				EnrollmentID: enrollment.ID,
				LessonID:     lessonID,
				Completed:    true,
				CompletedAt:  &completedAt,
			}
			snap.LessonProgress = append(snap.LessonProgress, progress)
		}

		enrollment.Progress = courseProgress(snap, enrollment.ID, courseID)
		return nil
	})
	return progress, err
}

func (es *EnrollmentService) LessonProgressByCourse(userID, courseID int) ([]models.LessonProgress, error) {
	rows := []models.LessonProgress{}
	err := es.Store.View(func(snap *store.Snapshot) error {
		var enrollmentID int
		for _, e := range snap.Enrollments {
			if e.UserID == userID && e.CourseID == courseID && e.Status == models.EnrollmentActive {
				enrollmentID = e.ID
				break
			}
		}
		if enrollmentID == 0 {
			return nil
		}
		for _, p := range snap.LessonProgress {
			if p.EnrollmentID == enrollmentID {
				rows = append(rows, p)
			}
		}
		return nil
	})
	return rows, err
}

// courseProgress is round(100 * completed / total), with an empty course
// yielding 0 instead of dividing by zero.
func courseProgress(snap *store.Snapshot, enrollmentID, courseID int) int {
	lessonIDs := map[int]bool{}
	for _, l := range lessonsByCourse(snap, courseID, 0) {
		lessonIDs[l.ID] = true
	}

	completed := 0
	for _, p := range snap.LessonProgress {
		if p.EnrollmentID == enrollmentID && p.Completed && lessonIDs[p.LessonID] {
			completed++
		}
	}

	total := len(lessonIDs)
	if total == 0 {
		total = 1
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
