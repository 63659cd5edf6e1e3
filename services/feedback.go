package services

import (
	"learnhub/models"
	"learnhub/store"
)

type FeedbackService struct {
	Store *store.Store
}

func NewFeedbackService(s *store.Store) *FeedbackService {
	return &FeedbackService{Store: s}
}

// ListComments filters by course and/or lesson; zero means no filter.
func (fs *FeedbackService) ListComments(courseID, lessonID int) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := fs.Store.View(func(snap *store.Snapshot) error {
		for _, c := range snap.Comments {
			if courseID != 0 && (c.CourseID == nil || *c.CourseID != courseID) {
				continue
			}
			if lessonID != 0 && (c.LessonID == nil || *c.LessonID != lessonID) {
				continue
			}
			comments = append(comments, c)
		}
		return nil
	})
	return comments, err
}

func (fs *FeedbackService) CreateComment(userID int, courseID, lessonID *int, text string) (models.Comment, error) {
	var comment models.Comment
	if courseID == nil && lessonID == nil {
		return comment, ErrInvalid
	}
	if text == "" {
		return comment, ErrInvalid
	}

	err := fs.Store.Update(func(snap *store.Snapshot) error {
		comment = models.Comment{
			Base:      models.Base{ID: store.NextID(snap.Comments)},
			UserID:    userID,
			CourseID:  courseID,
			LessonID:  lessonID,
			Text:      text,
			CreatedAt: now(),
		}
		snap.Comments = append(snap.Comments, comment)
		return nil
	})
	return comment, err
}

// RateCourse keeps one rating per (user, course): re-rating replaces the
// previous value instead of appending another row.
func (fs *FeedbackService) RateCourse(userID, courseID, rating int) (models.CourseRating, error) {
	var row models.CourseRating
	if rating < 1 || rating > 5 {
		return row, ErrInvalid
	}

	err := fs.Store.Update(func(snap *store.Snapshot) error {
		if !courseExists(snap, courseID) {
			return ErrNotFound
		}

		for i := range snap.Ratings {
			r := &snap.Ratings[i]
			if r.UserID == userID && r.CourseID == courseID {
				r.Rating = rating
				r.CreatedAt = now()
				row = *r
				return nil
			}
		}

		row = models.CourseRating{
			Base:      models.Base{ID: store.NextID(snap.Ratings)},
			UserID:    userID,
			CourseID:  courseID,
			Rating:    rating,
			CreatedAt: now(),
		}
		snap.Ratings = append(snap.Ratings, row)
		return nil
	})
	return row, err
}

// RatingSummary averages all ratings for the course. Zero ratings is not
// an error: the average comes back null with a zero count.
func (fs *FeedbackService) RatingSummary(courseID int) (models.RatingSummary, error) {
	summary := models.RatingSummary{CourseID: courseID}
	err := fs.Store.View(func(snap *store.Snapshot) error {
		sum := 0
		for _, r := range snap.Ratings {
			if r.CourseID == courseID {
				sum += r.Rating
				summary.RatingsCount++
			}
		}
		if summary.RatingsCount > 0 {
			avg := float64(sum) / float64(summary.RatingsCount)
			summary.AvgRating = &avg
		}
		return nil
	})
	return summary, err
}
