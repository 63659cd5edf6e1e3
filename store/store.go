package store

import (
	"encoding/json"
	"os"
	"sync"

	"learnhub/models"
)

// Snapshot is the whole persisted document. Every collection lives under
// its own key; there is no partial write, callers load, mutate and save
// the full thing.
type Snapshot struct {
	Users          []models.User           `json:"users"`
	Courses        []models.Course         `json:"courses"`
	Modules        []models.Module         `json:"modules"`
	Lessons        []models.Lesson         `json:"lessons"`
	Quizzes        []models.Quiz           `json:"quizzes"`
	Questions      []models.Question       `json:"questions"`
	Choices        []models.Choice         `json:"choices"`
	Comments       []models.Comment        `json:"comments"`
	Ratings        []models.CourseRating   `json:"ratings"`
	Enrollments    []models.Enrollment     `json:"enrollments"`
	LessonProgress []models.LessonProgress `json:"lessonProgress"`
}

// Store owns the backing file. Nothing outside this package touches the
// raw document; all access goes through View and Update so read-modify-
// write cycles are serialized under one mutex.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the current document. A missing or unparseable file is
// replaced by the seeded defaults; a partially-present document gets its
// missing collections backfilled so the schema can grow forward.
func (s *Store) Load() *Snapshot {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return defaultSnapshot()
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return defaultSnapshot()
	}

	backfill(&snap, defaultSnapshot())
	return &snap
}

// Save serializes the entire snapshot and overwrites the document.
func (s *Store) Save(snap *Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0644)
}

// View runs fn over a fresh snapshot without persisting anything.
func (s *Store) View(fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.Load())
}

// Update runs fn over a fresh snapshot and saves it back if fn succeeds.
// The mutex makes back-to-back mutations from independent callers safe
// against the lost-update hazard of two interleaved load/save pairs.
func (s *Store) Update(fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.Load()
	if err := fn(snap); err != nil {
		return err
	}
	return s.Save(snap)
}

func backfill(snap, defaults *Snapshot) {
	if snap.Users == nil {
		snap.Users = defaults.Users
	}
	if snap.Courses == nil {
		snap.Courses = defaults.Courses
	}
	if snap.Modules == nil {
		snap.Modules = defaults.Modules
	}
	if snap.Lessons == nil {
		snap.Lessons = defaults.Lessons
	}
	if snap.Quizzes == nil {
		snap.Quizzes = defaults.Quizzes
	}
	if snap.Questions == nil {
		snap.Questions = defaults.Questions
	}
	if snap.Choices == nil {
		snap.Choices = defaults.Choices
	}
	if snap.Comments == nil {
		snap.Comments = defaults.Comments
	}
	if snap.Ratings == nil {
		snap.Ratings = defaults.Ratings
	}
	if snap.Enrollments == nil {
		snap.Enrollments = defaults.Enrollments
	}
	if snap.LessonProgress == nil {
		snap.LessonProgress = defaults.LessonProgress
	}
}

type identifiable interface {
	GetID() int
}

// NextID returns max(id)+1 within a collection, or 1 when it is empty.
func NextID[T identifiable](items []T) int {
	max := 0
	for _, item := range items {
		if item.GetID() > max {
			max = item.GetID()
		}
	}
	return max + 1
}
