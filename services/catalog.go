package services

import (
	"sort"
	"strconv"
	"strings"

	"learnhub/models"
	"learnhub/store"
)

// PageSize is the fixed page size of the course catalog.
const PageSize = 6

type CourseListParams struct {
	Page     int
	Search   string
	Category string
	Level    string
	Ordering string // field name, "-" prefix for descending
}

// CoursePage mimics the paged envelope of the hosted REST API: next and
// previous carry page numbers as strings, or null at the boundary.
type CoursePage struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []models.Course `json:"results"`
}

// Viewer identifies the caller of a gated read. The local services check
// the id against the enrollments collection; the remote API checks the
// bearer token instead, so both travel together.
type Viewer struct {
	ID    int
	Token string
}

// Provider is the catalog read contract. Two implementations exist: the
// local snapshot-backed CatalogService and the remote HTTP client; which
// one serves requests is decided at composition time.
type Provider interface {
	ListCourses(params CourseListParams) (*CoursePage, error)
	GetCourse(id int) (models.Course, error)
	ListModules(viewer Viewer, courseID int) ([]models.Module, error)
	ListLessons(viewer Viewer, courseID, moduleID int) ([]models.Lesson, error)
}

type CatalogService struct {
	Store *store.Store
}

func NewCatalogService(s *store.Store) *CatalogService {
	return &CatalogService{Store: s}
}

func (cs *CatalogService) ListCourses(params CourseListParams) (*CoursePage, error) {
	var page *CoursePage
	err := cs.Store.View(func(snap *store.Snapshot) error {
		items := make([]models.Course, len(snap.Courses))
		copy(items, snap.Courses)

		if params.Search != "" {
			q := strings.ToLower(params.Search)
			items = filterCourses(items, func(c models.Course) bool {
				return strings.Contains(strings.ToLower(c.Title), q) ||
					strings.Contains(strings.ToLower(c.Description), q)
			})
		}
		if params.Category != "" {
			items = filterCourses(items, func(c models.Course) bool {
				return c.Category == params.Category
			})
		}
		if params.Level != "" {
			items = filterCourses(items, func(c models.Course) bool {
				return c.Level == params.Level
			})
		}

		if params.Ordering != "" {
			sortCourses(items, params.Ordering)
		}

		page = paginateCourses(items, params.Page)
		return nil
	})
	return page, err
}

func (cs *CatalogService) GetCourse(id int) (models.Course, error) {
	var course models.Course
	err := cs.Store.View(func(snap *store.Snapshot) error {
		for _, c := range snap.Courses {
			if c.ID == id {
				course = c
				return nil
			}
		}
		return ErrNotFound
	})
	return course, err
}

// ListModules returns a course's modules ordered ascending, provided the
// viewer holds an active enrollment for the course.
func (cs *CatalogService) ListModules(viewer Viewer, courseID int) ([]models.Module, error) {
	var mods []models.Module
	err := cs.Store.View(func(snap *store.Snapshot) error {
		if err := ensureEnrolled(snap, viewer.ID, courseID); err != nil {
			return err
		}
		mods = modulesByCourse(snap, courseID)
		return nil
	})
	return mods, err
}

// ListLessons resolves lessons transitively through module membership in
// the course; moduleID narrows further when non-zero. Gated like
// ListModules.
func (cs *CatalogService) ListLessons(viewer Viewer, courseID, moduleID int) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := cs.Store.View(func(snap *store.Snapshot) error {
		if err := ensureEnrolled(snap, viewer.ID, courseID); err != nil {
			return err
		}
		lessons = lessonsByCourse(snap, courseID, moduleID)
		return nil
	})
	return lessons, err
}

func ensureEnrolled(snap *store.Snapshot, userID, courseID int) error {
	if !courseExists(snap, courseID) {
		return ErrNotFound
	}
	for _, e := range snap.Enrollments {
		if e.UserID == userID && e.CourseID == courseID && e.Status == models.EnrollmentActive {
			return nil
		}
	}
	return ErrNotEnrolled
}

func filterCourses(items []models.Course, keep func(models.Course) bool) []models.Course {
	out := items[:0]
	for _, c := range items {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func sortCourses(items []models.Course, ordering string) {
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	less := courseLess(field)
	if less == nil {
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func courseLess(field string) func(a, b models.Course) bool {
	switch field {
	case "id":
		return func(a, b models.Course) bool { return a.ID < b.ID }
	case "title":
		return func(a, b models.Course) bool { return a.Title < b.Title }
	case "category":
		return func(a, b models.Course) bool { return a.Category < b.Category }
	case "level":
		return func(a, b models.Course) bool { return a.Level < b.Level }
	case "duration":
		return func(a, b models.Course) bool { return a.Duration < b.Duration }
	case "imageUrl", "image_url":
		return func(a, b models.Course) bool { return a.ImageURL < b.ImageURL }
	case "instructor":
		return func(a, b models.Course) bool { return a.Instructor < b.Instructor }
	case "status":
		return func(a, b models.Course) bool { return a.Status < b.Status }
	case "createdAt", "created_at":
		return func(a, b models.Course) bool { return a.CreatedAt < b.CreatedAt }
	case "updatedAt", "updated_at":
		return func(a, b models.Course) bool { return a.UpdatedAt < b.UpdatedAt }
	default:
		return nil
	}
}

func paginateCourses(items []models.Course, page int) *CoursePage {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	totalPages := (len(items) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	out := &CoursePage{
		Count:   len(items),
		Results: items[start:end],
	}
	if page < totalPages {
		next := strconv.Itoa(page + 1)
		out.Next = &next
	}
	if page > 1 {
		prev := strconv.Itoa(page - 1)
		out.Previous = &prev
	}
	return out
}

// shared relationship lookups over a snapshot

func modulesByCourse(snap *store.Snapshot, courseID int) []models.Module {
	mods := []models.Module{}
	for _, m := range snap.Modules {
		if m.CourseID == courseID {
			mods = append(mods, m)
		}
	}
	sort.SliceStable(mods, func(i, j int) bool { return mods[i].Order < mods[j].Order })
	return mods
}

func lessonsByCourse(snap *store.Snapshot, courseID, moduleID int) []models.Lesson {
	moduleIDs := map[int]bool{}
	for _, m := range snap.Modules {
		if m.CourseID == courseID {
			moduleIDs[m.ID] = true
		}
	}

	lessons := []models.Lesson{}
	for _, l := range snap.Lessons {
		if !moduleIDs[l.ModuleID] {
			continue
		}
		if moduleID != 0 && l.ModuleID != moduleID {
			continue
		}
		lessons = append(lessons, l)
	}
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].Order < lessons[j].Order })
	return lessons
}

func courseExists(snap *store.Snapshot, id int) bool {
	for _, c := range snap.Courses {
		if c.ID == id {
			return true
		}
	}
	return false
}
