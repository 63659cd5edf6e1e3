package services

import "learnhub/store"

type AdminStats struct {
	UsersByRole      map[string]int `json:"users_by_role"`
	TotalCourses     int            `json:"total_courses"`
	TotalEnrollments int            `json:"total_enrollments"`
	AvgRating        *float64       `json:"avg_rating"`
}

type StatsService struct {
	Store *store.Store
}

func NewStatsService(s *store.Store) *StatsService {
	return &StatsService{Store: s}
}

// AdminStats is pure read-side aggregation; nothing here persists.
func (ss *StatsService) AdminStats() (AdminStats, error) {
	stats := AdminStats{UsersByRole: map[string]int{}}
	err := ss.Store.View(func(snap *store.Snapshot) error {
		for _, u := range snap.Users {
			stats.UsersByRole[u.Role]++
		}
		stats.TotalCourses = len(snap.Courses)
		stats.TotalEnrollments = len(snap.Enrollments)

		sum := 0
		for _, r := range snap.Ratings {
			sum += r.Rating
		}
		if len(snap.Ratings) > 0 {
			avg := float64(sum) / float64(len(snap.Ratings))
			stats.AvgRating = &avg
		}
		return nil
	})
	return stats, err
}
