// internal/domain/metrics/metrics.go

// Package metrics computes derived statistics over the course → module →
// topic hierarchy: progress percentages, rating averages, duration totals,
// and difficulty tiers.
//
// Every function is pure and recomputes on read; nothing here is stored as
// a separate source of truth. Callers that need the values repeatedly are
// free to cache them, but no caching contract is offered.
package metrics

import (
	"math"

	"github.com/dalemusser/traininghub/internal/domain/models"
)

// Difficulty tiers derived from total course duration (minutes).
// Thresholds are strict: exactly 150 minutes is still Beginner.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"

	intermediateThreshold = 150
	advancedThreshold     = 300
)

// ModuleProgress returns the percentage of completed topics in a module,
// rounded to the nearest integer. A module with no topics reports 0.
func ModuleProgress(m models.Module) int {
	if len(m.Topics) == 0 {
		return 0
	}
	completed := 0
	for _, t := range m.Topics {
		if t.Completed {
			completed++
		}
	}
	return roundPct(completed, len(m.Topics))
}

// CourseProgress returns the percentage of fully completed modules in a
// course, rounded to the nearest integer. A course with no modules
// reports 0.
func CourseProgress(c models.Course) int {
	if len(c.Modules) == 0 {
		return 0
	}
	done := 0
	for _, m := range c.Modules {
		if ModuleProgress(m) == 100 {
			done++
		}
	}
	return roundPct(done, len(c.Modules))
}

// TopicAverageRating returns the mean of a topic's ratings rounded to one
// decimal place. ok is false when the topic has no ratings; callers must
// not present 0 as a rating in that case.
func TopicAverageRating(t models.Topic) (avg float64, ok bool) {
	return averageRating(t.Ratings)
}

// CourseAverageRating returns the mean of all ratings across every topic
// in every module of a course, rounded to one decimal place. ok is false
// when no ratings exist anywhere in the course.
func CourseAverageRating(c models.Course) (avg float64, ok bool) {
	var all []models.Rating
	for _, m := range c.Modules {
		for _, t := range m.Topics {
			all = append(all, t.Ratings...)
		}
	}
	return averageRating(all)
}

// ModuleDuration returns the sum of topic durations in a module, in
// minutes.
func ModuleDuration(m models.Module) int {
	total := 0
	for _, t := range m.Topics {
		total += t.Duration
	}
	return total
}

// CourseDuration returns the sum of topic durations across all modules of
// a course, in minutes.
func CourseDuration(c models.Course) int {
	total := 0
	for _, m := range c.Modules {
		total += ModuleDuration(m)
	}
	return total
}

// Difficulty classifies a course by total duration: more than 300 minutes
// is Advanced, more than 150 is Intermediate, anything else Beginner.
func Difficulty(c models.Course) string {
	d := CourseDuration(c)
	switch {
	case d > advancedThreshold:
		return DifficultyAdvanced
	case d > intermediateThreshold:
		return DifficultyIntermediate
	default:
		return DifficultyBeginner
	}
}

// CompletionRate returns the percentage of completed topics across a set
// of courses, rounded to the nearest integer. No topics reports 0.
func CompletionRate(courses []models.Course) int {
	total, completed := 0, 0
	for _, c := range courses {
		for _, m := range c.Modules {
			for _, t := range m.Topics {
				total++
				if t.Completed {
					completed++
				}
			}
		}
	}
	if total == 0 {
		return 0
	}
	return roundPct(completed, total)
}

func averageRating(ratings []models.Rating) (float64, bool) {
	if len(ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10, true
}

func roundPct(part, whole int) int {
	return int(math.Round(float64(part) / float64(whole) * 100))
}
