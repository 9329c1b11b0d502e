package course

import (
	"fmt"
)

// PlanLengths are the supported course lengths in days.
var PlanLengths = []int{10, 15, 20}

// PlanDay is one day of a study plan.
type PlanDay struct {
	Day     int
	Title   string
	Lessons []Lesson
	// Review marks days with no new lessons, only practice.
	Review bool
}

// BuildPlan spreads the lessons over the given number of days. The 10-day
// plan covers one lesson per sitting; longer plans interleave review days so
// the material stays the same but the pace relaxes.
func BuildPlan(days int, lessons []Lesson) ([]PlanDay, error) {
	supported := false
	for _, length := range PlanLengths {
		if days == length {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("unsupported plan length %d, pick one of %v", days, PlanLengths)
	}
	if len(lessons) == 0 {
		return nil, fmt.Errorf("no lessons to plan")
	}

	// Place lessons at evenly spaced days; the gaps become review days.
	out := make([]PlanDay, days)
	for i := range out {
		out[i] = PlanDay{
			Day:    i + 1,
			Title:  "Practice and review",
			Review: true,
		}
	}

	for i, lesson := range lessons {
		day := i * days / len(lessons)
		target := &out[day]
		if target.Review {
			target.Review = false
			target.Title = lesson.Title
		} else {
			target.Title += " / " + lesson.Title
		}
		target.Lessons = append(target.Lessons, lesson)
	}

	return out, nil
}
