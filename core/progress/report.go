package progress

import (
	"fmt"
	"io"
	"sort"

	"github.com/shelldrill/shelldrill/core/course"
)

// Report aggregates the event log against the course plan.
type Report struct {
	Events int

	lessonsViewed map[int]bool
	drillsRun     map[string]bool
	graded        map[string]*ScriptGraded
	shellSessions int
}

// NewReport builds an empty report.
func NewReport() *Report {
	return &Report{
		lessonsViewed: make(map[int]bool),
		drillsRun:     make(map[string]bool),
		graded:        make(map[string]*ScriptGraded),
	}
}

// Update folds one event into the report.
func (r *Report) Update(e *Event) {
	r.Events++

	switch {
	case e.LessonViewed != nil:
		r.lessonsViewed[e.LessonViewed.Number] = true
	case e.DrillRun != nil:
		r.drillsRun[e.DrillRun.Name] = true
	case e.ScriptGraded != nil:
		// Keep the best run per exercise.
		prev, ok := r.graded[e.ScriptGraded.Exercise]
		if !ok || e.ScriptGraded.Passed > prev.Passed {
			r.graded[e.ScriptGraded.Exercise] = e.ScriptGraded
		}
	case e.ShellStarted != nil:
		r.shellSessions++
	}
}

// LessonDone reports whether the lesson has been viewed.
func (r *Report) LessonDone(number int) bool { return r.lessonsViewed[number] }

// DrillsRun returns the names of the drills the student has run.
func (r *Report) DrillsRun() []string {
	out := make([]string, 0, len(r.drillsRun))
	for name := range r.drillsRun {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// WritePlan renders per-day completion against the plan.
func (r *Report) WritePlan(w io.Writer, plan []course.PlanDay) {
	doneDays, taughtDays := 0, 0
	for _, day := range plan {
		done := true
		for _, lesson := range day.Lessons {
			if !r.LessonDone(lesson.Number) {
				done = false
				break
			}
		}

		mark := " "
		if !day.Review {
			taughtDays++
			if done {
				mark = "x"
				doneDays++
			}
		}
		fmt.Fprintf(w, "  [%s] day %2d: %s\n", mark, day.Day, day.Title)
	}

	fmt.Fprintf(w, "\nDays complete: %d/%d\n", doneDays, taughtDays)
	fmt.Fprintf(w, "Lessons viewed: %d\n", len(r.lessonsViewed))
	fmt.Fprintf(w, "Distinct drills run: %d\n", len(r.drillsRun))
	fmt.Fprintf(w, "Practice sessions: %d\n", r.shellSessions)

	if len(r.graded) > 0 {
		fmt.Fprintln(w, "Exercises:")
		names := make([]string, 0, len(r.graded))
		for name := range r.graded {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			g := r.graded[name]
			fmt.Fprintf(w, "  %s: %d/%d\n", name, g.Passed, g.Total)
		}
	}
}
