package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shelldrill/shelldrill/core/config"
	"github.com/shelldrill/shelldrill/core/course"
)

// loadLessons returns the course content, merging workspace lessons over the
// built-in set when a workspace is available.
func loadLessons(cfg *config.Configuration) ([]course.Lesson, error) {
	if cfg == nil {
		return course.Builtin(), nil
	}
	return course.LoadDir(afero.NewOsFs(), cfg.LessonsDir())
}

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the course lessons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := maybeConfig()

		lessons, err := loadLessons(cfg)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "LESSON\tTITLE")
		for _, lesson := range lessons {
			fmt.Fprintf(w, "%d\t%s\n", lesson.Number, lesson.Title)
		}
		return w.Flush()
	},
}

var lessonCmd = &cobra.Command{
	Use:   "lesson NUMBER",
	Short: "Read one lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("lesson number must be an integer, got %q", args[0])
		}

		cfg := maybeConfig()

		lessons, err := loadLessons(cfg)
		if err != nil {
			return err
		}

		lesson, err := course.Find(lessons, number)
		if err != nil {
			return err
		}

		width, _ := stdoutSize()
		render := course.NewRenderer(stdoutIsTerminal(), width)
		out, err := render(lesson.Body)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

		logger, done := openProgress(cfg)
		defer done()
		return logger.LessonViewed(lesson.Number, lesson.Title)
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the study plan for the configured course length",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := maybeConfig()
		days := course.PlanLengths[0]
		if cfg != nil {
			days = cfg.Course.Days
		}

		lessons, err := loadLessons(cfg)
		if err != nil {
			return err
		}

		plan, err := course.BuildPlan(days, lessons)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, day := range plan {
			fmt.Fprintf(w, "day %d\t%s\n", day.Day, day.Title)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(planCmd)
}
