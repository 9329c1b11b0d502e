package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/shelldrill/shelldrill/core/grader"
)

var gradeWatch bool

// resolveExercise maps a name or path to the exercise spec file.
func resolveExercise(arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	path := cfg.ExercisePath(arg)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("no exercise named %q in this workspace", arg)
	}
	return path, nil
}

var gradeCmd = &cobra.Command{
	Use:   "grade EXERCISE SCRIPT",
	Short: "Grade a script against an exercise spec",
	Long: `Grade runs SCRIPT against every case in the named exercise and
reports which passed. EXERCISE is either a name from the workspace exercises
directory or a path to a spec file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		exercisePath, err := resolveExercise(args[0])
		if err != nil {
			return err
		}
		scriptPath := args[1]
		if _, err := os.Stat(scriptPath); err != nil {
			return err
		}

		logger, done := openProgress(maybeConfig())
		defer done()

		gradeOnce := func(ctx context.Context) (bool, error) {
			exercise, err := grader.Load(exercisePath)
			if err != nil {
				return false, err
			}

			results, err := exercise.Grade(ctx, scriptPath)
			if err != nil {
				return false, err
			}

			passed := grader.Report(cmd.OutOrStdout(), exercise.Name, results, stdoutIsTerminal())

			good := 0
			for _, r := range results {
				if r.Pass {
					good++
				}
			}
			if err := logger.ScriptGraded(exercise.Name, good, len(results)); err != nil {
				return false, err
			}
			return passed, nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if gradeWatch {
			return grader.Watch(ctx, []string{scriptPath, exercisePath}, func() {
				if _, err := gradeOnce(ctx); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			})
		}

		passed, err := gradeOnce(ctx)
		if err != nil {
			return err
		}
		if !passed {
			cmd.SilenceErrors = true
			return &exitCodeError{code: 1}
		}
		return nil
	},
}

func init() {
	gradeCmd.Flags().BoolVar(&gradeWatch, "watch", false, "re-grade whenever the script or exercise changes")
	rootCmd.AddCommand(gradeCmd)
}
