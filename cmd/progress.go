package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shelldrill/shelldrill/core/course"
	"github.com/shelldrill/shelldrill/core/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show what you've covered so far",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		lessons, err := loadLessons(cfg)
		if err != nil {
			return err
		}
		plan, err := course.BuildPlan(cfg.Course.Days, lessons)
		if err != nil {
			return err
		}

		report := progress.NewReport()
		fd, err := cfg.ReadProgressLog()
		if err == nil {
			defer fd.Close()
			if err := progress.ReadLog(fd, report.Update); err != nil {
				return err
			}
		}

		report.WritePlan(cmd.OutOrStdout(), plan)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
