package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelldrill/shelldrill/core/config"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load workspace config: did you run init?")
	}

	return configuration, err
}

// maybeConfig loads the workspace config if one exists. Commands that also
// work outside a workspace use this and skip progress logging on nil.
func maybeConfig() *config.Configuration {
	configuration, err := config.Load(cfgPath)
	if err != nil {
		return nil
	}
	return configuration
}

// exitCodeError carries a child exit status through cobra to main.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return "exit status"
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "shelldrill",
	Short: "A hands-on shell scripting course",
	Long: `shelldrill is a 10/15/20-day shell scripting course: markdown
lessons, tiny example programs to run and pick apart, a sandboxed practice
shell, and a grader for the scripts you write along the way.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "workspace path")
}
