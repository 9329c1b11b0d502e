package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shelldrill/shelldrill/core/config"
	"github.com/shelldrill/shelldrill/core/sandbox"
	"github.com/shelldrill/shelldrill/core/shell"
	"github.com/shelldrill/shelldrill/drills"
)

// seedFS builds the in-memory filesystem a practice session starts with: a
// home directory for the sandbox user with the workspace scripts copied in, so
// students can poke at their own work without risking it.
func seedFS(cfg *config.Configuration) (sandbox.FS, string, error) {
	seed := afero.NewMemMapFs()

	home := filepath.Join("/home", cfg.Sandbox.User)
	for _, dir := range []string{home, "/tmp", filepath.Join(home, "scripts")} {
		if err := seed.MkdirAll(dir, 0755); err != nil {
			return nil, "", err
		}
	}

	scripts := sandbox.NewDirSeedFS(cfg.ScriptsDir())
	entries, err := afero.ReadDir(scripts, "/")
	if err != nil {
		// A missing scripts directory just means an empty sandbox.
		return sandbox.NewSessionFS(seed), home, nil
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		body, err := afero.ReadFile(scripts, "/"+entry.Name())
		if err != nil {
			return nil, "", err
		}
		dst := filepath.Join(home, "scripts", entry.Name())
		if err := afero.WriteFile(seed, dst, body, entry.Mode().Perm()); err != nil {
			return nil, "", err
		}
	}

	return sandbox.NewSessionFS(seed), home, nil
}

// practiceEnv assembles the sandbox environment, folding in the workspace
// .env file when one exists.
func practiceEnv(cfg *config.Configuration) []string {
	environ := []string{
		"PATH=/usr/local/bin:/usr/bin:/bin",
		"SHELL=/bin/sh",
		"TERM=" + os.Getenv("TERM"),
	}
	if cfg.Sandbox.Prompt != "" {
		environ = append(environ, shell.EnvPrompt+"="+cfg.Sandbox.Prompt)
	}

	extra, err := godotenv.Read(cfg.EnvFile())
	if err != nil {
		return environ
	}
	for k, v := range extra {
		environ = append(environ, k+"="+v)
	}
	return environ
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Open the sandboxed practice shell",
	Long: `Practice opens an interactive shell over an in-memory copy of your
workspace scripts. Every drill is available as a command; nothing you do in
here can touch your real files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg := maybeConfig()
		if cfg == nil {
			// No workspace: practice in a throwaway one.
			dir, err := os.MkdirTemp("", "shelldrill-practice")
			if err != nil {
				return err
			}
			defer os.RemoveAll(dir)

			practiceLogger := log.New(cmd.ErrOrStderr(), "[practice] ", 0)
			cfg, err = config.Initialize(dir, practiceLogger)
			if err != nil {
				return err
			}
		}

		seed, home, err := seedFS(cfg)
		if err != nil {
			return err
		}

		session := sandbox.NewSession(seed, drills.Resolver, sandbox.Identity{
			User:     cfg.Sandbox.User,
			Hostname: cfg.Sandbox.Hostname,
		}, time.Now)
		session.SetPTY(hostPTY())

		logger, done := openProgress(cfg)
		defer done()
		if err := logger.ShellStarted(); err != nil {
			return err
		}

		proc, err := session.InitProc().StartProcess("sh", []string{"sh"}, &sandbox.ProcAttr{
			Dir:   home,
			Env:   practiceEnv(cfg),
			Files: sandbox.NewOSIO(),
		})
		if err != nil {
			return err
		}

		status := proc.Run()
		fmt.Fprintf(cmd.OutOrStdout(), "practice shell exited, status %d\n", status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(practiceCmd)
}
