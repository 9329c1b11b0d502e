package config

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

//go:embed seed
var seedData embed.FS

// Initialize scaffolds a workspace in the given directory: the default
// configuration, the lesson and scripts folders with starter files, and the
// exercise specs. Existing files are left alone so re-running is safe.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Printf("Writing %s", configPath)
		if err := os.WriteFile(configPath, defaultConfigData, 0644); err != nil {
			return nil, err
		}
	} else {
		logger.Printf("Keeping existing %s", configPath)
	}

	for _, sub := range []string{LessonsDirName, ScriptsDirName, ExercisesDirName} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return nil, err
		}
	}

	if err := extractSeed(dir, logger); err != nil {
		return nil, err
	}

	cfg, err := Load(dir)
	if err != nil {
		return nil, fmt.Errorf("initialized workspace doesn't load: %w", err)
	}
	return cfg, nil
}

// extractSeed copies the embedded starter scripts and exercises into the
// workspace, skipping files the student already has.
func extractSeed(dir string, logger *log.Logger) error {
	return fs.WalkDir(seedData, "seed", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel, err := filepath.Rel("seed", p)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, rel)

		if _, err := os.Stat(target); err == nil {
			return nil // Never clobber student work.
		}

		contents, err := fs.ReadFile(seedData, p)
		if err != nil {
			return err
		}

		mode := os.FileMode(0644)
		if path.Ext(p) == ".sh" {
			mode = 0755
		}

		logger.Printf("Writing %s", target)
		return os.WriteFile(target, contents, mode)
	})
}

// DefaultConfig returns the parsed embedded default configuration. Used by
// commands that run without a workspace, like the playground-style practice
// shell.
func DefaultConfig() (*Configuration, error) {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
