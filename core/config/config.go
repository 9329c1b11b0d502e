// Package config loads and scaffolds the shelldrill workspace: a directory
// holding shelldrill.yaml, the lesson and script folders, exercise specs and
// the progress log.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

//go:embed default/shelldrill.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "shelldrill.yaml"
	LessonsDirName    = "lessons"
	ScriptsDirName    = "scripts"
	ExercisesDirName  = "exercises"
	ProgressLogName   = "progress.jsonl"
	EnvFileName       = ".env"
)

// Configuration is the workspace settings file.
type Configuration struct {
	configDir string
	configFs  afero.Fs

	Course  Course  `json:"course"`
	Sandbox Sandbox `json:"sandbox"`
}

// Course settings.
type Course struct {
	// Name shows up in lesson listings.
	Name string `json:"name" validate:"required"`
	// Days picks the study plan length.
	Days int `json:"days" validate:"required,oneof=10 15 20"`
}

// Sandbox is the identity the practice shell presents.
type Sandbox struct {
	User     string `json:"user" validate:"required"`
	Hostname string `json:"hostname" validate:"required,hostname_rfc1123"`
	// Prompt is the PS1 the practice shell starts with, "" for the default.
	Prompt string `json:"prompt"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewBasePathFs(afero.NewOsFs(), c.configDir)
	}
	return c.configFs
}

// Dir returns the workspace directory.
func (c *Configuration) Dir() string { return c.configDir }

// LessonsDir returns the host path of the workspace lesson directory.
func (c *Configuration) LessonsDir() string {
	return filepath.Join(c.configDir, LessonsDirName)
}

// ScriptsDir returns the host path of the workspace scripts directory.
func (c *Configuration) ScriptsDir() string {
	return filepath.Join(c.configDir, ScriptsDirName)
}

// ExercisePath returns the host path of a named exercise spec.
func (c *Configuration) ExercisePath(name string) string {
	return filepath.Join(c.configDir, ExercisesDirName, name+".yaml")
}

// EnvFile returns the host path of the workspace .env file.
func (c *Configuration) EnvFile() string {
	return filepath.Join(c.configDir, EnvFileName)
}

// OpenProgressLog opens the progress log in an append-only state.
func (c *Configuration) OpenProgressLog() (afero.File, error) {
	return c.fs().OpenFile(ProgressLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadProgressLog opens the progress log for reading.
func (c *Configuration) ReadProgressLog() (afero.File, error) {
	return c.fs().OpenFile(ProgressLogName, os.O_RDONLY, 0600)
}
