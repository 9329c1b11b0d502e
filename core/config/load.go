package config

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the workspace directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a shelldrill.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := os.ReadFile(filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigurationName, err)
	}
	out.configDir = path

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
