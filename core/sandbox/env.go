package sandbox

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// NewMapEnv creates an empty in-memory environment.
func NewMapEnv() *MapEnv {
	return &MapEnv{}
}

// NewMapEnvFromList creates an environment from "key=value" pairs. Later
// duplicates win, matching exec semantics.
func NewMapEnvFromList(environ []string) *MapEnv {
	out := &MapEnv{}
	for _, e := range environ {
		key, value, _ := strings.Cut(e, "=")
		// Never fails for MapEnv.
		_ = out.Setenv(key, value)
	}
	return out
}

// CopyEnv copies every variable from src into dst.
func CopyEnv(dst Env, environ []string) error {
	for _, e := range environ {
		key, value, _ := strings.Cut(e, "=")
		if err := dst.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}

// MapEnv implements Env backed by a map.
type MapEnv struct {
	mu  sync.RWMutex
	env map[string]string
}

var _ Env = (*MapEnv)(nil)

// Setenv implements Env.Setenv.
func (m *MapEnv) Setenv(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
	return nil
}

// Unsetenv implements Env.Unsetenv.
func (m *MapEnv) Unsetenv(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.env, key)
	return nil
}

// LookupEnv implements Env.LookupEnv.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.env[key]
	return val, ok
}

// Getenv implements Env.Getenv.
func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// ExpandEnv implements Env.ExpandEnv.
func (m *MapEnv) ExpandEnv(s string) string {
	return os.Expand(s, m.Getenv)
}

// Environ implements Env.Environ. Entries are sorted so output that dumps
// the environment is stable.
func (m *MapEnv) Environ() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	env := make([]string, 0, len(m.env))
	for k, v := range m.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)
	return env
}
