package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix of lineedit environment variables.
const DefaultEnvPrefix = "LINEEDIT_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	mapping  map[string]string // Env var -> config path
	rawPaths map[string]bool   // Config paths whose values are never coerced
	lookup   func(string) (string, bool)
}

// NewEnvLoader creates a loader with the default variable mappings.
func NewEnvLoader() *EnvLoader {
	l := NewEnvLoaderWithMapping(defaultEnvMapping())
	for _, path := range defaultStringPaths {
		l.rawPaths[path] = true
	}
	return l
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		mapping:  mapping,
		rawPaths: make(map[string]bool),
		lookup:   os.LookupEnv,
	}
}

// defaultEnvMapping returns the default environment variable mappings.
func defaultEnvMapping() map[string]string {
	p := DefaultEnvPrefix
	return map[string]string{
		p + "LOG_LEVEL":      "log.level",
		p + "LOG_FORMAT":     "log.format",
		p + "HISTORY_MAX":    "history.max_entries",
		p + "TAB_TEXT":       "editor.tab_text",
		p + "CLIPBOARD":      "clipboard.provider",
		p + "MAX_FILE_SIZE":  "files.max_size",
		p + "SCRIPT_TIMEOUT": "script.timeout",
	}
}

// defaultStringPaths are the string-typed settings. "2" is a valid tab text
// and must not become an integer.
var defaultStringPaths = []string{
	"log.level",
	"log.format",
	"editor.tab_text",
	"clipboard.provider",
	"script.timeout",
}

// Load reads the mapped environment variables and returns a configuration
// map. Unset variables are skipped; empty values are kept.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for env, path := range l.mapping {
		val, ok := l.lookup(env)
		if !ok {
			continue
		}
		if l.rawPaths[path] {
			setByPath(config, path, val)
		} else {
			setByPath(config, path, parseValue(val))
		}
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// AddStringMapping adds a mapping whose value is always kept as a string.
func (l *EnvLoader) AddStringMapping(envVar, configPath string) {
	l.AddMapping(envVar, configPath)
	if l.rawPaths == nil {
		l.rawPaths = make(map[string]bool)
	}
	l.rawPaths[configPath] = true
}

// parseValue converts integers and booleans; everything else stays a string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
