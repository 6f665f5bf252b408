package loader

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/simevents/internal/config/layer"
)

// DefaultEnvPrefix is the prefix of the environment variables read by
// NewEnvLoader.
const DefaultEnvPrefix = "SIMEVENTS_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	mapping map[string]string // env var -> config path
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates an environment loader for the standard variables
// under prefix:
//
//	<prefix>ENABLED           enabled
//	<prefix>LOG_LEVEL         log.level
//	<prefix>LOG_FORMAT        log.format
//	<prefix>DISPATCH_ISOLATE  dispatch.isolate
//	<prefix>RUN_UNTIL         run.until
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		mapping: map[string]string{
			prefix + "ENABLED":          "enabled",
			prefix + "LOG_LEVEL":        "log.level",
			prefix + "LOG_FORMAT":       "log.format",
			prefix + "DISPATCH_ISOLATE": "dispatch.isolate",
			prefix + "RUN_UNTIL":        "run.until",
		},
		lookup: os.LookupEnv,
	}
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// Variables returns the mapped environment variable names, sorted.
func (l *EnvLoader) Variables() []string {
	names := make([]string, 0, len(l.mapping))
	for name := range l.mapping {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads the mapped environment variables and returns a configuration
// map. Empty values are kept.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			layer.SetByPath(config, path, parseValue(val))
		}
	}
	return config, nil
}

// parseValue guesses the type of an environment value.
// Numbers are tried before booleans so "1" stays a number; the decoder
// converts it when a bool is expected.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.ContainsAny(s, ".eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	return s
}
