package config

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/dshills/simevents/internal/config/layer"
	"github.com/dshills/simevents/internal/config/loader"
	"github.com/dshills/simevents/internal/logging"
)

// Config is the decoded simulation configuration.
type Config struct {
	// Enabled sets the root enabled value. Nil keeps the default (false).
	Enabled *bool `mapstructure:"enabled"`

	Log      LogConfig      `mapstructure:"log"`
	Dispatch DispatchConfig `mapstructure:"dispatch"`
	Run      RunConfig      `mapstructure:"run"`

	Namespaces map[string]NodeConfig  `mapstructure:"namespaces"`
	EventTypes map[string]NodeConfig  `mapstructure:"event_types"`
	Topics     map[string]TopicConfig `mapstructure:"topics"`

	Sources []SourceConfig `mapstructure:"sources"`

	// Scripts are Lua files loaded before handlers are built.
	Scripts []string `mapstructure:"scripts"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DispatchConfig configures the dispatcher set on the root namespace.
type DispatchConfig struct {
	// Isolate runs every handler of a dispatch and recovers panics.
	Isolate bool `mapstructure:"isolate"`
}

// RunConfig configures the simulation run.
type RunConfig struct {
	// Until stops the run at this time. Zero runs until no events remain.
	Until float64 `mapstructure:"until"`
}

// NodeConfig sets cascade values on a namespace or event type.
type NodeConfig struct {
	// Enabled overrides the inherited enabled value.
	Enabled *bool `mapstructure:"enabled"`

	// Silent sets a nil dispatcher, which suppresses every hook below.
	Silent bool `mapstructure:"silent"`
}

// TopicConfig describes one topic.
type TopicConfig struct {
	// EventTypes are the event type paths linked to the topic, resolved
	// against the topic's namespace.
	EventTypes []string        `mapstructure:"event_types"`
	Handlers   []HandlerConfig `mapstructure:"handlers"`
}

// HandlerConfig registers one action under a hook.
type HandlerConfig struct {
	Hook   string         `mapstructure:"hook"`
	Action string         `mapstructure:"action"`
	Params map[string]any `mapstructure:"params"`
}

// SourceConfig creates Count instances of an event type, attached to
// scheduler timeouts at Start, Start+Interval, and so on.
type SourceConfig struct {
	EventType string         `mapstructure:"event_type"`
	Start     float64        `mapstructure:"start"`
	Interval  float64        `mapstructure:"interval"`
	Count     int            `mapstructure:"count"`
	Meta      map[string]any `mapstructure:"meta"`
}

// Defaults returns the default configuration layer data.
func Defaults() map[string]any {
	return map[string]any{
		"log": map[string]any{
			"level":  "info",
			"format": logging.FormatText,
		},
		"dispatch": map[string]any{
			"isolate": false,
		},
		"run": map[string]any{
			"until": 0.0,
		},
	}
}

type loadOptions struct {
	fs        loader.FileSystem
	env       loader.Loader
	overrides map[string]any
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithFS sets the file system the configuration file is read from.
func WithFS(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnv sets the environment loader. Nil disables the environment layer.
func WithEnv(env loader.Loader) LoadOption {
	return func(o *loadOptions) {
		o.env = env
	}
}

// WithOverride sets a value in the flags layer, which overrides every other
// source. key is a dot path such as "log.level".
func WithOverride(key string, value any) LoadOption {
	return func(o *loadOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]any)
		}
		layer.SetByPath(o.overrides, key, value)
	}
}

// Load merges the defaults, the file at path, the environment and the
// overrides, in that order of increasing priority, and decodes the result. An empty path skips
// the file layer.
func Load(path string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{
		fs:  loader.OSFS{},
		env: loader.NewEnvLoader(loader.DefaultEnvPrefix),
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := layer.NewManager()
	m.AddLayer(layer.NewLayer("default", layer.SourceDefault, Defaults()))

	if path != "" {
		l, err := loader.ForPath(o.fs, path)
		if err != nil {
			return nil, err
		}
		data, err := l.Load()
		if err != nil {
			return nil, err
		}
		if data == nil {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		fileLayer := layer.NewLayer("file", layer.SourceFile, data)
		fileLayer.Path = path
		m.AddLayer(fileLayer)
	}

	if o.env != nil {
		data, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		m.AddLayer(layer.NewLayer("env", layer.SourceEnv, data))
	}

	if o.overrides != nil {
		m.AddLayer(layer.NewLayer("flags", layer.SourceFlags, o.overrides))
	}

	return Decode(m.Merge())
}

// Decode converts a merged configuration map into a Config. Unknown keys
// are errors; scalar types are converted where possible, so "1" or 1 decode
// into a bool.
func Decode(data map[string]any) (*Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(data); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// sortedKeys returns the keys of m in order, so configuration is applied
// deterministically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
