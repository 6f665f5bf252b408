// Package layer provides configuration layer management.
//
// Each configuration source becomes a Layer with a priority. Higher
// priority layers override values from lower priority layers when the
// Manager merges them.
package layer

// Layer represents a single configuration layer.
type Layer struct {
	// Name identifies the layer (e.g., "default", "file", "env").
	Name string

	// Priority determines merge order (higher overrides lower).
	Priority int

	// Source indicates where this layer was loaded from.
	Source Source

	// Path is the file path (if loaded from file).
	Path string

	// Data holds the configuration values as a nested map.
	Data map[string]any
}

// NewLayer creates a layer holding data. A nil data map is replaced by an
// empty one.
func NewLayer(name string, source Source, data map[string]any) *Layer {
	if data == nil {
		data = make(map[string]any)
	}
	return &Layer{
		Name:     name,
		Source:   source,
		Priority: DefaultPriority(source),
		Data:     data,
	}
}

// Clone creates a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	return &Layer{
		Name:     l.Name,
		Priority: l.Priority,
		Source:   l.Source,
		Path:     l.Path,
		Data:     cloneMap(l.Data),
	}
}

// Source indicates where a configuration layer came from.
type Source uint8

const (
	// SourceDefault represents built-in default configuration.
	SourceDefault Source = iota
	// SourceFile represents a configuration file.
	SourceFile
	// SourceEnv represents environment variables.
	SourceEnv
	// SourceFlags represents command-line flags.
	SourceFlags
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "env"
	case SourceFlags:
		return "flags"
	default:
		return "unknown"
	}
}

// DefaultPriority returns the priority of a source.
// Flags override the environment, which overrides files, which override
// the defaults.
func DefaultPriority(source Source) int {
	switch source {
	case SourceDefault:
		return 0
	case SourceFile:
		return 100
	case SourceEnv:
		return 200
	case SourceFlags:
		return 300
	default:
		return 0
	}
}
