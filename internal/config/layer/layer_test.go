package layer

import (
	"reflect"
	"testing"
)

func TestNewLayer(t *testing.T) {
	l := NewLayer("env", SourceEnv, nil)

	if l.Name != "env" {
		t.Errorf("Name = %q, want %q", l.Name, "env")
	}
	if l.Priority != 200 {
		t.Errorf("Priority = %d, want 200", l.Priority)
	}
	if l.Data == nil {
		t.Error("Data should be initialized")
	}
}

func TestLayer_Clone(t *testing.T) {
	original := NewLayer("file", SourceFile, map[string]any{
		"log":     map[string]any{"level": "debug"},
		"scripts": []any{"a.lua"},
	})
	original.Path = "sim.toml"

	clone := original.Clone()
	clone.Data["log"].(map[string]any)["level"] = "warn"
	clone.Data["scripts"].([]any)[0] = "b.lua"

	if original.Data["log"].(map[string]any)["level"] != "debug" {
		t.Error("modifying the clone changed the original map")
	}
	if original.Data["scripts"].([]any)[0] != "a.lua" {
		t.Error("modifying the clone changed the original slice")
	}
	if clone.Path != "sim.toml" {
		t.Errorf("Path = %q, want sim.toml", clone.Path)
	}
}

func TestSource_String(t *testing.T) {
	tests := []struct {
		source Source
		want   string
	}{
		{SourceDefault, "default"},
		{SourceFile, "file"},
		{SourceEnv, "env"},
		{SourceFlags, "flags"},
		{Source(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.source.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name string
		dst  map[string]any
		src  map[string]any
		want map[string]any
	}{
		{
			name: "nil dst",
			dst:  nil,
			src:  map[string]any{"a": 1},
			want: map[string]any{"a": 1},
		},
		{
			name: "override scalar",
			dst:  map[string]any{"enabled": false},
			src:  map[string]any{"enabled": true},
			want: map[string]any{"enabled": true},
		},
		{
			name: "nested merge",
			dst:  map[string]any{"log": map[string]any{"level": "info", "format": "text"}},
			src:  map[string]any{"log": map[string]any{"level": "debug"}},
			want: map[string]any{"log": map[string]any{"level": "debug", "format": "text"}},
		},
		{
			name: "map replaces scalar",
			dst:  map[string]any{"run": 1},
			src:  map[string]any{"run": map[string]any{"until": 5}},
			want: map[string]any{"run": map[string]any{"until": 5}},
		},
		{
			name: "slices are replaced",
			dst:  map[string]any{"scripts": []any{"a"}},
			src:  map[string]any{"scripts": []any{"b", "c"}},
			want: map[string]any{"scripts": []any{"b", "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeepMerge(tt.dst, tt.src)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeepMerge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	data := map[string]any{}

	SetByPath(data, "dispatch.isolate", true)
	SetByPath(data, "topics.::rx::log.event_types", []any{"::rx::e"})

	if v, ok := GetByPath(data, "dispatch.isolate"); !ok || v != true {
		t.Errorf("GetByPath(dispatch.isolate) = %v, %v", v, ok)
	}
	if _, ok := GetByPath(data, "topics.::rx::log"); !ok {
		t.Error("namespace paths should be single keys")
	}
	if _, ok := GetByPath(data, "dispatch.isolate.deeper"); ok {
		t.Error("GetByPath through a scalar should fail")
	}
	if _, ok := GetByPath(nil, "a"); ok {
		t.Error("GetByPath(nil) should fail")
	}

	if !DeleteByPath(data, "dispatch.isolate") {
		t.Error("DeleteByPath() should find the value")
	}
	if DeleteByPath(data, "dispatch.isolate") {
		t.Error("second DeleteByPath() should not find the value")
	}
	if DeleteByPath(data, "missing.key") {
		t.Error("DeleteByPath() through a missing map should fail")
	}
}
