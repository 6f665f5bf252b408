package path

import (
	"errors"
	"strings"
)

// Separator separates path segments.
const Separator = "::"

// ErrEmptyPath is returned when a path or leaf name has no segments.
var ErrEmptyPath = errors.New("name cannot be empty")

// IsAbsolute returns true if p is resolved from the root namespace.
func IsAbsolute(p string) bool {
	return strings.HasPrefix(p, Separator)
}

// TrimRoot removes every leading separator.
func TrimRoot(p string) string {
	for strings.HasPrefix(p, Separator) {
		p = p[len(Separator):]
	}
	return p
}

// Segments returns the non-empty segments of p.
// Leading, trailing and repeated separators are discarded.
func Segments(p string) []string {
	parts := strings.Split(TrimRoot(p), Separator)

	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	if len(segments) == 0 {
		return nil
	}
	return segments
}

// Normalize returns the canonical form of p: segments joined by a single
// separator, with a leading separator if p is absolute.
//
// Example: "::a::::b::" -> "::a::b", "a::b::" -> "a::b"
func Normalize(p string) (string, error) {
	segments := Segments(p)
	if len(segments) == 0 {
		return "", ErrEmptyPath
	}

	joined := strings.Join(segments, Separator)
	if IsAbsolute(p) {
		return Separator + joined, nil
	}
	return joined, nil
}

// SplitLeaf splits p at the last separator into a namespace path and a leaf
// name. hasDir is false when p contains no separator, meaning the leaf lives in
// the namespace the path is resolved against. An empty dir with hasDir set
// means the root namespace.
//
// The leaf is returned as is and may be empty ("a::" -> "a", "").
func SplitLeaf(p string) (dir, leaf string, hasDir bool) {
	idx := strings.LastIndex(p, Separator)
	if idx < 0 {
		return "", p, false
	}
	return p[:idx], p[idx+len(Separator):], true
}

// Join joins segments into an absolute path.
func Join(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}
	return Separator + strings.Join(segments, Separator)
}

// Child returns the path of a child segment below parent.
// An empty parent denotes the root.
func Child(parent, segment string) string {
	return parent + Separator + segment
}
