package event

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Reserved metadata keys set by event types.
const (
	KeyNamespace = "ns"
	KeyName      = "name"
)

// Owner is the namespace that owns an event type.
type Owner interface {
	// Path returns the absolute path of the namespace.
	Path() string
}

// Field is one metadata entry.
type Field struct {
	Key   string
	Value any
}

// F creates a metadata field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Metadata is the ordered, read-only key/value set attached to an event.
// Keys keep the position of their first insertion; a later field with the
// same key replaces the value in place.
type Metadata struct {
	values *orderedmap.OrderedMap[string, any]
}

// NewMetadata builds metadata from fields, applied in order.
func NewMetadata(fields ...Field) Metadata {
	values := orderedmap.New[string, any]()
	for _, f := range fields {
		values.Set(f.Key, f.Value)
	}
	return Metadata{values: values}
}

// Get returns the value stored under key.
func (m Metadata) Get(key string) (any, bool) {
	if m.values == nil {
		return nil, false
	}
	return m.values.Get(key)
}

// Name returns the "name" entry if it is a string.
func (m Metadata) Name() string {
	v, _ := m.Get(KeyName)
	s, _ := v.(string)
	return s
}

// Namespace returns the "ns" entry if it is an Owner.
func (m Metadata) Namespace() Owner {
	v, _ := m.Get(KeyNamespace)
	o, _ := v.(Owner)
	return o
}

// Len returns the number of entries.
func (m Metadata) Len() int {
	if m.values == nil {
		return 0
	}
	return m.values.Len()
}

// Keys returns the keys in insertion order.
func (m Metadata) Keys() []string {
	if m.values == nil {
		return nil
	}
	keys := make([]string, 0, m.values.Len())
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Fields returns the entries in insertion order.
func (m Metadata) Fields() []Field {
	if m.values == nil {
		return nil
	}
	fields := make([]Field, 0, m.values.Len())
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		fields = append(fields, Field{Key: pair.Key, Value: pair.Value})
	}
	return fields
}

// Without returns the entries whose key is not listed, in insertion order.
func (m Metadata) Without(keys ...string) []Field {
	var fields []Field
	for _, f := range m.Fields() {
		skip := false
		for _, k := range keys {
			if f.Key == k {
				skip = true
				break
			}
		}
		if !skip {
			fields = append(fields, f)
		}
	}
	return fields
}

// String renders the metadata as {key: value, ...} in insertion order.
func (m Metadata) String() string {
	return FormatFields(m.Fields())
}

// FormatFields renders fields as {key: value, ...}.
func FormatFields(fields []Field) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", f.Key, f.Value)
	}
	b.WriteByte('}')
	return b.String()
}
