package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/event/path"
)

func TestNewRoot_Defaults(t *testing.T) {
	root := NewRoot()
	assert.True(t, root.IsRoot())
	assert.Same(t, root, root.Root())
	assert.Nil(t, root.Parent())
	assert.Empty(t, root.Name())
	assert.Empty(t, root.Path())
	assert.Equal(t, "::", root.String())
	assert.False(t, root.Enabled().Effective())
	assert.Equal(t, event.EventDispatcher{}, root.Dispatcher().Effective())
}

func TestNewRoot_Options(t *testing.T) {
	var out []string
	d := printer{name: "custom", out: &out}
	root := NewRoot(WithDispatcher(d), WithEnabled(true), WithLogger(nil))
	assert.True(t, root.Enabled().Effective())
	assert.Equal(t, d, root.Dispatcher().Effective())
}

func TestNewRoot_NilDispatcherKeepsDefault(t *testing.T) {
	root := NewRoot(WithDispatcher(nil))
	assert.Equal(t, event.EventDispatcher{}, root.Dispatcher().Effective())
}

func TestNameSpace_NS(t *testing.T) {
	root := NewRoot()
	one := mustNS(t, root, "one")
	assert.Equal(t, "one", one.Name())
	assert.Equal(t, "::one", one.Path())
	assert.Same(t, root, one.Parent())
	assert.Same(t, one, mustNS(t, root, "one"))

	t.Run("absolute from child", func(t *testing.T) {
		assert.Same(t, mustNS(t, root, "one::two"), mustNS(t, one, "::one::two"))
	})

	t.Run("relative from child", func(t *testing.T) {
		nested := mustNS(t, one, "one::two")
		assert.NotSame(t, mustNS(t, root, "one::two"), nested)
		assert.Same(t, mustNS(t, root, "one::one::two"), nested)
		assert.Same(t, mustNS(t, mustNS(t, one, "one"), "two"), nested)
	})

	t.Run("depth", func(t *testing.T) {
		third := mustNS(t, root, "first::second::third")
		assert.Equal(t, "third", third.Name())
		assert.Equal(t, "::first::second::third", third.Path())
		assert.Equal(t, "::first::second::third", third.String())
	})
}

func TestNameSpace_NormalizedPathsResolveIdentically(t *testing.T) {
	root := NewRoot()
	paths := []string{
		"::a::::b::",
		"a::b",
		"::::a::b",
		"a::::::b::::",
	}
	want := mustNS(t, root, "a::b")
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			assert.Same(t, want, mustNS(t, root, p))

			normalized, err := path.Normalize(p)
			require.NoError(t, err)
			assert.Same(t, mustNS(t, root, p), mustNS(t, root, normalized))
		})
	}
}

func TestNameSpace_ColonNames(t *testing.T) {
	root := NewRoot()
	assert.Equal(t, ":one", mustNS(t, root, ":one").Name())
	assert.NotSame(t, mustNS(t, root, "my ns"), mustNS(t, root, "my ns:"))
	assert.Same(t, mustNS(t, mustNS(t, root, "my ns"), ":"), mustNS(t, root, "my ns:::"))

	ns1 := mustNS(t, root, ":one::two:::::three:")
	ns2 := mustNS(t, mustNS(t, mustNS(t, root, ":one"), "two"), ":three:")
	assert.Same(t, ns2, ns1)
}

func TestNameSpace_EmptyPaths(t *testing.T) {
	root := NewRoot()
	for _, p := range []string{"", "::", "::::", "::::::"} {
		t.Run(p, func(t *testing.T) {
			_, err := root.NS(p)
			assert.ErrorIs(t, err, path.ErrEmptyPath)

			var pe *PathError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "ns", pe.Op)
			assert.Equal(t, p, pe.Path)
		})
	}
}

func TestNameSpace_EventType(t *testing.T) {
	root := NewRoot()

	et := mustEventType(t, root, "my event")
	assert.Equal(t, "my event", et.Name())
	assert.Same(t, root, et.Namespace())
	assert.Equal(t, "::my event", et.Path())
	assert.Same(t, et, mustEventType(t, root, "::my event"))

	sub := mustEventType(t, root, "a::b::e")
	assert.Same(t, mustNS(t, root, "a::b"), sub.Namespace())
	assert.Same(t, sub, mustEventType(t, mustNS(t, root, "a"), "b::e"))
	assert.Same(t, sub, mustEventType(t, mustNS(t, root, "x"), "::a::b::e"))

	assert.Equal(t, []string{"my event"}, root.EventTypes())
	got, ok := root.LookupEventType("my event")
	assert.True(t, ok)
	assert.Same(t, et, got)
	_, ok = root.LookupEventType("a")
	assert.False(t, ok)
}

func TestNameSpace_SeparateKeySpaces(t *testing.T) {
	root := NewRoot()
	mustNS(t, root, "domain")
	mustEventType(t, root, "domain")
	mustTopic(t, root, "domain")

	assert.Equal(t, []string{"domain"}, root.Children())
	assert.Equal(t, []string{"domain"}, root.EventTypes())
	assert.Equal(t, []string{"domain"}, root.Topics())
}

func TestNameSpace_EmptyLeaf(t *testing.T) {
	root := NewRoot()
	for _, p := range []string{"", "::", "a::", "a::b::"} {
		t.Run(p, func(t *testing.T) {
			_, err := root.EventType(p)
			assert.ErrorIs(t, err, path.ErrEmptyPath)
			_, err = root.Topic(p)
			assert.ErrorIs(t, err, path.ErrEmptyPath)
			_, err = root.Event(p)
			assert.ErrorIs(t, err, path.ErrEmptyPath)
			_, err = root.Handlers(p, event.HookBefore)
			assert.ErrorIs(t, err, path.ErrEmptyPath)
		})
	}
}

func TestNameSpace_EmptyNamespacePart(t *testing.T) {
	root := NewRoot()
	a := mustNS(t, root, "a")

	et, err := a.EventType("::e")
	require.NoError(t, err)
	assert.Equal(t, "::e", et.Path())

	for _, p := range []string{"::::e", "::::::e"} {
		t.Run(p, func(t *testing.T) {
			_, err := a.EventType(p)
			assert.ErrorIs(t, err, path.ErrEmptyPath)
			_, err = a.Topic(p)
			assert.ErrorIs(t, err, path.ErrEmptyPath)
		})
	}
}

func TestNameSpace_Event(t *testing.T) {
	root := NewRoot()
	a := mustNS(t, root, "a")

	e, err := a.Event("e", event.F("id", 1))
	require.NoError(t, err)
	assert.Same(t, a, e.Metadata().Namespace())
	assert.Equal(t, "e", e.Metadata().Name())

	e, err = a.Event("::e")
	require.NoError(t, err)
	assert.Same(t, root, e.Metadata().Namespace())

	et := mustEventType(t, root, "a::e")
	assert.Len(t, et.Instances(), 1)
}

func TestNameSpace_HandlerShortcuts(t *testing.T) {
	root := NewRoot()
	topic := mustTopic(t, root, "a::t")

	tests := []struct {
		hook string
		get  func(string) (*event.Handlers, error)
	}{
		{event.HookBefore, root.Before},
		{event.HookCallbacks, root.Callbacks},
		{event.HookAfter, root.After},
		{event.HookEnable, root.Enable},
		{event.HookDisable, root.Disable},
	}
	for _, tt := range tests {
		t.Run(tt.hook, func(t *testing.T) {
			h, err := tt.get("a::t")
			require.NoError(t, err)
			assert.Same(t, topic.Handlers(tt.hook), h)

			h, err = root.Handlers("a::t", tt.hook)
			require.NoError(t, err)
			assert.Same(t, topic.Handlers(tt.hook), h)
		})
	}
}

func TestNameSpace_Walk(t *testing.T) {
	root := NewRoot()
	mustNS(t, root, "b::y")
	mustNS(t, root, "a::x")
	mustNS(t, root, "a::w")

	var visited []string
	require.NoError(t, root.Walk(func(ns *NameSpace) error {
		visited = append(visited, ns.String())
		return nil
	}))
	assert.Equal(t, []string{"::", "::a", "::a::w", "::a::x", "::b", "::b::y"}, visited)

	stop := errors.New("stop")
	visited = nil
	err := root.Walk(func(ns *NameSpace) error {
		visited = append(visited, ns.String())
		if ns.Name() == "a" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"::", "::a"}, visited)
}
