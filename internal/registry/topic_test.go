package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/event/path"
)

// countLinks returns how many times the topic mapping is linked into e.
func countLinks(tp *Topic, e *event.Event) int {
	var n int
	for _, m := range e.Topics() {
		if tp.Mapping().Same(m) {
			n++
		}
	}
	return n
}

// sampleEvents creates two events of the event type at p.
func sampleEvents(t *testing.T, root *NameSpace, p string) []*event.Event {
	t.Helper()
	et := mustEventType(t, root, p)
	mustCreate(t, et)
	mustCreate(t, et)
	return et.Instances()
}

func assertLinks(t *testing.T, tp *Topic, events []*event.Event, want int) {
	t.Helper()
	for _, e := range events {
		assert.Equal(t, want, countLinks(tp, e), "links of %s in %v", tp, e)
	}
}

func TestTopic_Accessors(t *testing.T) {
	root := NewRoot()
	tp := mustTopic(t, root, "my app::my topic")
	assert.Equal(t, "my topic", tp.Name())
	assert.Same(t, mustNS(t, root, "my app"), tp.Namespace())
	assert.Equal(t, "::my app::my topic", tp.Path())
	assert.Equal(t, "::my app::my topic", tp.String())
	assert.Same(t, tp, mustTopic(t, root, "::my app::my topic"))
	assert.Same(t, tp, mustTopic(t, mustNS(t, root, "my app"), "my topic"))

	_, ok := tp.LookupHandlers(event.HookBefore)
	assert.False(t, ok)
	assert.Same(t, tp.Handlers(event.HookBefore), tp.Before())
	got, ok := tp.LookupHandlers(event.HookBefore)
	assert.True(t, ok)
	assert.Same(t, tp.Before(), got)

	assert.Same(t, tp.Handlers(event.HookCallbacks), tp.CallbacksHandlers())
	assert.Same(t, tp.Handlers(event.HookAfter), tp.After())
	assert.Same(t, tp.Handlers(event.HookEnable), tp.Enable())
	assert.Same(t, tp.Handlers(event.HookDisable), tp.Disable())
	assert.ElementsMatch(t, event.StandardHooks(), tp.Mapping().Hooks())
}

func TestTopic_AppendKeepsPathsAsGiven(t *testing.T) {
	root := NewRoot()
	tp := mustTopic(t, root, "my app::sub::my topic")
	paths := []string{
		"my event",
		"sub2::my event",
		"::my app::sub::my event2",
		"::my other app::my event",
		":::::my other app::::sub:::my event",
		"my event",
	}
	require.NoError(t, tp.Append(paths...))
	assert.Equal(t, paths, tp.Paths())
	assert.Equal(t, len(paths), tp.Len())

	p, err := tp.At(1)
	require.NoError(t, err)
	assert.Equal(t, "sub2::my event", p)
}

func TestTopic_AppendInvalidPathLeavesTopic(t *testing.T) {
	root := NewRoot()
	tp := mustTopic(t, root, "t")
	events := sampleEvents(t, root, "e")

	err := tp.Append("e", "bad::")
	assert.ErrorIs(t, err, path.ErrEmptyPath)
	assert.Zero(t, tp.Len())
	assertLinks(t, tp, events, 0)

	assert.ErrorIs(t, tp.Insert(0, ""), path.ErrEmptyPath)
	assert.Zero(t, tp.Len())
}

func TestTopic_SameTargetLinkedTwice(t *testing.T) {
	root := NewRoot()
	tp := mustTopic(t, root, "t")
	events := sampleEvents(t, root, "x")

	require.NoError(t, tp.Append("x"))
	require.NoError(t, tp.Append("x"))
	assertLinks(t, tp, events, 2)

	require.NoError(t, tp.Remove("x"))
	assertLinks(t, tp, events, 1)
	assert.Equal(t, []string{"x"}, tp.Paths())
}

func TestTopic_LinksAcrossNamespaces(t *testing.T) {
	root := NewRoot()
	tp := mustTopic(t, root, "my app::my topic")
	local := sampleEvents(t, root, "my app::sub::my event")
	other := sampleEvents(t, root, "my other app::sub::my event")

	require.NoError(t, tp.Append("sub::my event", "::my app::sub::my event", "::my other app::sub::my event"))
	assertLinks(t, tp, local, 2)
	assertLinks(t, tp, other, 1)

	require.NoError(t, tp.Remove("sub::my event"))
	assertLinks(t, tp, local, 1)
	require.NoError(t, tp.Remove("::my app::sub::my event"))
	assertLinks(t, tp, local, 0)
	assertLinks(t, tp, other, 1)
	require.NoError(t, tp.Remove("::my other app::sub::my event"))
	assertLinks(t, tp, other, 0)
}

func TestTopic_LinksFutureEvents(t *testing.T) {
	root := NewRoot()
	t1 := mustTopic(t, root, "my app::my topic")
	t2 := mustTopic(t, root, "my app::my topic2")
	require.NoError(t, t1.Append("my event", "::my app::my event2"))
	require.NoError(t, t2.Append("my event"))

	first := sampleEvents(t, root, "my app::my event")
	second := sampleEvents(t, root, "my app::my event2")
	assertLinks(t, t1, first, 1)
	assertLinks(t, t2, first, 1)
	assertLinks(t, t1, second, 1)
	assertLinks(t, t2, second, 0)
}

func TestTopic_SetAndDelete(t *testing.T) {
	root := NewRoot()
	tp := mustTopic(t, root, "my app::my topic")
	e1 := sampleEvents(t, root, "my app::my event")
	e2 := sampleEvents(t, root, "my app::my event2")
	e3 := sampleEvents(t, root, "my app::my event3")

	require.NoError(t, tp.Append("my event", "my event2"))
	require.NoError(t, tp.Set(1, "my event3"))
	assert.Equal(t, []string{"my event", "my event3"}, tp.Paths())
	assertLinks(t, tp, e1, 1)
	assertLinks(t, tp, e2, 0)
	assertLinks(t, tp, e3, 1)

	require.NoError(t, tp.Insert(0, "my event2"))
	assert.Equal(t, []string{"my event2", "my event", "my event3"}, tp.Paths())
	assertLinks(t, tp, e2, 1)

	require.NoError(t, tp.Delete(1))
	assert.Equal(t, []string{"my event2", "my event3"}, tp.Paths())
	assertLinks(t, tp, e1, 0)

	require.NoError(t, tp.Insert(tp.Len(), "my event"))
	assert.Equal(t, []string{"my event2", "my event3", "my event"}, tp.Paths())
}

func TestTopic_IndexErrors(t *testing.T) {
	root := NewRoot()
	tp := mustTopic(t, root, "t")
	paths := []string{"e1", "e2", "e3", "e4"}
	require.NoError(t, tp.Append(paths...))

	tests := []struct {
		name string
		op   func() error
	}{
		{"set", func() error { return tp.Set(99, "e99") }},
		{"set negative", func() error { return tp.Set(-1, "e99") }},
		{"delete", func() error { return tp.Delete(4) }},
		{"insert", func() error { return tp.Insert(5, "e99") }},
		{"at", func() error { _, err := tp.At(4); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.op(), event.ErrIndexOutOfRange)
			assert.Equal(t, paths, tp.Paths())
		})
	}
}

func TestTopic_RemoveMissing(t *testing.T) {
	root := NewRoot()
	tp := mustTopic(t, root, "my app::my topic")
	require.NoError(t, tp.Append("my event", "my app::my event2"))

	for _, p := range []string{"my event 2", "my app::my event", "my event2"} {
		t.Run(p, func(t *testing.T) {
			assert.ErrorIs(t, tp.Remove(p), ErrNotFound)
		})
	}
	assert.Equal(t, 2, tp.Len())
}

func TestTopic_RangeOperationsUnsupported(t *testing.T) {
	root := NewRoot()
	tp := mustTopic(t, root, "t")
	paths := []string{"e1", "e2", "e3", "e4"}
	require.NoError(t, tp.Append(paths...))

	assert.ErrorIs(t, tp.DeleteRange(0, 4), ErrUnsupported)
	assert.ErrorIs(t, tp.SetRange(0, 4, "x"), ErrUnsupported)
	assert.Equal(t, paths, tp.Paths())
}

func TestTopic_HandlersSharedByEvents(t *testing.T) {
	root := NewRoot(WithEnabled(true))
	tp := mustTopic(t, root, "t")
	require.NoError(t, tp.Append("a::e", "b::e"))
	a, err := root.Event("a::e")
	require.NoError(t, err)
	b, err := root.Event("b::e")
	require.NoError(t, err)

	var got []string
	tp.Handlers("ping").Register(func(ctx *event.Context, data any) error {
		got = append(got, ctx.Metadata().Namespace().Path())
		return nil
	})

	require.NoError(t, a.Dispatch("ping", nil))
	require.NoError(t, b.Dispatch("ping", nil))
	assert.Equal(t, []string{"::a", "::b"}, got)
}
