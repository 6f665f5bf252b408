package action

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/logging"
	"github.com/dshills/simevents/internal/metrics"
	"github.com/dshills/simevents/internal/plugin/lua"
)

type owner string

func (o owner) Path() string { return string(o) }
func (o owner) String() string { return string(o) }

type valued struct{ v any }

func (v valued) Value() any { return v.v }

func testContext(hook string) *event.Context {
	e := event.New(
		event.F(event.KeyNamespace, owner("::rx")),
		event.F(event.KeyName, "arrival"),
		event.F("id", 7),
	)
	return &event.Context{Event: e, Hook: hook}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Has("noop"))

	called := 0
	r.Register("noop", func(Params) (event.Handler, error) {
		return func(*event.Context, any) error {
			called++
			return nil
		}, nil
	})
	r.Register("broken", func(Params) (event.Handler, error) {
		return nil, errors.New("boom")
	})

	assert.True(t, r.Has("noop"))
	assert.Equal(t, []string{"broken", "noop"}, r.Names())

	h, err := r.Build("noop", nil)
	require.NoError(t, err)
	require.NoError(t, h(testContext(event.HookBefore), nil))
	assert.Equal(t, 1, called)

	_, err = r.Build("missing", nil)
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = r.Build("broken", nil)
	assert.EqualError(t, err, "action broken: boom")
}

func TestParams(t *testing.T) {
	p := Params{"s": "x", "n": 3, "empty": ""}

	s, err := p.String("s", "d")
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	s, err = p.String("absent", "d")
	require.NoError(t, err)
	assert.Equal(t, "d", s)

	_, err = p.String("n", "")
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, err = p.Required("empty")
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, err = Params(nil).Required("s")
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestDefaults(t *testing.T) {
	r := Defaults(Deps{})
	assert.Equal(t, []string{Count, Log, Lua, Print}, r.Names())
}

func TestPrintAction(t *testing.T) {
	var buf bytes.Buffer
	r := Defaults(Deps{Output: &buf})

	h, err := r.Build(Print, Params{"prefix": "> "})
	require.NoError(t, err)

	require.NoError(t, h(testContext(event.HookAfter), valued{v: 1.5}))
	require.NoError(t, h(testContext(event.HookEnable), nil))

	want := "> after {ns: ::rx, name: arrival, id: 7}: 1.5\n" +
		"> enable {ns: ::rx, name: arrival, id: 7}: <nil>\n"
	assert.Equal(t, want, buf.String())

	_, err = r.Build(Print, Params{"prefix": 1})
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestLogAction(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, 0, logging.FormatText)
	r := Defaults(Deps{Logger: logger})

	h, err := r.Build(Log, Params{"message": "seen", "level": "warn"})
	require.NoError(t, err)
	require.NoError(t, h(testContext(event.HookBefore), valued{v: "payload"}))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=seen")
	assert.Contains(t, out, "hook=before")
	assert.Contains(t, out, "name=arrival")
	assert.Contains(t, out, "value=payload")

	_, err = r.Build(Log, Params{"level": "loud"})
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func TestCountAction(t *testing.T) {
	m, err := metrics.New(nil)
	require.NoError(t, err)
	r := Defaults(Deps{Metrics: m})

	named, err := r.Build(Count, Params{"counter": "arrivals"})
	require.NoError(t, err)
	byName, err := r.Build(Count, nil)
	require.NoError(t, err)

	require.NoError(t, named(testContext(event.HookAfter), nil))
	require.NoError(t, named(testContext(event.HookAfter), nil))
	require.NoError(t, byName(testContext(event.HookBefore), nil))

	expected := `
# HELP simevents_action_count_total Hook occurrences recorded by count actions
# TYPE simevents_action_count_total counter
simevents_action_count_total{counter="arrival",hook="before"} 1
simevents_action_count_total{counter="arrivals",hook="after"} 2
`
	err = testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "simevents_action_count_total")
	assert.NoError(t, err)
}

func TestCountActionWithoutMetrics(t *testing.T) {
	h, err := Defaults(Deps{}).Build(Count, nil)
	require.NoError(t, err)
	assert.NoError(t, h(testContext(event.HookAfter), nil))
}

func TestLuaAction(t *testing.T) {
	var buf bytes.Buffer
	state, err := lua.NewState(lua.WithOutput(&buf))
	require.NoError(t, err)
	defer state.Close()
	require.NoError(t, state.DoString(`
function seen(ctx, value)
    print(ctx.metadata.name, ctx.hook, value)
end
`))

	r := Defaults(Deps{Lua: state})
	h, err := r.Build(Lua, Params{"function": "seen"})
	require.NoError(t, err)
	require.NoError(t, h(testContext(event.HookCallbacks), valued{v: 2}))
	assert.Equal(t, "arrival\tcallbacks\t2\n", buf.String())

	_, err = r.Build(Lua, Params{"function": "missing"})
	assert.ErrorIs(t, err, lua.ErrNotFunction)

	_, err = r.Build(Lua, nil)
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, err = Defaults(Deps{}).Build(Lua, Params{"function": "seen"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
