package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/simevents/internal/event"
)

// printer is a dispatcher that records every dispatch as one line.
type printer struct {
	name string
	out  *[]string
}

func (p printer) Dispatch(e *event.Event, hook string, data any) error {
	*p.out = append(*p.out, fmt.Sprintf("%s : %v %s %v", p.name, e.Metadata(), hook, data))
	return nil
}

func mustNS(t *testing.T, ns *NameSpace, p string) *NameSpace {
	t.Helper()
	got, err := ns.NS(p)
	require.NoError(t, err)
	return got
}

func mustEventType(t *testing.T, ns *NameSpace, p string) *EventType {
	t.Helper()
	et, err := ns.EventType(p)
	require.NoError(t, err)
	return et
}

func mustTopic(t *testing.T, ns *NameSpace, p string) *Topic {
	t.Helper()
	tp, err := ns.Topic(p)
	require.NoError(t, err)
	return tp
}

func mustCreate(t *testing.T, et *EventType, fields ...event.Field) *event.Event {
	t.Helper()
	e, err := et.Create(fields...)
	require.NoError(t, err)
	return e
}
