package config

import (
	"errors"
	"fmt"

	"github.com/dshills/simevents/internal/action"
	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/event/path"
	"github.com/dshills/simevents/internal/logging"
)

// Validate checks the configuration and returns every problem joined.
// Action names are checked against actions when it is not nil.
func (c *Config) Validate(actions *action.Registry) error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		fail("log.level", "%v", err)
	}
	if !logging.ValidFormat(c.Log.Format) {
		fail("log.format", "unknown format %q", c.Log.Format)
	}
	if c.Run.Until < 0 {
		fail("run.until", "must not be negative")
	}

	for _, key := range sortedKeys(c.Namespaces) {
		if len(path.Segments(key)) == 0 {
			fail("namespaces."+key, "empty namespace path")
		}
	}
	for _, key := range sortedKeys(c.EventTypes) {
		if msg := checkLeafPath(key); msg != "" {
			fail("event_types."+key, "%s", msg)
		}
	}

	for _, key := range sortedKeys(c.Topics) {
		field := "topics." + key
		if msg := checkLeafPath(key); msg != "" {
			fail(field, "%s", msg)
		}
		topic := c.Topics[key]
		for i, et := range topic.EventTypes {
			if msg := checkLeafPath(et); msg != "" {
				fail(fmt.Sprintf("%s.event_types[%d]", field, i), "%s", msg)
			}
		}
		for i, h := range topic.Handlers {
			hf := fmt.Sprintf("%s.handlers[%d]", field, i)
			if !event.IsStandardHook(h.Hook) {
				fail(hf+".hook", "unknown hook %q", h.Hook)
			}
			switch {
			case h.Action == "":
				fail(hf+".action", "action is required")
			case actions != nil && !actions.Has(h.Action):
				fail(hf+".action", "unknown action %q", h.Action)
			}
		}
	}

	for i, src := range c.Sources {
		sf := fmt.Sprintf("sources[%d]", i)
		if msg := checkLeafPath(src.EventType); msg != "" {
			fail(sf+".event_type", "%s", msg)
		}
		if src.Count < 0 {
			fail(sf+".count", "must not be negative")
		}
		if src.Start < 0 {
			fail(sf+".start", "must not be negative")
		}
		if src.Interval < 0 {
			fail(sf+".interval", "must not be negative")
		}
	}

	for i, script := range c.Scripts {
		if script == "" {
			fail(fmt.Sprintf("scripts[%d]", i), "empty script path")
		}
	}

	return errors.Join(errs...)
}

// checkLeafPath reports why p cannot name an event type or topic.
func checkLeafPath(p string) string {
	if p == "" {
		return "empty path"
	}
	if _, leaf, _ := path.SplitLeaf(p); leaf == "" {
		return fmt.Sprintf("path %q has no leaf name", p)
	}
	return ""
}
