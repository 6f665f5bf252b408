package config

import (
	"fmt"

	"github.com/dshills/simevents/internal/action"
	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/registry"
	"github.com/dshills/simevents/internal/sim"
)

// Apply sets the cascade values, builds the topics and registers their
// handlers on the registry below root. Handlers are built with actions.
//
// Values are applied root first, then namespaces and event types in path
// order, so a configuration file reads top down like the tree it sets up.
func Apply(root *registry.NameSpace, cfg *Config, actions *action.Registry) error {
	if cfg.Enabled != nil {
		if err := root.Enabled().Set(*cfg.Enabled); err != nil {
			return fmt.Errorf("enabled: %w", err)
		}
	}

	for _, key := range sortedKeys(cfg.Namespaces) {
		ns, err := root.NS(key)
		if err != nil {
			return fmt.Errorf("namespaces.%s: %w", key, err)
		}
		if err := applyNode(ns.Dispatcher(), ns.Enabled(), cfg.Namespaces[key]); err != nil {
			return fmt.Errorf("namespaces.%s: %w", key, err)
		}
	}

	for _, key := range sortedKeys(cfg.EventTypes) {
		et, err := root.EventType(key)
		if err != nil {
			return fmt.Errorf("event_types.%s: %w", key, err)
		}
		if err := applyNode(et.Dispatcher(), et.Enabled(), cfg.EventTypes[key]); err != nil {
			return fmt.Errorf("event_types.%s: %w", key, err)
		}
	}

	for _, key := range sortedKeys(cfg.Topics) {
		if err := applyTopic(root, key, cfg.Topics[key], actions); err != nil {
			return fmt.Errorf("topics.%s: %w", key, err)
		}
	}
	return nil
}

func applyNode(d *registry.DispatcherNode, en *registry.EnabledNode, node NodeConfig) error {
	if node.Silent {
		if err := d.Set(nil); err != nil {
			return err
		}
	}
	if node.Enabled != nil {
		return en.Set(*node.Enabled)
	}
	return nil
}

func applyTopic(root *registry.NameSpace, key string, tc TopicConfig, actions *action.Registry) error {
	topic, err := root.Topic(key)
	if err != nil {
		return err
	}
	for _, h := range tc.Handlers {
		fn, err := actions.Build(h.Action, action.Params(h.Params))
		if err != nil {
			return err
		}
		topic.Handlers(h.Hook).Register(fn)
	}
	return topic.Append(tc.EventTypes...)
}

// Schedule creates the instances described by the sources and attaches each
// to a scheduler timeout. Instance i carries the source metadata plus
// "seq" = i, and its timeout fires with value i. It returns the number of
// instances created.
//
// Apply must run first so that instances are created into the configured
// tree.
func Schedule(root *registry.NameSpace, cfg *Config, env *sim.Environment) (int, error) {
	n := 0
	for i, src := range cfg.Sources {
		et, err := root.EventType(src.EventType)
		if err != nil {
			return n, fmt.Errorf("sources[%d]: %w", i, err)
		}

		fields := make([]event.Field, 0, len(src.Meta)+1)
		for _, k := range sortedKeys(src.Meta) {
			fields = append(fields, event.F(k, src.Meta[k]))
		}

		for seq := 0; seq < src.Count; seq++ {
			e, err := et.Create(append(fields, event.F("seq", seq))...)
			if err != nil {
				return n, fmt.Errorf("sources[%d]: %w", i, err)
			}
			e.Attach(env.Timeout(src.Start+float64(seq)*src.Interval, seq))
			n++
		}
	}
	return n, nil
}
