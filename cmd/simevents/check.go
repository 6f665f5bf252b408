package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/simevents/internal/cascade"
	"github.com/dshills/simevents/internal/event"
	"github.com/dshills/simevents/internal/event/path"
	"github.com/dshills/simevents/internal/registry"
)

func newCheckCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and print the registry tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(root.configPath, root.loadOptions(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			return printTree(cmd.OutOrStdout(), a.root)
		},
	}
}

// printTree writes one block per namespace:
//
//	::rx enabled=true (inherited) dispatcher=*dispatch.SyncDispatcher (inherited)
//	  event arrival enabled=true (inherited) dispatcher=... instances=0
//	  topic log -> arrival, idle [after:1]
func printTree(w io.Writer, root *registry.NameSpace) error {
	var namespaces, eventTypes, topics int
	err := root.Walk(func(ns *registry.NameSpace) error {
		namespaces++
		indent := strings.Repeat("  ", len(path.Segments(ns.Path())))
		fmt.Fprintf(w, "%s%s enabled=%s dispatcher=%s\n",
			indent, ns, describe(ns.Enabled(), formatBool), describe(ns.Dispatcher(), formatDispatcher))

		for _, name := range ns.EventTypes() {
			eventTypes++
			et, _ := ns.LookupEventType(name)
			fmt.Fprintf(w, "%s  event %s enabled=%s dispatcher=%s instances=%d\n",
				indent, name, describe(et.Enabled(), formatBool), describe(et.Dispatcher(), formatDispatcher),
				len(et.Instances()))
		}

		for _, name := range ns.Topics() {
			topics++
			t, _ := ns.LookupTopic(name)
			var hooks []string
			for _, hook := range t.Mapping().Hooks() {
				h, _ := t.LookupHandlers(hook)
				hooks = append(hooks, fmt.Sprintf("%s:%d", hook, h.Len()))
			}
			fmt.Fprintf(w, "%s  topic %s -> %s [%s]\n",
				indent, name, strings.Join(t.Paths(), ", "), strings.Join(hooks, " "))
		}
		return nil
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "ok: %d namespaces, %d event types, %d topics\n", namespaces, eventTypes, topics)
	return err
}

func describe[T any](n *cascade.Node[T, *event.Event], format func(T) string) string {
	s := format(n.Effective())
	if !n.Value().IsConcrete() {
		s += " (inherited)"
	}
	return s
}

func formatBool(b bool) string {
	return fmt.Sprint(b)
}

func formatDispatcher(d event.Dispatcher) string {
	if d == nil {
		return "none"
	}
	return fmt.Sprintf("%T", d)
}
