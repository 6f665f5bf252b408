package event

// Context is passed to every handler of one dispatch.
type Context struct {
	// Event is the event being dispatched.
	Event *Event

	// Hook is the name of the hook being dispatched.
	Hook string
}

// Metadata is a shortcut for ctx.Event.Metadata().
func (c *Context) Metadata() Metadata {
	return c.Event.Metadata()
}
