package dom

// Handler reacts to an event dispatched on a node.
type Handler func(*Event)

// Event is a minimal DOM-style event. Events do not bubble.
type Event struct {
	Type   string
	Target *Node

	defaultPrevented bool
}

// NewEvent creates an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ}
}

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// AddEventListener registers h for events of type typ on n.
func (n *Node) AddEventListener(typ string, h Handler) {
	if h == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]Handler)
	}
	n.listeners[typ] = append(n.listeners[typ], h)
}

// Dispatch runs every listener registered for e.Type on n in registration
// order. It returns false when a handler prevented the default action.
func (n *Node) Dispatch(e *Event) bool {
	e.Target = n
	for _, h := range n.listeners[e.Type] {
		h(e)
	}
	return !e.defaultPrevented
}
