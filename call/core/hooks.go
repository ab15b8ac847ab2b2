package core

// Hooks holds observation callbacks for one context.
// All fields are optional - nil means no observation for that event.
// Hooks are invoked synchronously while the context's guard is held, so
// they should be fast and must not touch the context themselves.
type Hooks struct {
	OnCall   func()      // Stored callable is about to run
	OnResult func(any)   // Completion with a value
	OnFault  func(error) // Completion with a fault (error, panic, missing argument)
}

// fireCall invokes OnCall across hook sets in FIFO order.
func fireCall(hooks []Hooks) {
	for i := range hooks {
		if hooks[i].OnCall != nil {
			hooks[i].OnCall()
		}
	}
}

// fireResult invokes OnResult across hook sets in FIFO order.
func fireResult(hooks []Hooks, v any) {
	for i := range hooks {
		if hooks[i].OnResult != nil {
			hooks[i].OnResult(v)
		}
	}
}

// fireFault invokes OnFault across hook sets in FIFO order.
func fireFault(hooks []Hooks, err error) {
	for i := range hooks {
		if hooks[i].OnFault != nil {
			hooks[i].OnFault(err)
		}
	}
}
