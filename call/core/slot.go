package core

import "reflect"

// slot is one argument cell: a declared type fixed at construction and an
// optional value. It exists in one of two states, Empty or Set.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotSet
)

type slot struct {
	typ   reflect.Type
	state slotState
	value any
}

func (s *slot) has() bool {
	return s.state == slotSet
}

// set stores a value already checked against the declared type.
func (s *slot) set(v any) {
	s.value = coerce(v, s.typ)
	s.state = slotSet
}

// outcome is the write-once completion cell of a context. It collapses the
// result and exception slots into one sum: Pending | Value | Fault.
type outcomeState uint8

const (
	outcomePending outcomeState = iota
	outcomeValue
	outcomeFault
)

type outcome struct {
	state outcomeState
	value any
	fault error
}

func (o *outcome) completed() bool {
	return o.state != outcomePending
}

// setValue records successful completion. The cell is write-once; a second
// write of any kind is a logic error.
func (o *outcome) setValue(v any) {
	if o.state != outcomePending {
		panic("core: completion cell written twice")
	}
	o.state = outcomeValue
	o.value = v
}

// setFault records failed completion. Storing a fault over an existing
// fault is a double fault: the first failure would be lost, and there is no
// safe recovery from a failure during failure handling, so the process is
// terminated.
func (o *outcome) setFault(err error) {
	switch o.state {
	case outcomeFault:
		panic("core: double fault: a fault is already stored")
	case outcomeValue:
		panic("core: completion cell written twice")
	}
	o.state = outcomeFault
	o.fault = err
}
