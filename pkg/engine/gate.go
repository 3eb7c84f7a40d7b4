package engine

import "context"

// Gate is polled on entry to every search node. Once it reports true the
// search unwinds and its result is void.
type Gate interface {
	ShouldAbort() bool
}

type GateFunc func() bool

func (f GateFunc) ShouldAbort() bool {
	return f()
}

type neverAbort struct{}

func (neverAbort) ShouldAbort() bool {
	return false
}

// NeverAbort is the gate for headless searches.
var NeverAbort Gate = neverAbort{}

type contextGate struct {
	done    <-chan struct{}
	aborted bool
}

// NewContextGate latches the first time ctx is done. It never blocks.
func NewContextGate(ctx context.Context) Gate {
	return &contextGate{done: ctx.Done()}
}

func (g *contextGate) ShouldAbort() bool {
	if g.aborted {
		return true
	}
	select {
	case <-g.done:
		g.aborted = true
	default:
	}
	return g.aborted
}
