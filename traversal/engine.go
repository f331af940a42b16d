package traversal

import (
	"fmt"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/effect"
	"github.com/katalvlaran/spiderweb/geom"
	"github.com/katalvlaran/spiderweb/topology"
)

// Engine moves one agent over the web exposed by its Host.
type Engine struct {
	host  Host
	opts  Options
	agent Agent
	used  []bridges.Bridge
}

// New returns an Engine with the agent alive at the center.
// Returns ErrOptionViolation for invalid options.
func New(host Host, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	e := &Engine{host: host, opts: o}
	e.agent = Agent{Position: host.Topology().Center(), Strand: Center, Alive: true}
	return e, nil
}

// Agent returns a copy of the agent.
func (e *Engine) Agent() Agent {
	a := e.agent
	a.Trace = append([]geom.Segment(nil), e.agent.Trace...)
	return a
}

// State reports whether the agent is on the hub or on a strand.
func (e *Engine) State() State {
	if e.agent.Strand == Center {
		return AtCenter
	}
	return AtStrand
}

// Used returns the bridges crossed by the last walk, in crossing order.
func (e *Engine) Used() []bridges.Bridge {
	return append([]bridges.Bridge(nil), e.used...)
}

// ResetUsed clears the used-bridge history.
func (e *Engine) ResetUsed() { e.used = e.used[:0] }

// MoveTo walks from the center so that the agent ends on target, starting
// from the strand found by InitialStrand.
func (e *Engine) MoveTo(target int) (Result, error) {
	if err := e.checkOutward(target); err != nil {
		return Result{}, err
	}
	top := e.host.Topology()
	start := InitialStrand(target, top.Radius(), e.host.Bridges().All())
	return e.walk(start, true)
}

// MoveFrom walks outward from the center starting directly on strand start.
func (e *Engine) MoveFrom(start int) (Result, error) {
	if err := e.checkOutward(start); err != nil {
		return Result{}, err
	}
	return e.walk(start, true)
}

// MoveToCenter walks inward from the rim of the current strand and parks
// the agent on the hub.
func (e *Engine) MoveToCenter() (Result, error) {
	if !e.agent.Alive {
		return Result{}, ErrAgentDead
	}
	e.agent.Trace = nil
	if e.agent.Strand == Center {
		return Result{}, ErrAlreadyAtCenter
	}
	return e.walk(e.agent.Strand, false)
}

// SitAtCenter teleports the agent to the hub without firing effects.
// Calling it at the center only clears the trace.
func (e *Engine) SitAtCenter() {
	e.agent.Trace = nil
	e.agent.Position = e.host.Topology().Center()
	e.agent.Strand = Center
	e.agent.Distance = 0
}

// Kill marks the agent dead in place.
func (e *Engine) Kill() { e.agent.Alive = false }

// Respawn revives the agent on the hub.
func (e *Engine) Respawn() {
	e.agent.Alive = true
	e.SitAtCenter()
}

// Resync recomputes the agent position after the topology changed. An agent
// on a strand is placed on its rim.
func (e *Engine) Resync() {
	top := e.host.Topology()
	if e.agent.Strand == Center || !top.Valid(e.agent.Strand) {
		e.agent.Position = top.Center()
		e.agent.Strand = Center
		e.agent.Distance = 0
		return
	}
	e.agent.Position, _ = top.Rim(e.agent.Strand)
	e.agent.Distance = top.Radius()
}

func (e *Engine) checkOutward(strand int) error {
	if !e.agent.Alive {
		return ErrAgentDead
	}
	e.agent.Trace = nil
	top := e.host.Topology()
	if !top.Valid(strand) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidStrand, strand, top.Count())
	}
	if e.agent.Strand != Center {
		return fmt.Errorf("%w: on strand %d", ErrNotAtCenter, e.agent.Strand)
	}
	return nil
}

// walk runs one traversal from strand start.
//
// Steps:
//  1. Reset used bridges, place the agent at the hub (outward) or rim (inward).
//  2. Fire the starting strand's effect.
//  3. Repeatedly take the first eligible bridge, fire its effect, then the
//     arrival strand's effect; stop when none is eligible or the agent dies.
//  4. A surviving agent finishes on the rim (outward) or the hub (inward).
//
// A walk aborted by MaxHops puts the agent back where it was before the
// walk. Effects of the crossings already made are kept.
func (e *Engine) walk(start int, outward bool) (Result, error) {
	top := e.host.Topology()
	e.ResetUsed()
	before := e.Agent()

	e.agent.Strand = start
	if outward {
		e.agent.Distance = 0
	} else {
		e.agent.Distance = top.Radius()
	}
	res := Result{Start: start}

	e.fireStrand(start)

	for e.agent.Alive {
		b, ok := next(e.host.Bridges().All(), e.agent.Strand, e.agent.Distance, outward)
		if !ok {
			break
		}
		if e.opts.MaxHops > 0 && len(res.Hops) >= e.opts.MaxHops {
			e.agent = before
			res.End, res.Alive = before.Strand, before.Alive
			e.opts.OnStop(res)
			return res, fmt.Errorf("%w: %d", ErrHopLimit, e.opts.MaxHops)
		}
		res.Hops = append(res.Hops, e.cross(b))
		e.opts.OnHop(res.Hops[len(res.Hops)-1])
	}

	if e.agent.Alive {
		if outward {
			e.moveTo(top.Rim(e.agent.Strand))
			e.agent.Distance = top.Radius()
		} else {
			e.moveTo(top.Center(), nil)
			e.agent.Strand = Center
			e.agent.Distance = 0
		}
	}
	res.End, res.Alive = e.agent.Strand, e.agent.Alive
	e.opts.OnStop(res)
	return res, nil
}

// cross moves the agent over b and resolves both effects.
func (e *Engine) cross(b bridges.Bridge) Hop {
	from := e.agent.Strand
	depart, arrive := b.Endpoints(from)
	e.moveTo(depart, nil)
	e.moveTo(arrive, nil)

	h := Hop{Bridge: b, From: from, To: b.Other(from), Distance: b.Distance}
	e.agent.Strand = h.To
	e.agent.Distance = b.Distance
	e.used = append(e.used, b)

	h.BridgeEffect = effect.BridgeEffect(b.Kind)
	if !h.BridgeEffect.Is(effect.None) {
		e.host.Apply(h.BridgeEffect, b)
	}
	h.StrandEffect = e.fireStrand(h.To)
	return h
}

// fireStrand applies the agent-level effect of strand s.
func (e *Engine) fireStrand(s int) effect.Effect {
	top := e.host.Topology()
	st, err := top.Strand(s)
	if err != nil {
		return effect.Effect{Op: effect.None}
	}
	eff := effect.StrandEffect(st.Kind)
	switch eff.Op {
	case effect.Kill:
		e.agent.Alive = false
	case effect.Bounce:
		e.agent.Strand = topology.Next(s, top.Count())
		e.moveTo(top.PointAt(e.agent.Strand, e.agent.Distance))
	}
	return eff
}

// moveTo records a straight segment from the current position to p.
func (e *Engine) moveTo(p geom.Point, err error) {
	if err != nil {
		return
	}
	if p != e.agent.Position {
		e.agent.Trace = append(e.agent.Trace, geom.Segment{From: e.agent.Position, To: p})
	}
	e.agent.Position = p
}

// next returns the first bridge touching strand at a strictly greater
// (outward) or strictly smaller (inward) distance, in walk order.
func next(all []bridges.Bridge, strand, distance int, outward bool) (bridges.Bridge, bool) {
	if outward {
		bridges.SortAscending(all)
	} else {
		bridges.SortDescending(all)
	}
	return firstEligible(all, strand, distance, outward)
}
