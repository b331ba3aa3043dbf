package synchro

import (
	"context"
	"strconv"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Metric keys registered by every signal core instance.
const (
	MetricSignalEmitsTotal       = metricz.Key("synchro.signal.emits.total")
	MetricSignalWaitersReleased  = metricz.Key("synchro.signal.waiters.released.total")
	MetricSignalWaitersPending   = metricz.Key("synchro.signal.waiters.pending")
)

// Trace span and tag keys for signal emission.
const (
	SpanSignalEmit = tracez.Key("signal.emit")

	TagSignalName     = tracez.Tag("signal.name")
	TagSignalPolicy   = tracez.Tag("signal.policy")
	TagSignalReleased = tracez.Tag("signal.waiters_released")
)

// HookSignalEmit is the hookz key an observer subscribes to via a
// signal's OnEmit.
const HookSignalEmit = hookz.Key("signal.emit")

// EmitEvent is emitted once per call to a signal's emit, after all
// within-instant waiter releases have been enqueued.
type EmitEvent struct {
	Name        string
	Policy      string
	Released    int
	Timestamp   time.Time
}

// signalCore holds the shared, interior-mutable state of a signal: the
// emitted flag for the current instant, the value cell, and the five
// waiter lists the emission algorithm drains. MCSignal and SCSignal both
// embed a *signalCore and differ only in how step 4 of emit treats
// awaitWaiters/awaitInWaiters.
type signalCore[W any] struct {
	name          string
	def           W
	value         W
	emitted       bool
	multiConsumer bool
	merge         func(old, new W) W

	scDeliveredThisInstant bool
	endSweepScheduled      bool

	awaitWaiters            []Continuation[struct{}]
	awaitInWaiters          []Continuation[W]
	awaitImmediateWaiters   []Continuation[struct{}]
	awaitImmediateInWaiters []Continuation[W]
	presentWaiters          []*presentEntry

	clock   clockz.Clock
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[EmitEvent]
}

type presentEntry struct {
	fired bool
	k     Continuation[bool]
}

func newSignalCore[W any](def W, multiConsumer bool) *signalCore[W] {
	m := metricz.New()
	m.Counter(MetricSignalEmitsTotal)
	m.Counter(MetricSignalWaitersReleased)
	m.Gauge(MetricSignalWaitersPending)

	return &signalCore[W]{
		def:           def,
		value:         def,
		multiConsumer: multiConsumer,
		clock:         clockz.RealClock,
		metrics:       m,
		tracer:        tracez.New(),
		hooks:         hookz.New[EmitEvent](),
	}
}

func (c *signalCore[W]) policyName() string {
	if c.multiConsumer {
		return "mc"
	}
	return "sc"
}

func (c *signalCore[W]) pendingWaiters() int {
	return len(c.awaitWaiters) + len(c.awaitInWaiters) +
		len(c.awaitImmediateWaiters) + len(c.awaitImmediateInWaiters) +
		len(c.presentWaiters)
}

// emit is the six-step emission algorithm: update the value cell
// (overwrite, or merge if WithMerge configured), release
// await_immediate/await_immediate_in waiters on the current queue,
// release await/await_in waiters per the MC/SC policy onto the next
// queue, release present waiters on the current queue, and schedule a
// single end-of-instant reset of the emitted flag and value cell.
func (c *signalCore[W]) emit(s *Scheduler, w W) {
	if c.merge != nil && c.emitted {
		c.value = c.merge(c.value, w)
	} else {
		c.value = w
	}
	c.emitted = true

	released := 0

	// Step 2: await_immediate, released this instant.
	immediate := c.awaitImmediateWaiters
	c.awaitImmediateWaiters = nil
	for _, k := range immediate {
		k := k
		s.OnCurrent(func(s2 *Scheduler) { k.Call(s2, struct{}{}) })
	}
	released += len(immediate)

	// Step 3: await_immediate_in, snapshot now, released this instant.
	immediateIn := c.awaitImmediateInWaiters
	c.awaitImmediateInWaiters = nil
	snapNow := c.value
	for _, k := range immediateIn {
		k := k
		s.OnCurrent(func(s2 *Scheduler) { k.Call(s2, snapNow) })
	}
	released += len(immediateIn)

	// Step 4: await/await_in, released no earlier than next instant.
	if c.multiConsumer {
		aw := c.awaitWaiters
		c.awaitWaiters = nil
		for _, k := range aw {
			k := k
			s.OnNext(func(s2 *Scheduler) { k.Call(s2, struct{}{}) })
		}
		released += len(aw)

		awi := c.awaitInWaiters
		c.awaitInWaiters = nil
		snap := c.value
		for _, k := range awi {
			k := k
			s.OnNext(func(s2 *Scheduler) { k.Call(s2, snap) })
		}
		released += len(awi)
	} else if !c.scDeliveredThisInstant {
		switch {
		case len(c.awaitWaiters) > 0:
			k := c.awaitWaiters[0]
			c.awaitWaiters = c.awaitWaiters[1:]
			s.OnNext(func(s2 *Scheduler) { k.Call(s2, struct{}{}) })
			c.scDeliveredThisInstant = true
			released++
		case len(c.awaitInWaiters) > 0:
			k := c.awaitInWaiters[0]
			c.awaitInWaiters = c.awaitInWaiters[1:]
			snap := c.value
			s.OnNext(func(s2 *Scheduler) { k.Call(s2, snap) })
			c.scDeliveredThisInstant = true
			released++
		}
	}

	// Step 5: present, decided and released this instant.
	pw := c.presentWaiters
	c.presentWaiters = nil
	for _, e := range pw {
		if !e.fired {
			e.fired = true
			e := e
			s.OnCurrent(func(s2 *Scheduler) { e.k.Call(s2, true) })
			released++
		}
	}

	// Step 6: schedule exactly one end-of-instant reset.
	if !c.endSweepScheduled {
		c.endSweepScheduled = true
		s.OnEnd(func(s2 *Scheduler) {
			c.emitted = false
			c.scDeliveredThisInstant = false
			c.endSweepScheduled = false
			c.value = c.def
		})
	}

	c.observeEmit(s, released)
}

func (c *signalCore[W]) observeEmit(s *Scheduler, released int) {
	ctx, span := c.tracer.StartSpan(context.Background(), SpanSignalEmit)
	span.SetTag(TagSignalName, c.name)
	span.SetTag(TagSignalPolicy, c.policyName())
	span.SetTag(TagSignalReleased, strconv.Itoa(released))
	span.Finish()

	c.metrics.Counter(MetricSignalEmitsTotal).Inc()
	c.metrics.Counter(MetricSignalWaitersReleased).Add(float64(released))
	c.metrics.Gauge(MetricSignalWaitersPending).Set(float64(c.pendingWaiters()))

	_ = c.hooks.Emit(ctx, HookSignalEmit, EmitEvent{
		Name:      c.name,
		Policy:    c.policyName(),
		Released:  released,
		Timestamp: c.clock.Now(),
	})
}

// Signal is the sealed interface shared by MCSignal and SCSignal,
// exposing just enough surface for the free function Present (which
// cannot be a method, since Go methods can't introduce their own type
// parameters and Present's branch type V is independent of the signal's
// payload type W).
type Signal[W any] interface {
	Emit(p Process[W]) Process[struct{}]
	Await() Process[struct{}]
	AwaitIn() Process[W]
	AwaitImmediate() Process[struct{}]
	AwaitImmediateIn() Process[W]

	signalCoreRef() *signalCore[W]
}

