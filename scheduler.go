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

// Metric keys registered by every Scheduler instance.
const (
	MetricInstantsTotal             = metricz.Key("synchro.instants.total")
	MetricContinuationsInvokedTotal = metricz.Key("synchro.continuations.invoked.total")
	MetricQueueCurrentDepth         = metricz.Key("synchro.queue.current.depth")
	MetricQueueNextDepth            = metricz.Key("synchro.queue.next.depth")
)

// Trace span and tag keys for instant execution.
const (
	SpanSchedulerInstant = tracez.Key("scheduler.instant")

	TagCurrentRun    = tracez.Tag("scheduler.current_run")
	TagEndRun        = tracez.Tag("scheduler.end_run")
	TagNextDepth     = tracez.Tag("scheduler.next_depth_after")
	TagInstantIndex  = tracez.Tag("scheduler.instant_index")
)

// HookInstant is the hookz key an observer subscribes to via OnInstant.
const HookInstant = hookz.Key("scheduler.instant")

// InstantEvent is emitted once per completed Instant call.
type InstantEvent struct {
	Index      int
	CurrentRun int
	EndRun     int
	Live       bool
	Timestamp  time.Time
}

// Scheduler drives processes to completion one logical instant at a
// time. It holds exactly three work queues (current, end, next), matches
// the original Rust runtime's instant/execute algorithm, and carries
// ambient observability (metricz/tracez/hookz/clockz) that never affects
// scheduling order.
type Scheduler struct {
	current []func(*Scheduler)
	end     []func(*Scheduler)
	next    []func(*Scheduler)

	instantsRun int

	clock   clockz.Clock
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[InstantEvent]
}

// NewScheduler returns a fresh, empty Scheduler with its own metrics
// registry, tracer, and hook set.
func NewScheduler() *Scheduler {
	m := metricz.New()
	m.Counter(MetricInstantsTotal)
	m.Counter(MetricContinuationsInvokedTotal)
	m.Gauge(MetricQueueCurrentDepth)
	m.Gauge(MetricQueueNextDepth)

	return &Scheduler{
		clock:   clockz.RealClock,
		metrics: m,
		tracer:  tracez.New(),
		hooks:   hookz.New[InstantEvent](),
	}
}

// WithClock overrides the clock used to timestamp observability events.
// It never gates instant advancement — tests typically inject
// clockz.NewFakeClock() for deterministic timestamps, not to control
// scheduling.
func (s *Scheduler) WithClock(c clockz.Clock) *Scheduler {
	s.clock = c
	return s
}

// Metrics returns the scheduler's metricz registry.
func (s *Scheduler) Metrics() *metricz.Registry { return s.metrics }

// Tracer returns the scheduler's tracez tracer.
func (s *Scheduler) Tracer() *tracez.Tracer { return s.tracer }

// OnInstant registers a hook invoked after every completed instant.
func (s *Scheduler) OnInstant(fn func(context.Context, InstantEvent) error) error {
	_, err := s.hooks.Hook(HookInstant, fn)
	return err
}

// Close releases the scheduler's tracer and hook resources.
func (s *Scheduler) Close() error {
	s.tracer.Close()
	s.hooks.Close()
	return nil
}

// InstantsRun returns the number of instants executed so far.
func (s *Scheduler) InstantsRun() int { return s.instantsRun }

// OnCurrent schedules f to run before the end of the current instant.
func (s *Scheduler) OnCurrent(f func(*Scheduler)) { s.current = append(s.current, f) }

// OnEnd schedules f to run once, after the current instant's work is
// drained but before the instant is considered complete.
func (s *Scheduler) OnEnd(f func(*Scheduler)) { s.end = append(s.end, f) }

// OnNext schedules f to run no earlier than the following instant.
func (s *Scheduler) OnNext(f func(*Scheduler)) { s.next = append(s.next, f) }

// Instant drains the current queue (LIFO, including anything it enqueues
// onto itself while draining), swaps current and next, then drains the
// end queue the same way. It returns true if any of the three queues is
// still non-empty afterward, meaning Execute should call Instant again.
func (s *Scheduler) Instant() bool {
	ctx, span := s.tracer.StartSpan(context.Background(), SpanSchedulerInstant)
	defer span.Finish()

	currentRun := 0
	for len(s.current) > 0 {
		n := len(s.current) - 1
		f := s.current[n]
		s.current = s.current[:n]
		f(s)
		currentRun++
	}

	s.current, s.next = s.next, s.current

	endBatch := s.end
	s.end = nil
	endRun := 0
	for len(endBatch) > 0 {
		n := len(endBatch) - 1
		f := endBatch[n]
		endBatch = endBatch[:n]
		f(s)
		endRun++
	}

	s.instantsRun++
	s.metrics.Counter(MetricInstantsTotal).Inc()
	s.metrics.Counter(MetricContinuationsInvokedTotal).Add(float64(currentRun + endRun))
	s.metrics.Gauge(MetricQueueCurrentDepth).Set(float64(len(s.current)))
	s.metrics.Gauge(MetricQueueNextDepth).Set(float64(len(s.next)))

	span.SetTag(TagCurrentRun, strconv.Itoa(currentRun))
	span.SetTag(TagEndRun, strconv.Itoa(endRun))
	span.SetTag(TagNextDepth, strconv.Itoa(len(s.next)))
	span.SetTag(TagInstantIndex, strconv.Itoa(s.instantsRun))

	live := len(s.current) > 0 || len(s.next) > 0 || len(s.end) > 0

	_ = s.hooks.Emit(ctx, HookInstant, InstantEvent{
		Index:      s.instantsRun,
		CurrentRun: currentRun,
		EndRun:     endRun,
		Live:       live,
		Timestamp:  s.clock.Now(),
	})

	return live
}

// Execute runs instants until a fixed point: Instant stops returning
// true once all three queues are empty.
func (s *Scheduler) Execute() {
	for s.Instant() {
	}
}
