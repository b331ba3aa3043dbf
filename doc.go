// Package synchro provides a synchronous reactive runtime in the style of
// Esterel and ReactiveML: programs are expressed as composable processes
// executed by a single-threaded cooperative scheduler that advances the
// world in discrete logical instants.
//
// # Overview
//
// synchro is built around three layers:
//
//   - Continuation[V]: a single-shot callback invoked with a *Scheduler
//     and a value of type V. Continuations compose via MapCont and PauseCont.
//   - Process[V] / ProcessMut[V]: the process algebra. A Process starts
//     when Call is invoked and eventually invokes its continuation
//     exactly once. ProcessMut additionally supports CallMut, which
//     hands back a residual process so the same logical process can run
//     again (required by While).
//   - Signal[W]: a shared, typed slot with emission and four flavors of
//     waiting, used for causal communication between processes within
//     and across instants.
//
// # Core Concepts
//
// Execution is driven by ExecuteProcess, which builds a *Scheduler, hands
// the root process a terminating continuation, and runs instants to a
// fixed point:
//
//	result, err := synchro.ExecuteProcess(synchro.Value(42))
//	// result == 42, err == nil
//
// Processes compose with Map, Pause, Flatten, AndThen, Join and While:
//
//	p := synchro.Map(synchro.Value(1), func(x int) int { return x + 1 })
//	p = synchro.Pause(p)
//	p = synchro.Map(p, func(x int) int { return x * 10 })
//	result, _ := synchro.ExecuteProcess(p) // 20, produced at instant 1
//
// # Signals
//
// MCSignal broadcasts to every waiter each time it is emitted; SCSignal
// releases at most one Await/AwaitIn waiter per instant in which it is
// emitted (a rendezvous), while its AwaitImmediate waiters are all
// released; SimpleSignal
// is an MC signal carrying no payload. AwaitImmediate/AwaitImmediateIn
// resume within the emitting instant; Await/AwaitIn always resume no
// earlier than the following instant; Present branches on whether the
// signal has been emitted by the end of the current instant.
//
//	sig := synchro.NewMCSignal(0)
//	p := synchro.Join(sig.Emit(synchro.Value(7)), sig.AwaitIn())
//	v, _ := synchro.ExecuteProcess(synchro.Map(p, func(r synchro.Pair[struct{}, int]) int {
//	    return r.Second
//	}))
//	// v == 7: the Emit arm completes in instant 0; AwaitIn, started after
//	// the emission, resolves in instant 1
//
// # Error Handling
//
// synchro distinguishes three failure classes: programmer errors (a
// *ContractViolation panic, e.g. invoking a Continuation twice),
// termination without a result (ExecuteProcess returns ErrDeadlocked when
// every queue drains without the root continuation ever firing), and
// resource exhaustion (an unrecovered allocation panic, propagated as a
// fatal abort).
//
// # Observability
//
// The Scheduler carries metricz counters/gauges, tracez spans, and hookz
// event hooks, exposed through Metrics, Tracer and OnInstant, so a host
// program can observe instant boundaries without affecting scheduling
// semantics. Every Signal records its emissions into its own metricz
// registry, tracez tracer and hookz hooks; no exported method exposes
// those, so a host program cannot subscribe to a signal's emissions. None
// of this uses wall-clock time to gate execution — instants are purely
// logical ticks; clockz is used only to timestamp the observability
// events themselves. ExecuteProcess additionally reports its own
// deadlock/completion outcome through capitan, the process-wide
// diagnostic channel shared with the rest of this library family.
package synchro
