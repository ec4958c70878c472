// Package trace records what the compiler driver is doing.
//
// Enable it from the command line:
//
//	tungsten tokenize --trace=- --trace-level=detail src/
//
// Tracers:
//
//   - Nop: zero-overhead when disabled
//   - StreamTracer: writes every event immediately (file or stderr)
//   - RingTracer: keeps the last N events for a dump on failure
//   - MultiTracer: fans out to several tracers
//
// Levels gate scopes: phase shows driver and per-file passes, detail adds
// per-file bookkeeping, debug adds token-level events.
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", parentID)
//	defer span.End("")
package trace
