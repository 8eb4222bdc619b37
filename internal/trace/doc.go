// Package trace is the logging layer of esfmt.
//
// Events are grouped into spans (begin/end pairs) and instant points. Each
// event has a scope; the configured level decides which scopes are written.
//
// # Usage
//
//	esfmt fmt --trace=- --trace-level=phase src/
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: failures only
//   - LevelPhase: driver and pass boundaries (lex, parse, prepare, walk, indent, serialise)
//   - LevelDetail: one span per formatted file
//   - LevelDebug: everything, including one point per hook dispatch
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
