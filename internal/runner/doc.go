// Package runner coordinates the tool-augmented conversation loop: prompt the
// model, scan the response for tool-call directives, dispatch each to the MCP
// session, and fold results back via follow-up completions.
//
// Invariants:
//   - Dispatch order equals directive parse order (left to right).
//   - Each executed directive contributes exactly one follow-up segment, so a
//     response with k directives yields a k+1 segment transcript.
//   - History grows append-only within a query and resets between queries.
//
// Flow:
//
//	user(query) -> assistant(initial) -> [per directive:
//	    assistant([Tool x executed]) -> user(result) -> assistant(followup)]
package runner
