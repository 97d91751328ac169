package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fahimudin15/mcp-client/internal/chat"
	"github.com/fahimudin15/mcp-client/internal/directive"
	"github.com/fahimudin15/mcp-client/internal/prompt"
	"github.com/fahimudin15/mcp-client/internal/telemetry"
)

// ModelClient is the model capability: one completion per call, no streaming.
type ModelClient interface {
	Complete(ctx context.Context, msgs []chat.Message) (string, error)
}

// ToolSession is the session capability backing tool discovery and execution.
type ToolSession interface {
	ListTools(ctx context.Context) ([]chat.ToolDescriptor, error)
	CallTool(ctx context.Context, name string, args map[string]any) (string, error)
}

// Runner drives one query at a time through the tool-augmented conversation
// loop. Capabilities are passed in explicitly so the loop is testable without
// a live subprocess or API key.
type Runner struct {
	Model   ModelClient
	Session ToolSession
}

func New(model ModelClient, session ToolSession) *Runner {
	return &Runner{Model: model, Session: session}
}

// ProcessQuery runs a single query to completion and returns the transcript:
// the initial response plus one follow-up per executed tool directive, joined
// by newlines in dispatch order.
//
// Failure semantics are fail-fast: any model or tool call error aborts the
// query with no partial transcript. Malformed directive arguments are the one
// recoverable case; they decode to an empty mapping and the loop continues.
func (r *Runner) ProcessQuery(ctx context.Context, query string) (string, error) {
	queryID, ok := telemetry.QueryIDFromContext(ctx)
	if !ok {
		queryID = fmt.Sprintf("query-%d", time.Now().UnixNano())
		ctx = telemetry.WithQueryID(ctx, queryID)
	}

	// History is seeded fresh per query; each query is an independent
	// single-turn-plus-followups exchange.
	history := []chat.Message{{Role: chat.RoleUser, Content: query}}

	// The catalog snapshot is re-fetched every query; the server may have
	// changed its tool set since the last one.
	catalog, err := r.Session.ListTools(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch tool catalog: %w", err)
	}
	telemetry.Emit("query_started", map[string]any{
		"query_id":     queryID,
		"catalog_size": len(catalog),
	})

	initial, err := r.Model.Complete(ctx, prompt.Build(history, catalog))
	if err != nil {
		return "", err
	}
	telemetry.EmitResponseFeatures(ctx, "initial", initial)

	// The initial response always opens the transcript, even with no
	// directive in it: then it simply is the final answer.
	transcript := []string{initial}

	directives := directive.Parse(initial)
	telemetry.Emit("directives_parsed", map[string]any{
		"query_id": queryID,
		"count":    len(directives),
	})
	// Zero directives is a valid outcome: the loop below is a no-op and the
	// initial response stands as the final answer.
	//
	// Sequential dispatch in parse order: each follow-up sees the results of
	// every directive before it.
	for _, d := range directives {
		args, err := directive.DecodeArgs(d.RawArgs)
		if err != nil {
			fmt.Printf("Failed to parse tool arguments for %s: %v\n", d.Name, err)
			telemetry.Emit("directive_args_invalid", map[string]any{
				"query_id":  queryID,
				"tool_name": d.Name,
			})
		}

		fmt.Printf("Executing tool: %s\n", d.Name)
		start := time.Now()
		result, err := r.Session.CallTool(ctx, d.Name, args)
		telemetry.Emit("tool_exec", map[string]any{
			"query_id":    queryID,
			"tool_name":   d.Name,
			"duration_ms": time.Since(start).Milliseconds(),
			"input_size":  len(d.RawArgs),
			"output_size": len(result),
			"error":       err != nil,
		})
		if err != nil {
			return "", err
		}

		// Inject the result without a protocol-level tool role: an assistant
		// marker plus a user message carrying the result content.
		history = append(history,
			chat.Message{Role: chat.RoleAssistant, Content: fmt.Sprintf("[Tool %s executed]", d.Name)},
			chat.Message{Role: chat.RoleUser, Content: result},
		)

		followup, err := r.Model.Complete(ctx, prompt.Build(history, nil))
		if err != nil {
			return "", err
		}
		telemetry.EmitResponseFeatures(ctx, "followup", followup)
		transcript = append(transcript, followup)
	}

	telemetry.Emit("query_completed", map[string]any{
		"query_id": queryID,
		"segments": len(transcript),
	})
	return strings.Join(transcript, "\n"), nil
}
