package telemetry

import (
	"context"

	"github.com/fahimudin15/mcp-client/internal/metrics"
)

// EmitResponseFeatures records local text features of a model completion.
// role distinguishes the initial response from tool follow-ups.
func EmitResponseFeatures(ctx context.Context, role string, text string) {
	if !isObserveEnabled() {
		return
	}
	queryID, _ := QueryIDFromContext(ctx)
	f := metrics.CountFeatures(text)
	Emit("response_features", map[string]any{
		"query_id": queryID,
		"role":     role,
		"response": map[string]any{
			"bytes": f.Bytes,
			"runes": f.Runes,
			"words": f.Words,
			"lines": f.Lines,
		},
	})
}
