package tools

import (
	"context"
	"encoding/json"
	"fmt"

	gjsonschema "github.com/google/jsonschema-go/jsonschema"
	"github.com/invopop/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolDefinition describes one tool the demo server advertises: its catalog
// entry plus the handler that executes it.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Function    func(input json.RawMessage) (string, error)
}

// GenerateSchema derives a JSON Schema for a tool input struct. Schemas are
// inlined (no $ref) so clients can render properties without resolution.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// Register adds every registry tool to the MCP server. Catalog schemas are
// converted to the SDK's schema type at this boundary. Handler errors become
// IsError tool results so they travel back to the client as content rather
// than protocol failures.
func Register(server *mcpsdk.Server) error {
	for _, def := range Registry() {
		def := def
		schema, err := sdkSchema(def.InputSchema)
		if err != nil {
			return fmt.Errorf("tool %s: convert input schema: %w", def.Name, err)
		}
		server.AddTool(&mcpsdk.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: schema,
		}, func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			out, err := def.Function(req.Params.Arguments)
			if err != nil {
				return &mcpsdk.CallToolResult{
					IsError: true,
					Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: err.Error()}},
				}, nil
			}
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: out}},
			}, nil
		})
	}
	return nil
}

// sdkSchema bridges a reflected schema to the SDK's schema type via a JSON
// round-trip; both packages describe the same wire format.
func sdkSchema(s *jsonschema.Schema) (*gjsonschema.Schema, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out gjsonschema.Schema
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
