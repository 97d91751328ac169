package mcpsession

import (
	"encoding/json"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fahimudin15/mcp-client/internal/chat"
)

// toDescriptor maps an SDK tool to a catalog descriptor. The input schema is
// round-tripped through JSON so the SDK's schema type reduces to the
// property/type view the prompt builder needs. Schemas without an object
// properties block degrade to an empty property set.
func toDescriptor(tool *mcpsdk.Tool) chat.ToolDescriptor {
	if tool == nil {
		return chat.ToolDescriptor{}
	}
	desc := chat.ToolDescriptor{
		Name:        tool.Name,
		Description: tool.Description,
		Properties:  map[string]chat.SchemaProperty{},
	}

	b, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return desc
	}
	var schema struct {
		Properties map[string]struct {
			Type string `json:"type"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(b, &schema); err != nil {
		return desc
	}
	for name, p := range schema.Properties {
		desc.Properties[name] = chat.SchemaProperty{Type: p.Type}
	}
	return desc
}

// resultText flattens a call result into text. Text content passes through;
// any other content kind is JSON-encoded rather than dropped.
func resultText(result *mcpsdk.CallToolResult) string {
	if result == nil {
		return ""
	}
	parts := make([]string, 0, len(result.Content))
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
			continue
		}
		if b, err := json.Marshal(c); err == nil {
			parts = append(parts, string(b))
		}
	}
	return strings.Join(parts, "\n")
}
