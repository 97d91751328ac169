// Package chat defines the conversation data model shared by the prompt
// builder, the model provider, and the conversation loop.
//
// Invariant:
//   - History is append-only within a query; messages are never reordered
//     or removed once added.
package chat

// Roles used in conversation history. The tool-result injection protocol
// reuses the user role, so no dedicated tool role exists.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SchemaProperty describes one input parameter of a tool.
type SchemaProperty struct {
	Type string `json:"type"`
}

// ToolDescriptor is the conversation-facing view of a remote tool: enough to
// render a catalog summary into the system prompt. The remote session stays
// authoritative; descriptors are an immutable per-query snapshot.
type ToolDescriptor struct {
	Name        string
	Description string
	Properties  map[string]SchemaProperty
}
