// Package prompt composes model requests from conversation history and an
// optional tool catalog snapshot.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fahimudin15/mcp-client/internal/chat"
)

const systemInstruction = "You are a helpful assistant. " +
	"If the user asks something that can be answered using a tool, respond with a tool call using the format:\n" +
	"[TOOL_CALL: tool_name {\"arg1\": \"value1\", \"arg2\": \"value2\"}]\n" +
	"Always choose to use a tool if it is available, and do not ask the user follow-up questions first."

// Build prepends a system message to history and returns the full request
// message list. When catalog is non-nil the system message includes a rendered
// summary of each tool; follow-up requests pass nil and rely on history alone.
//
// Build is a pure function: history and catalog are never mutated.
func Build(history []chat.Message, catalog []chat.ToolDescriptor) []chat.Message {
	system := systemInstruction
	if catalog != nil {
		system += "\n" + renderCatalog(catalog)
	}

	msgs := make([]chat.Message, 0, len(history)+1)
	msgs = append(msgs, chat.Message{Role: chat.RoleSystem, Content: system})
	msgs = append(msgs, history...)
	return msgs
}

// renderCatalog produces a plain-text tool listing: one line per tool with its
// description and a comma-joined "name: type" rendering of input properties.
// Property order is sorted so the rendering is deterministic.
func renderCatalog(catalog []chat.ToolDescriptor) string {
	var b strings.Builder
	b.WriteString("\nAvailable tools and their input schemas:\n")
	for _, tool := range catalog {
		names := make([]string, 0, len(tool.Properties))
		for name := range tool.Properties {
			names = append(names, name)
		}
		sort.Strings(names)

		fields := make([]string, 0, len(names))
		for _, name := range names {
			fields = append(fields, fmt.Sprintf("%s: %s", name, tool.Properties[name].Type))
		}
		fmt.Fprintf(&b, "- %s: %s (Inputs: %s)\n", tool.Name, tool.Description, strings.Join(fields, ", "))
	}
	return b.String()
}
