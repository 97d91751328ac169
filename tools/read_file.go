package tools

import (
	"encoding/json"
	"strings"

	"github.com/fahimudin15/mcp-client/internal/fsops"
)

type ReadFileInput struct {
	Path   string `json:"path" jsonschema_description:"Relative file path inside the server sandbox."`
	Offset int    `json:"offset,omitempty" jsonschema_description:"Line offset (0-based) to start reading from."`
	Limit  int    `json:"limit,omitempty" jsonschema_description:"Maximum lines to return from offset (default 200)."`
}

const defaultReadFileLimit = 200 // fallback page size when limit <= 0
const truncationSentinel = "-- truncated; use offset/limit to fetch more --\n"

var ReadFileDefinition = ToolDefinition{
	Name:        "read_file",
	Description: "Read the contents of a file addressed by a relative path within the server sandbox. Directory paths and unsafe paths are rejected.",
	InputSchema: ReadFileInputSchema,
	Function:    ReadFile,
}

var ReadFileInputSchema = GenerateSchema[ReadFileInput]()

// ReadFile reads a file via fsops (sandbox policy) and applies simple
// offset/limit pagination so results stay small enough to inline into a
// conversation turn. A trailing sentinel marks truncated output.
func ReadFile(input json.RawMessage) (string, error) {
	var in ReadFileInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	content, err := fsops.ReadFile(in.Path)
	if err != nil {
		return "", err
	}

	limit := in.Limit
	if limit <= 0 {
		limit = defaultReadFileLimit
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	lines := strings.Split(content, "\n")
	if offset >= len(lines) {
		return "", nil
	}
	end := offset + limit
	truncated := end < len(lines)
	if !truncated {
		end = len(lines)
	}

	out := strings.Join(lines[offset:end], "\n")
	if truncated {
		out += "\n" + truncationSentinel
	}
	return out, nil
}
