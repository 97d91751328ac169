// Package directive extracts tool-call directives embedded in model output.
//
// Wire format (the only structured sub-protocol in the client):
//
//	[TOOL_CALL: tool_name {"arg1": "value1"}]
//
// Known limitation: the payload is matched non-greedily up to the first
// closing bracket on the same line, so multi-line JSON and nested unescaped
// brackets are not guaranteed to parse. That lossy contract is deliberate.
package directive

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// pattern matches a bare-identifier tool name followed by the raw argument
// payload. `.` does not cross newlines, which enforces the single-line rule.
var pattern = regexp.MustCompile(`\[TOOL_CALL: (\w+) (.+?)\]`)

// Directive is one parsed tool-call request: the tool name and the raw
// argument text exactly as it appeared between the name and the closing
// bracket. The name is not validated against any catalog; the remote session
// is authoritative and may reject unknown tools.
type Directive struct {
	Name    string
	RawArgs string
}

// Parse scans text for directives and returns them in order of appearance.
// That order is the dispatch order. An empty result means the model chose not
// to call a tool; it is not an error.
func Parse(text string) []Directive {
	matches := pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Directive, 0, len(matches))
	for _, m := range matches {
		out = append(out, Directive{Name: m[1], RawArgs: m[2]})
	}
	return out
}

// DecodeArgs parses a directive's raw argument payload into an argument
// mapping. On malformed payloads it returns an empty (non-nil) map together
// with the decode error so the caller can log and continue; a bad payload
// never aborts the conversation loop.
func DecodeArgs(raw string) (map[string]any, error) {
	args := map[string]any{}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{}, fmt.Errorf("decode directive args: %w", err)
	}
	return args, nil
}
