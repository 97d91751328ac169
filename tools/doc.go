// Package tools defines the demo server's tool contracts and implementations.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - get_weather: deterministic synthetic weather report.
//   - File tools: read_file, list_files (non-recursive), sandboxed via fsops.
package tools
