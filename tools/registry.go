package tools

// Registry returns all tool definitions wired for the demo server
func Registry() []ToolDefinition {
	return []ToolDefinition{GetWeatherDefinition, ReadFileDefinition, ListFilesDefinition}
}
