package tools

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
)

type GetWeatherInput struct {
	City  string `json:"city" jsonschema_description:"City name to report weather for."`
	Units string `json:"units,omitempty" jsonschema_description:"Either \"metric\" (default) or \"imperial\"."`
}

var GetWeatherDefinition = ToolDefinition{
	Name:        "get_weather",
	Description: "Report current weather conditions for a city. Data is synthetic but stable per city.",
	InputSchema: GetWeatherInputSchema,
	Function:    GetWeather,
}

var GetWeatherInputSchema = GenerateSchema[GetWeatherInput]()

var weatherConditions = []string{"sunny", "partly cloudy", "overcast", "light rain", "windy", "snow"}

// GetWeather produces a deterministic canned report: the same city always
// gets the same condition and temperature, so conversations are replayable.
func GetWeather(input json.RawMessage) (string, error) {
	var in GetWeatherInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if strings.TrimSpace(in.City) == "" {
		return "", fmt.Errorf("city is required")
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(in.City))))
	sum := h.Sum32()

	condition := weatherConditions[sum%uint32(len(weatherConditions))]
	tempC := int(sum%30) - 5 // -5..24 °C

	if in.Units == "imperial" {
		tempF := tempC*9/5 + 32
		return fmt.Sprintf("Weather in %s: %s, %d°F", in.City, condition, tempF), nil
	}
	return fmt.Sprintf("Weather in %s: %s, %d°C", in.City, condition, tempC), nil
}
