package react_test

import (
	"context"
	"testing"

	"github.com/effective-security/wayfarer/react"
	"github.com/effective-security/wayfarer/tools"
	"github.com/stretchr/testify/assert"
)

type promptTool struct {
	name        string
	description string
}

func (t *promptTool) Name() string                                      { return t.name }
func (t *promptTool) Description() string                               { return t.description }
func (t *promptTool) Parameters() any                                   { return map[string]string{"city": "string"} }
func (t *promptTool) Call(_ context.Context, _ map[string]string) string { return "ok" }

func Test_SystemPrompt(t *testing.T) {
	reg := tools.NewRegistry(
		&promptTool{name: "get_weather", description: "Query real-time weather information for a specified city."},
		&promptTool{name: "get_attraction", description: "Search and recommend tourist attractions based on city and weather conditions."},
	)

	prompt := react.SystemPrompt(reg)

	assert.Contains(t, prompt, "travel assistant")
	assert.Contains(t, prompt, "# Available Tools:")
	assert.Contains(t, prompt, `"Name": "get_weather"`)
	assert.Contains(t, prompt, `"Name": "get_attraction"`)
	assert.Contains(t, prompt, "Query real-time weather information for a specified city.")
	assert.Contains(t, prompt, "# Action Format:")
	assert.Contains(t, prompt, "Output only one Thought-Action pair per response")
	assert.Contains(t, prompt, `finish(answer="...")`)
}
