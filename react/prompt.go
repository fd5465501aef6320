package react

import (
	"strings"

	"github.com/effective-security/wayfarer/pkg/llmutils"
	"github.com/effective-security/wayfarer/tools"
)

const promptHeader = `You are an intelligent travel assistant. Your task is to analyze user requests and solve problems step by step using available tools.`

const promptFormat = `# Action Format:
Your response must strictly follow the format below. First describe your thought process, then the specific action to execute. Output only one Thought-Action pair per response:
Thought: [Your thought process and next plan]
Action: [The tool you want to call, in the format tool_name(arg_name="arg_value")]

# Task Completion:
When you have collected enough information to answer the user's final question, you must output the final answer using ` + "`" + `finish(answer="...")` + "`" + ` after the ` + "`" + `Action:` + "`" + ` field.

Let's begin!`

type toolDescription struct {
	Name        string `json:"Name" yaml:"Name"`
	Description string `json:"Description" yaml:"Description"`
	Parameters  any    `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
}

type toolsDescription struct {
	Tools []toolDescription `json:"Tools" yaml:"Tools"`
}

// ToolsPrompt renders the registered tools as a fenced JSON block
// for the system prompt.
func ToolsPrompt(reg *tools.Registry) string {
	var d toolsDescription
	for _, tool := range reg.Tools() {
		d.Tools = append(d.Tools, toolDescription{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return llmutils.BackticksJSON(llmutils.ToJSONIndent(d))
}

// SystemPrompt builds the agent system prompt from the registered tools.
// Registering a new tool changes the prompt without any code changes here.
func SystemPrompt(reg *tools.Registry) string {
	var sb strings.Builder
	sb.WriteString(promptHeader)
	sb.WriteString("\n\n# Available Tools:\n")
	sb.WriteString(ToolsPrompt(reg))
	sb.WriteString("\n\n")
	sb.WriteString(promptFormat)
	return sb.String()
}
