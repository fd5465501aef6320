// Package react implements the textual Thought/Action/Observation protocol
// between the language model and the agent loop.
//
// A model response is expected to carry exactly one step:
//
//	Thought: <free text>
//	Action: <tool_name>(<key>="<value>", ...)
//
// or the terminal action:
//
//	Thought: <free text>
//	Action: finish(answer="<text>")
//
// The loop appends the result of each non-terminal action as:
//
//	Observation: <tool result text>
//
// Parsing is purely syntactic. Whether a tool exists is decided by the
// registry at dispatch time, not here.
package react
