package llmutils

import (
	"bytes"
	"encoding/json"
)

// ToJSON returns the value marshaled as compact JSON,
// or an empty string if the value cannot be marshaled.
func ToJSON(val any) string {
	bs, _ := json.Marshal(val)
	return string(bs)
}

// ToJSONIndent returns the value marshaled as indented JSON.
func ToJSONIndent(val any) string {
	bs, _ := json.MarshalIndent(val, "", "\t")
	return string(bs)
}

// BackticksJSON wraps a JSON string in a fenced code block,
// the way LLM prompts expect embedded JSON.
func BackticksJSON(js string) string {
	var buf bytes.Buffer
	buf.WriteString("```json\n")
	buf.WriteString(js)
	buf.WriteString("\n```")
	return buf.String()
}
