package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/effective-security/wayfarer/pkg/llmutils"
	"github.com/effective-security/wayfarer/pkg/metricskey"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/wayfarer", "tools")

// Tool is a single capability the agent can invoke through the action protocol.
type Tool interface {
	// Name returns the name of the tool, as the model refers to it in actions.
	Name() string
	// Description returns the description of the tool, to be used in the prompt.
	Description() string
	// Parameters returns the parameters definition of the tool, to be used in the prompt.
	Parameters() any

	// Call executes the tool with the named string arguments parsed from
	// the action expression. The result is always non-empty observation
	// text; failures are reported as "Error: ..." strings, never as panics
	// or Go errors.
	Call(ctx context.Context, args map[string]string) string
}

// Registry resolves action names to tools.
// It is built once at startup and read-only while the loop runs.
type Registry struct {
	byName map[string]Tool
	tools  []Tool
}

// NewRegistry creates a registry with the given tools.
func NewRegistry(list ...Tool) *Registry {
	r := &Registry{
		byName: make(map[string]Tool),
	}
	for _, t := range list {
		r.Register(t)
	}
	return r
}

// Register adds a tool, existing tools are not replaced.
func (r *Registry) Register(t Tool) *Registry {
	name := t.Name()
	if r.byName[name] == nil {
		r.byName[name] = t
		r.tools = append(r.tools, t)
	}
	return r
}

// Get returns the tool by name, or nil.
func (r *Registry) Get(name string) Tool {
	return r.byName[name]
}

// Tools returns registered tools in registration order.
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Names returns registered tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for _, t := range r.tools {
		names = append(names, t.Name())
	}
	return names
}

// Dispatch resolves the name and invokes the tool.
// An unknown name is a recoverable condition reported back to the model
// as observation text, not a failure of the loop.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]string) string {
	t := r.byName[name]
	if t == nil {
		metricskey.StatsToolsUndefined.IncrCounter(1, name)
		logger.ContextKV(ctx, xlog.WARNING,
			"status", "undefined_tool",
			"tool", name,
		)
		return fmt.Sprintf("Error: Undefined tool '%s'", name)
	}

	started := time.Now()
	defer metricskey.PerfToolCall.MeasureSince(started, name)
	metricskey.StatsToolDispatches.IncrCounter(1, name)

	logger.ContextKV(ctx, xlog.DEBUG,
		"status", "dispatch",
		"tool", name,
		"args", llmutils.ToJSON(args),
	)

	res := t.Call(ctx, args)
	if res == "" {
		// every dispatch must yield a non-empty observation
		res = fmt.Sprintf("Error: tool '%s' returned an empty result", name)
	}
	return res
}
