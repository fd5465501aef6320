// Package agent drives the turn loop: model call, action parse, tool
// dispatch, observation append, until a finish action, a parse failure
// or the turn limit.
package agent

import (
	"context"
	"strings"
	"time"

	"github.com/effective-security/wayfarer/llmclient"
	"github.com/effective-security/wayfarer/pkg/metricskey"
	"github.com/effective-security/wayfarer/react"
	"github.com/effective-security/wayfarer/tools"
	"github.com/effective-security/x/slices"
	"github.com/effective-security/xlog"
	"github.com/google/uuid"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/wayfarer", "agent")

// DefaultMaxTurns limits the number of model calls per run.
const DefaultMaxTurns = 5

// Status is the terminal state of a run.
type Status int

const (
	// StatusFinished means the model emitted a finish action with an answer.
	StatusFinished Status = iota + 1
	// StatusAborted means the model output could not be parsed into an action.
	StatusAborted
	// StatusExhausted means the turn limit was reached without an answer.
	StatusExhausted
)

func (s Status) String() string {
	switch s {
	case StatusFinished:
		return "finished"
	case StatusAborted:
		return "aborted"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single run.
type Result struct {
	Status Status
	// Answer is set when Status is StatusFinished.
	Answer string
	// Reason is set when Status is StatusAborted.
	Reason string
	// Turns is the number of model calls made.
	Turns int
	// Transcript is the full accumulated exchange, in order.
	Transcript []string
}

// Option configures the loop.
type Option func(*Loop)

// WithMaxTurns sets the turn limit. Values below 1 keep the default.
func WithMaxTurns(n int) Option {
	return func(l *Loop) {
		if n >= 1 {
			l.maxTurns = n
		}
	}
}

// WithSystemPrompt overrides the system prompt built from the registry.
func WithSystemPrompt(prompt string) Option {
	return func(l *Loop) {
		l.sysPrompt = prompt
	}
}

// Loop owns the transcript and the turn sequence for one agent.
// It is not safe for concurrent use; each run is strictly sequential.
type Loop struct {
	model     llmclient.ModelClient
	registry  *tools.Registry
	maxTurns  int
	sysPrompt string
}

// New creates an agent loop over the given model and tool registry.
func New(model llmclient.ModelClient, registry *tools.Registry, opts ...Option) *Loop {
	l := &Loop{
		model:    model,
		registry: registry,
		maxTurns: DefaultMaxTurns,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.sysPrompt == "" {
		l.sysPrompt = react.SystemPrompt(registry)
	}
	return l
}

// SystemPrompt returns the prompt sent with every model call.
func (l *Loop) SystemPrompt() string {
	return l.sysPrompt
}

// Run executes one request to a terminal state.
// The transcript is rebuilt into a single prompt each turn; tool failures
// are fed back as observations, parse failures abort the run.
func (l *Loop) Run(ctx context.Context, request string) *Result {
	started := time.Now()
	runID := uuid.NewString()

	transcript := []string{"User request: " + request}
	res := &Result{}

	logger.ContextKV(ctx, xlog.INFO,
		"status", "run_started",
		"run_id", runID,
		"request", slices.StringUpto(request, 64),
	)

	defer func() {
		res.Transcript = transcript
		status := res.Status.String()
		metricskey.StatsAgentRuns.IncrCounter(1, status)
		metricskey.PerfAgentRun.MeasureSince(started, status)
		logger.ContextKV(ctx, xlog.INFO,
			"status", "run_"+status,
			"run_id", runID,
			"turns", res.Turns,
		)
	}()

	for turn := 0; turn < l.maxTurns; turn++ {
		prompt := strings.Join(transcript, "\n")

		output := l.model.Generate(ctx, prompt, l.sysPrompt)
		res.Turns = turn + 1

		step, truncated := react.ExtractStep(output)
		if truncated {
			logger.ContextKV(ctx, xlog.DEBUG,
				"status", "extra_steps_truncated",
				"run_id", runID,
				"turn", res.Turns,
			)
		}
		transcript = append(transcript, step)

		action, err := react.ParseAction(step)
		if err != nil {
			logger.ContextKV(ctx, xlog.WARNING,
				"status", "parse_failed",
				"run_id", runID,
				"turn", res.Turns,
				"err", err.Error(),
				"output", slices.StringUpto(step, 128),
			)
			res.Status = StatusAborted
			res.Reason = err.Error()
			return res
		}

		switch a := action.(type) {
		case react.Finish:
			res.Status = StatusFinished
			res.Answer = a.Answer
			return res
		case react.ToolCall:
			observation := l.registry.Dispatch(ctx, a.Name, a.Args)
			transcript = append(transcript, "Observation: "+observation)
		}
	}

	res.Status = StatusExhausted
	return res
}
