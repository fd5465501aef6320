package react

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNoAction is returned when the model output carries no "Action:" line.
	// This is fatal for the run, the loop stops without retrying.
	ErrNoAction = errors.New("no action found")
	// ErrMalformedAction is returned when an action expression does not
	// yield a tool name. Fatal for the run.
	ErrMalformedAction = errors.New("malformed action")
)

// Action is one parsed step: a tool invocation or the terminal finish.
type Action interface {
	isAction()
}

// Finish is the terminal action carrying the final answer.
type Finish struct {
	Answer string
}

func (Finish) isAction() {}

// ToolCall is a single tool invocation with named string arguments.
type ToolCall struct {
	Name string
	Args map[string]string
}

func (ToolCall) isAction() {}

var (
	stepMarkerRe = regexp.MustCompile(`\n\s*(?:Thought:|Action:|Observation:)`)
	actionLineRe = regexp.MustCompile(`(?s)Action: (.*)`)
	finishRe     = regexp.MustCompile(`finish\(answer="([^"]*)"\)`)
	toolNameRe   = regexp.MustCompile(`([A-Za-z_]\w*)\(`)
	argsBlockRe  = regexp.MustCompile(`(?s)\((.*)\)`)
	argPairRe    = regexp.MustCompile(`(\w+)="([^"]*)"`)
)

// ExtractStep returns the first Thought/Action pair in the model output,
// discarding anything from a subsequent Thought:, Action: or Observation:
// marker onwards. The model is instructed to emit a single step per
// response but does not always comply.
//
// If no Thought/Action pair is present, the output is returned unmodified
// and truncated is false.
func ExtractStep(output string) (step string, truncated bool) {
	thought := strings.Index(output, "Thought:")
	if thought < 0 {
		return output, false
	}
	action := strings.Index(output[thought:], "Action:")
	if action < 0 {
		return output, false
	}

	// cut at the next protocol marker after the Action: line, if any
	rest := thought + action + len("Action:")
	end := len(output)
	if loc := stepMarkerRe.FindStringIndex(output[rest:]); loc != nil {
		end = rest + loc[0]
	}

	step = strings.TrimSpace(output[thought:end])
	return step, step != strings.TrimSpace(output)
}

// ParseAction extracts the action expression from a step and parses it.
//
// The grammar cannot represent argument values containing a double quote,
// and the finish answer ends at the first quote after `answer="`. This
// mirrors what the model is prompted to produce; see the package docs.
func ParseAction(step string) (Action, error) {
	m := actionLineRe.FindStringSubmatch(step)
	if m == nil {
		return nil, errors.WithStack(ErrNoAction)
	}
	expr := strings.TrimSpace(m[1])

	if strings.HasPrefix(expr, "finish") {
		fm := finishRe.FindStringSubmatch(expr)
		if fm == nil {
			return nil, errors.WithMessage(ErrMalformedAction, "finish")
		}
		return Finish{Answer: fm[1]}, nil
	}

	nm := toolNameRe.FindStringSubmatch(expr)
	if nm == nil {
		return nil, errors.WithStack(ErrMalformedAction)
	}

	args := make(map[string]string)
	if am := argsBlockRe.FindStringSubmatch(expr); am != nil {
		// duplicate keys: last occurrence wins
		for _, kv := range argPairRe.FindAllStringSubmatch(am[1], -1) {
			args[kv[1]] = kv[2]
		}
	}

	return ToolCall{Name: nm[1], Args: args}, nil
}
