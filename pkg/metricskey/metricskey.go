package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	// StatsAgentRuns is base for counter metric for agent runs by outcome
	StatsAgentRuns = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_agent_runs",
		Help:         "stats_agent_runs provides total agent runs by outcome",
		RequiredTags: []string{"status"},
	}

	StatsLLMCalls = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_llm_calls",
		Help:         "stats_llm_calls provides total calls to the language model",
		RequiredTags: []string{"model"},
	}

	StatsLLMCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_llm_calls_failed",
		Help:         "stats_llm_calls_failed provides total failed calls to the language model",
		RequiredTags: []string{"model"},
	}

	StatsToolDispatches = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_dispatches",
		Help:         "stats_tool_dispatches provides total tool dispatches",
		RequiredTags: []string{"tool"},
	}

	StatsToolsUndefined = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tools_undefined",
		Help:         "stats_tools_undefined provides total dispatches to unregistered tools",
		RequiredTags: []string{"tool"},
	}
)

// Perf
var (
	PerfAgentRun = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_agent_run",
		Help:         "perf_agent_run provides duration of agent run",
		RequiredTags: []string{"status"},
	}

	PerfToolCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_tool_call",
		Help:         "perf_tool_call provides duration of tool call",
		RequiredTags: []string{"tool"},
	}
)

// Metrics is the list of metrics emitted by this package
var Metrics = []*metrics.Describe{
	&PerfAgentRun,
	&PerfToolCall,
	&StatsAgentRuns,
	&StatsLLMCalls,
	&StatsLLMCallsFailed,
	&StatsToolDispatches,
	&StatsToolsUndefined,
}
