package attraction

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	tavilygo "github.com/diverged/tavily-go"
	tavilyModels "github.com/diverged/tavily-go/models"
	"github.com/effective-security/wayfarer/schema"
	"github.com/effective-security/wayfarer/tools"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/wayfarer", "attraction")

const ToolName = "get_attraction"

// SearchRequest represents the tool input.
type SearchRequest struct {
	City    string `json:"city" yaml:"city" jsonschema:"title=city,description=The city to search attractions in."`
	Weather string `json:"weather" yaml:"weather" jsonschema:"title=weather,description=The current weather conditions to match attractions against."`
}

// Tool recommends tourist attractions using the Tavily Search API.
type Tool struct {
	name        string
	description string

	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ tools.Tool = (*Tool)(nil)

// New creates the attraction tool. The credential is resolved once at
// startup from configuration; a missing credential is reported per call
// as observation text, not as a constructor error, so the loop still runs
// and the model can see why the tool is unavailable.
func New(apiKey string) *Tool {
	return &Tool{
		name:        ToolName,
		description: "Search and recommend tourist attractions based on city and weather conditions.",
		apiKey:      apiKey,
	}
}

func (t *Tool) WithBaseURL(baseURL string) *Tool {
	t.baseURL = baseURL
	return t
}

func (t *Tool) WithHTTPClient(client *http.Client) *Tool {
	t.httpClient = client
	return t
}

func (t *Tool) Name() string {
	return t.name
}

func (t *Tool) Description() string {
	return t.description
}

func (t *Tool) Parameters() any {
	sc, _ := schema.New(reflect.TypeOf(SearchRequest{}))
	return sc.Parameters
}

// Call implements tools.Tool. Failures are returned as observation text.
func (t *Tool) Call(ctx context.Context, args map[string]string) string {
	if t.apiKey == "" {
		return "Error: TAVILY_API_KEY environment variable not configured."
	}

	city := args["city"]
	weather := args["weather"]

	client := tavilygo.NewClient(t.apiKey)
	if t.baseURL != "" {
		client.BaseURL = t.baseURL
	}
	if t.httpClient != nil {
		client.HTTPClient = t.httpClient
	}

	query := fmt.Sprintf("Best tourist attractions to visit in '%s' during '%s' weather and reasons why", city, weather)
	searchReq := tavilyModels.SearchRequest{
		Query:         query,
		SearchDepth:   "basic",
		IncludeAnswer: true,
	}

	resp, err := tavilygo.Search(client, searchReq)
	if err != nil {
		logger.ContextKV(ctx, xlog.WARNING,
			"status", "search_failed",
			"city", city,
			"err", err.Error(),
		)
		return fmt.Sprintf("Error: Problem occurred while executing Tavily search - %v", err)
	}

	if resp.Answer != "" {
		return resp.Answer
	}

	var formatted []string
	for _, result := range resp.Results {
		formatted = append(formatted, fmt.Sprintf("- %s: %s", result.Title, result.Content))
	}
	if len(formatted) == 0 {
		return "Sorry, no relevant tourist attraction recommendations were found."
	}

	return "Based on search results, here are the findings:\n" + strings.Join(formatted, "\n")
}
