package attraction_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	tavilyModels "github.com/diverged/tavily-go/models"
	"github.com/effective-security/wayfarer/pkg/llmutils"
	"github.com/effective-security/wayfarer/tools/attraction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchResponse struct {
	Answer  string                      `json:"answer,omitempty"`
	Results []tavilyModels.SearchResult `json:"results"`
}

func newServer(t *testing.T, resp searchResponse) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req tavilyModels.SearchRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Contains(t, req.Query, "Best tourist attractions to visit in 'Berlin'")
		assert.Contains(t, req.Query, "'Sunny, 20°C' weather")
		assert.Equal(t, "basic", req.SearchDepth)
		assert.True(t, req.IncludeAnswer)

		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func callArgs() map[string]string {
	return map[string]string{
		"city":    "Berlin",
		"weather": "Sunny, 20°C",
	}
}

func Test_Tool_Answer(t *testing.T) {
	server := newServer(t, searchResponse{
		Answer: "Visit the Tiergarten, the weather is perfect for it.",
		Results: []tavilyModels.SearchResult{
			{Title: "Berlin parks", URL: "https://example.com", Content: "Tiergarten is the largest park.", Score: 0.9},
		},
	})
	defer server.Close()

	tool := attraction.New("testkey").
		WithBaseURL(server.URL).
		WithHTTPClient(server.Client())

	assert.Equal(t, attraction.ToolName, tool.Name())
	assert.Contains(t, tool.Description(), "tourist attractions")

	params := llmutils.ToJSONIndent(tool.Parameters())
	assert.Contains(t, string(params), `"city"`)
	assert.Contains(t, string(params), `"weather"`)

	res := tool.Call(context.Background(), callArgs())
	assert.Equal(t, "Visit the Tiergarten, the weather is perfect for it.", res)
}

func Test_Tool_ResultsFallback(t *testing.T) {
	server := newServer(t, searchResponse{
		Results: []tavilyModels.SearchResult{
			{Title: "Berlin parks", Content: "Tiergarten is the largest park."},
			{Title: "Museum Island", Content: "Five museums on one island."},
		},
	})
	defer server.Close()

	tool := attraction.New("testkey").
		WithBaseURL(server.URL).
		WithHTTPClient(server.Client())

	res := tool.Call(context.Background(), callArgs())
	exp := "Based on search results, here are the findings:\n" +
		"- Berlin parks: Tiergarten is the largest park.\n" +
		"- Museum Island: Five museums on one island."
	assert.Equal(t, exp, res)
}

func Test_Tool_NoResults(t *testing.T) {
	server := newServer(t, searchResponse{})
	defer server.Close()

	tool := attraction.New("testkey").
		WithBaseURL(server.URL).
		WithHTTPClient(server.Client())

	res := tool.Call(context.Background(), callArgs())
	assert.Equal(t, "Sorry, no relevant tourist attraction recommendations were found.", res)
}

func Test_Tool_MissingCredential(t *testing.T) {
	tool := attraction.New("")

	res := tool.Call(context.Background(), callArgs())
	assert.Equal(t, "Error: TAVILY_API_KEY environment variable not configured.", res)
}

func Test_Tool_SearchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	tool := attraction.New("testkey").WithBaseURL(server.URL)

	res := tool.Call(context.Background(), callArgs())
	require.Contains(t, res, "Error: Problem occurred while executing Tavily search - ")
}
