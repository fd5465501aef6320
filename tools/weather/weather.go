package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"

	"github.com/effective-security/wayfarer/schema"
	"github.com/effective-security/wayfarer/tools"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/wayfarer", "weather")

const ToolName = "get_weather"

const defaultBaseURL = "https://wttr.in"

// LookupRequest represents the tool input.
type LookupRequest struct {
	City string `json:"city" yaml:"city" jsonschema:"title=city,description=The city to query current weather for."`
}

// Tool queries real-time weather from the wttr.in API.
type Tool struct {
	name        string
	description string

	baseURL    string
	httpClient *http.Client
}

var _ tools.Tool = (*Tool)(nil)

func New() *Tool {
	return &Tool{
		name:        ToolName,
		description: "Query real-time weather information for a specified city.",
		baseURL:     defaultBaseURL,
		httpClient:  http.DefaultClient,
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
	sc, _ := schema.New(reflect.TypeOf(LookupRequest{}))
	return sc.Parameters
}

// wttr.in `format=j1` payload, only the fields we read.
type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
}

// Call implements tools.Tool. Failures are returned as observation text.
func (t *Tool) Call(ctx context.Context, args map[string]string) string {
	city := args["city"]

	u := fmt.Sprintf("%s/%s?format=j1", t.baseURL, url.PathEscape(city))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Sprintf("Error: Network issue while querying weather - %v", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		logger.ContextKV(ctx, xlog.WARNING,
			"status", "weather_request_failed",
			"city", city,
			"err", err.Error(),
		)
		return fmt.Sprintf("Error: Network issue while querying weather - %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("Error: Network issue while querying weather - unexpected status %q", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("Error: Network issue while querying weather - %v", err)
	}

	var payload wttrResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Sprintf("Error: Failed to parse weather data, city name may be invalid - %v", err)
	}
	if len(payload.CurrentCondition) == 0 || len(payload.CurrentCondition[0].WeatherDesc) == 0 {
		return "Error: Failed to parse weather data, city name may be invalid - current_condition is missing"
	}

	cur := payload.CurrentCondition[0]
	return fmt.Sprintf("Current weather in %s: %s, Temperature: %s°C", city, cur.WeatherDesc[0].Value, cur.TempC)
}
